package insights

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comparador-api/internal/application/dto"
	"github.com/jhoicas/Comparador-api/internal/application/pricing"
	"github.com/jhoicas/Comparador-api/internal/domain"
	"github.com/jhoicas/Comparador-api/internal/domain/entity"
	"github.com/jhoicas/Comparador-api/internal/domain/repository"
)

// highDealPct ahorro a partir del cual la oferta sube a prioridad alta.
var highDealPct = decimal.NewFromInt(15)

var priorityRank = map[string]int{
	dto.PriorityHigh:   0,
	dto.PriorityMedium: 1,
	dto.PriorityLow:    2,
}

// GetRecommendations feed del usuario: favorito, tienda popular, oferta, tendencia y categoría,
// en ese orden, y luego orden estable por prioridad. Las fuentes sin datos se omiten.
func (e *Engine) GetRecommendations(in dto.RecommendationRequest) ([]dto.Recommendation, error) {
	out := []dto.Recommendation{}
	err := e.store.View(func(r repository.Reader) error {
		if _, ok := r.Users().Get(in.UserID); !ok {
			return domain.NewNotFound(entity.KindUser.Label(), in.UserID)
		}
		summaries, err := pricing.Summarize(r)
		if err != nil {
			return err
		}
		byProduct := make(map[string]pricing.Summary, len(summaries))
		for _, s := range summaries {
			byProduct[s.Product.ID] = s
		}

		favorites, err := favoriteProducts(r, in.UserID)
		if err != nil {
			return err
		}
		if rec, ok := favoriteRecommendation(favorites, byProduct); ok {
			out = append(out, rec)
		}
		if shops := popularShops(r); len(shops) > 0 {
			top := shops[0]
			out = append(out, dto.Recommendation{
				Type:     dto.RecommendShop,
				Priority: dto.PriorityMedium,
				Title:    "Tienda destacada: " + top.Shop.Name,
				Reason:   fmt.Sprintf("Popularidad %s con %d productos publicados", top.Popularity.StringFixed(2), top.ProductCount),
				ShopID:   top.Shop.ID,
			})
		}
		if ds := deals(summaries); len(ds) > 0 {
			top := ds[0]
			priority := dto.PriorityMedium
			if top.SavingsPct.GreaterThanOrEqual(highDealPct) {
				priority = dto.PriorityHigh
			}
			out = append(out, dto.Recommendation{
				Type:      dto.RecommendDeal,
				Priority:  priority,
				Title:     "Oferta en " + top.ProductName,
				Reason:    fmt.Sprintf("%s ahorra %s%% frente al promedio", top.BestShop.Name, top.SavingsPct.StringFixed(2)),
				ProductID: top.ProductID,
				ShopID:    top.BestShop.ID,
			})
		}
		trends, err := e.trending(r, e.now())
		if err != nil {
			return err
		}
		if len(trends) > 0 {
			top := trends[0]
			priority := dto.PriorityLow
			if top.Direction != dto.TrendStable {
				priority = dto.PriorityMedium
			}
			out = append(out, dto.Recommendation{
				Type:      dto.RecommendTrending,
				Priority:  priority,
				Title:     "En tendencia: " + top.ProductName,
				Reason:    fmt.Sprintf("Precio %s (%s%%) en %d tiendas", top.Direction, top.PriceChangePct.StringFixed(2), top.ShopCount),
				ProductID: top.ProductID,
			})
		}
		if rec, ok := categoryRecommendation(r, in.PurchaseHistory, favorites, summaries); ok {
			out = append(out, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return priorityRank[out[i].Priority] < priorityRank[out[j].Priority]
	})
	return out, nil
}

// favoriteProducts productos favoritos del usuario en orden de alta.
func favoriteProducts(r repository.Reader, userID string) ([]entity.Product, error) {
	var out []entity.Product
	for _, f := range r.FavoritesByUser(userID) {
		if f.Type != entity.FavoriteProduct {
			continue
		}
		p, ok := r.Products().Get(f.ItemID)
		if !ok {
			return nil, domain.NewIntegrity(entity.KindFavorite.Label(), f.ID, entity.KindProduct.Label(), f.ItemID)
		}
		out = append(out, p)
	}
	return out, nil
}

// favoriteRecommendation primer favorito con oferta vigente y su mejor tienda.
func favoriteRecommendation(favorites []entity.Product, byProduct map[string]pricing.Summary) (dto.Recommendation, bool) {
	for _, p := range favorites {
		s, ok := byProduct[p.ID]
		if !ok || s.Min == nil {
			continue
		}
		return dto.Recommendation{
			Type:      dto.RecommendFavorite,
			Priority:  dto.PriorityHigh,
			Title:     "Tu favorito " + p.Name,
			Reason:    fmt.Sprintf("Mejor precio %s en %s", s.Min.StringFixed(2), s.BestShop.Name),
			ProductID: p.ID,
			ShopID:    s.BestShop.ID,
		}, true
	}
	return dto.Recommendation{}, false
}

// categoryRecommendation producto más barato, no favorito, de la categoría más frecuente del historial
// de compras; sin historial se usan las categorías de los favoritos.
func categoryRecommendation(r repository.Reader, history []dto.PurchaseItem, favorites []entity.Product, summaries []pricing.Summary) (dto.Recommendation, bool) {
	var categories []string
	for _, h := range history {
		c := h.Category
		if c == "" {
			if p, ok := r.Products().Get(h.ProductID); ok {
				c = p.Category
			}
		}
		if c != "" {
			categories = append(categories, c)
		}
	}
	if len(categories) == 0 {
		for _, p := range favorites {
			categories = append(categories, p.Category)
		}
	}
	category := topCategory(categories)
	if category == "" {
		return dto.Recommendation{}, false
	}

	skip := make(map[string]bool, len(favorites))
	for _, p := range favorites {
		skip[p.ID] = true
	}
	var best *pricing.Summary
	for i := range summaries {
		s := &summaries[i]
		if s.Product.Category != category || s.Min == nil || skip[s.Product.ID] {
			continue
		}
		if best == nil || s.Min.LessThan(*best.Min) {
			best = s
		}
	}
	if best == nil {
		return dto.Recommendation{}, false
	}
	return dto.Recommendation{
		Type:      dto.RecommendCategory,
		Priority:  dto.PriorityLow,
		Title:     "Descubre " + best.Product.Name,
		Reason:    fmt.Sprintf("Porque compras en %s; desde %s en %s", category, best.Min.StringFixed(2), best.BestShop.Name),
		ProductID: best.Product.ID,
		ShopID:    best.BestShop.ID,
		Category:  category,
	}, true
}

// topCategory la más frecuente; empate para la primera en aparecer.
func topCategory(categories []string) string {
	counts := make(map[string]int, len(categories))
	order := make([]string, 0, len(categories))
	for _, c := range categories {
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}
	top, topN := "", 0
	for _, c := range order {
		if counts[c] > topN {
			top, topN = c, counts[c]
		}
	}
	return top
}
