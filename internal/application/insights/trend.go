package insights

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comparador-api/internal/application/dto"
	"github.com/jhoicas/Comparador-api/internal/application/pricing"
	"github.com/jhoicas/Comparador-api/internal/domain"
	"github.com/jhoicas/Comparador-api/internal/domain/entity"
	"github.com/jhoicas/Comparador-api/internal/domain/repository"
)

var directionThreshold = decimal.NewFromInt(2)

// window acumulador de precios de una ventana.
type window struct {
	sum   decimal.Decimal
	count int
}

func (w *window) add(p decimal.Decimal) {
	w.sum = w.sum.Add(p)
	w.count++
}

func (w window) avg() *decimal.Decimal {
	if w.count == 0 {
		return nil
	}
	a := w.sum.Div(decimal.NewFromInt(int64(w.count)))
	return &a
}

// trending tendencia por producto activo con al menos una oferta vigente.
// Ventana reciente: edad en [0, recent); anterior: [recent, prior). Actualizaciones futuras se ignoran.
func (e *Engine) trending(r repository.Reader, now time.Time) ([]dto.TrendingProduct, error) {
	products := r.Products().All()
	out := make([]dto.TrendingProduct, 0, len(products))
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		offers := pricing.PricedOffers(r, p.ID)
		if len(offers) == 0 {
			continue
		}
		for _, sp := range offers {
			if _, ok := r.Shops().Get(sp.ShopID); !ok {
				return nil, domain.NewIntegrity(entity.KindShopProduct.Label(), sp.ID, entity.KindShop.Label(), sp.ShopID)
			}
		}

		// Solo el historial de publicaciones existentes; el de una publicación borrada se ignora.
		var recent, prior window
		for _, sp := range r.ShopProductsByProduct(p.ID) {
			for _, pu := range r.PriceUpdatesByShopProduct(sp.ID) {
				age := now.Sub(pu.CreatedAt)
				switch {
				case age < 0:
				case age < e.recent:
					recent.add(pu.Price)
				case age < e.prior:
					prior.add(pu.Price)
				}
			}
		}

		recentAvg, priorAvg := recent.avg(), prior.avg()
		change := decimal.Zero
		if recentAvg != nil && priorAvg != nil && priorAvg.IsPositive() {
			change = recentAvg.Sub(*priorAvg).Div(*priorAvg).Mul(hundred)
		}
		direction := dto.TrendStable
		switch {
		case change.GreaterThan(directionThreshold):
			direction = dto.TrendUp
		case change.LessThan(directionThreshold.Neg()):
			direction = dto.TrendDown
		}

		shopCount := len(offers)
		viewCount := shopCount*10 + recent.count*5
		score := minDec(change.Abs().Mul(ten), hundred).Mul(w04).
			Add(capped(viewCount, decimal.NewFromInt(1)).Mul(w03)).
			Add(capped(shopCount, ten).Mul(w03))

		out = append(out, dto.TrendingProduct{
			ProductID:         p.ID,
			ProductName:       p.Name,
			Category:          p.Category,
			ShopCount:         shopCount,
			RecentAvg:         roundPtr(recentAvg),
			PriorAvg:          roundPtr(priorAvg),
			PriceChangePct:    change.Round(2),
			Direction:         direction,
			RecentUpdateCount: recent.count,
			ViewCount:         viewCount,
			TrendScore:        score.Round(2),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TrendScore.GreaterThan(out[j].TrendScore)
	})
	return out, nil
}

func roundPtr(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	r := d.Round(2)
	return &r
}
