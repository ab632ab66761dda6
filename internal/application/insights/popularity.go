package insights

import (
	"sort"

	"github.com/jhoicas/Comparador-api/internal/application/dto"
	"github.com/jhoicas/Comparador-api/internal/domain/repository"
)

// popularShops popularity = rating*20*0.4 + goodwill*0.2 + min(productos*2,100)*0.2 + min(updates*2,100)*0.2.
func popularShops(r repository.Reader) []dto.PopularShop {
	shops := r.Shops().All()
	out := make([]dto.PopularShop, 0, len(shops))
	for _, s := range shops {
		if !s.IsActive {
			continue
		}
		listings := r.ShopProductsByShop(s.ID)
		// Se cuentan desde las publicaciones vigentes: el historial de una publicación borrada
		// se conserva pero no suma, y no es un error de integridad.
		updates := 0
		for _, sp := range listings {
			updates += len(r.PriceUpdatesByShopProduct(sp.ID))
		}

		ratingScore := minDec(s.AverageRating.Mul(twenty), hundred)
		productScore := capped(len(listings), two)
		updateScore := capped(updates, two)
		popularity := ratingScore.Mul(w04).
			Add(s.GoodwillScore.Mul(w02)).
			Add(productScore.Mul(w02)).
			Add(updateScore.Mul(w02))

		out = append(out, dto.PopularShop{
			Shop:              dto.ShopRef{ID: s.ID, Name: s.Name},
			Category:          s.Category,
			AverageRating:     s.AverageRating,
			GoodwillScore:     s.GoodwillScore,
			ProductCount:      len(listings),
			TotalPriceUpdates: updates,
			RatingScore:       ratingScore.Round(2),
			ProductScore:      productScore,
			UpdateScore:       updateScore,
			Popularity:        popularity.Round(2),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Popularity.GreaterThan(out[j].Popularity)
	})
	return out
}
