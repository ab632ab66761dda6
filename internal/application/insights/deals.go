package insights

import (
	"sort"

	"github.com/jhoicas/Comparador-api/internal/application/dto"
	"github.com/jhoicas/Comparador-api/internal/application/pricing"
)

// deals dealScore = savingsPct*10 + 20 si hay más de una tienda. Se descartan ahorros < 5%.
func deals(summaries []pricing.Summary) []dto.Deal {
	out := make([]dto.Deal, 0)
	for _, s := range summaries {
		if s.Min == nil || s.Min.Equal(*s.Avg) || !s.Avg.IsPositive() {
			continue
		}
		savings := s.Avg.Sub(*s.Min)
		pct := savings.Div(*s.Avg).Mul(hundred)
		if pct.LessThan(five) {
			continue
		}
		score := pct.Mul(ten)
		if s.ShopCount() > 1 {
			score = score.Add(twenty)
		}
		out = append(out, dto.Deal{
			ProductID:   s.Product.ID,
			ProductName: s.Product.Name,
			Category:    s.Product.Category,
			BestShop:    dto.ShopRef{ID: s.BestShop.ID, Name: s.BestShop.Name},
			MinPrice:    s.Min.Round(2),
			AvgPrice:    s.Avg.Round(2),
			Savings:     savings.Round(2),
			SavingsPct:  pct.Round(2),
			ShopCount:   s.ShopCount(),
			DealScore:   score.Round(2),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DealScore.GreaterThan(out[j].DealScore)
	})
	return out
}
