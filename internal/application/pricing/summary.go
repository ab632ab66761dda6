// Package pricing implementa el Price Aggregation Engine: vista de mercado por producto
// calculada al vuelo desde los ShopProduct vigentes, sin caché.
package pricing

import (
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/Comparador-api/internal/application/dto"
	"github.com/jhoicas/Comparador-api/internal/domain"
	"github.com/jhoicas/Comparador-api/internal/domain/entity"
	"github.com/jhoicas/Comparador-api/internal/domain/repository"
)

// Summary vista de mercado de un producto con precisión completa.
// Min, Max, Avg y BestShop son nil cuando no hay ofertas con precio.
type Summary struct {
	Product  entity.Product
	Offers   []entity.ShopProduct // disponibles y con precio, en orden del almacén
	Min      *decimal.Decimal
	Max      *decimal.Decimal
	Avg      *decimal.Decimal
	BestShop *entity.Shop
}

// ShopCount número de tiendas con oferta vigente (una fila por par tienda/producto).
func (s Summary) ShopCount() int { return len(s.Offers) }

// Summarize calcula la vista de todos los productos activos, ordenada por nombre.
// Debe llamarse dentro de un mismo Store.View para ver un estado consistente.
func Summarize(r repository.Reader) ([]Summary, error) {
	products := r.Products().All()
	out := make([]Summary, 0, len(products))
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		s, err := SummarizeProduct(r, p)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	SortByName(out, func(s Summary) string { return s.Product.Name })
	return out, nil
}

// SummarizeProduct calcula la vista de un producto.
func SummarizeProduct(r repository.Reader, p entity.Product) (Summary, error) {
	s := Summary{Product: p, Offers: PricedOffers(r, p.ID)}
	if len(s.Offers) == 0 {
		return s, nil
	}

	var (
		best = s.Offers[0]
		lo   = *best.CurrentPrice
		hi   = lo
		sum  = decimal.Zero
	)
	for _, sp := range s.Offers {
		price := *sp.CurrentPrice
		sum = sum.Add(price)
		// Estricto: ante empate gana la primera en orden del almacén.
		if price.LessThan(lo) {
			lo, best = price, sp
		}
		if price.GreaterThan(hi) {
			hi = price
		}
	}
	avg := sum.Div(decimal.NewFromInt(int64(len(s.Offers))))

	shop, ok := r.Shops().Get(best.ShopID)
	if !ok {
		return Summary{}, domain.NewIntegrity(entity.KindShopProduct.Label(), best.ID, entity.KindShop.Label(), best.ShopID)
	}
	s.Min, s.Max, s.Avg, s.BestShop = &lo, &hi, &avg, &shop
	return s, nil
}

// PricedOffers publicaciones disponibles y con precio de un producto, en orden del almacén.
func PricedOffers(r repository.Reader, productID string) []entity.ShopProduct {
	all := r.ShopProductsByProduct(productID)
	out := make([]entity.ShopProduct, 0, len(all))
	for _, sp := range all {
		if sp.Priced() {
			out = append(out, sp)
		}
	}
	return out
}

// SortByName orden estable por nombre sin distinguir mayúsculas ni acentos.
func SortByName[T any](items []T, name func(T) string) {
	c := collate.New(language.Spanish, collate.IgnoreCase, collate.IgnoreDiacritics)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(name(items[i]), name(items[j])) < 0
	})
}

// ToItem convierte a DTO redondeando los precios a 2 decimales.
func (s Summary) ToItem() dto.PriceSummaryItem {
	item := dto.PriceSummaryItem{
		ProductID:   s.Product.ID,
		ProductName: s.Product.Name,
		Category:    s.Product.Category,
		Unit:        s.Product.Unit,
		ShopCount:   s.ShopCount(),
	}
	if s.Min != nil {
		item.MinPrice = round(*s.Min)
		item.MaxPrice = round(*s.Max)
		item.AvgPrice = round(*s.Avg)
		item.BestShop = &dto.ShopRef{ID: s.BestShop.ID, Name: s.BestShop.Name}
	}
	return item
}

func round(d decimal.Decimal) *decimal.Decimal {
	r := d.Round(2)
	return &r
}
