package pricing

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/Comparador-api/internal/application/dto"
	"github.com/jhoicas/Comparador-api/internal/domain"
	"github.com/jhoicas/Comparador-api/internal/domain/entity"
	"github.com/jhoicas/Comparador-api/internal/domain/repository"
)

// ReportRenderer genera la representación PDF del resumen global de precios.
type ReportRenderer interface {
	RenderPriceReport(ctx context.Context, generatedAt time.Time, items []dto.PriceSummaryItem) ([]byte, error)
}

// UseCase consultas del Price Aggregation Engine. Solo lee el Entity Store.
type UseCase struct {
	store    repository.Store
	renderer ReportRenderer
	now      func() time.Time
}

// NewUseCase construye el caso de uso. renderer puede ser nil si no se expone el reporte PDF.
func NewUseCase(store repository.Store, renderer ReportRenderer) *UseCase {
	return &UseCase{store: store, renderer: renderer, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// GetGlobalPriceSummary una entrada por producto activo, ordenada por nombre.
func (uc *UseCase) GetGlobalPriceSummary() ([]dto.PriceSummaryItem, error) {
	var summaries []Summary
	err := uc.store.View(func(r repository.Reader) error {
		var err error
		summaries, err = Summarize(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.PriceSummaryItem, len(summaries))
	for i, s := range summaries {
		items[i] = s.ToItem()
	}
	return items, nil
}

// GetProductOffers ofertas vigentes de un producto ordenadas por precio; empates por orden del almacén.
func (uc *UseCase) GetProductOffers(productID string) (*dto.ProductOffersResponse, error) {
	var out *dto.ProductOffersResponse
	err := uc.store.View(func(r repository.Reader) error {
		p, ok := r.Products().Get(productID)
		if !ok {
			return domain.NewNotFound(entity.KindProduct.Label(), productID)
		}
		offers := PricedOffers(r, productID)
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].CurrentPrice.LessThan(*offers[j].CurrentPrice)
		})

		out = &dto.ProductOffersResponse{ProductID: p.ID, ProductName: p.Name, Offers: make([]dto.OfferItem, 0, len(offers))}
		for _, sp := range offers {
			shop, ok := r.Shops().Get(sp.ShopID)
			if !ok {
				return domain.NewIntegrity(entity.KindShopProduct.Label(), sp.ID, entity.KindShop.Label(), sp.ShopID)
			}
			out.Offers = append(out.Offers, dto.OfferItem{
				ShopProductID:     sp.ID,
				Shop:              dto.ShopRef{ID: shop.ID, Name: shop.Name},
				Price:             sp.CurrentPrice.Round(2),
				LastPriceUpdateAt: sp.LastPriceUpdateAt,
				GoodwillScore:     shop.GoodwillScore,
				AverageRating:     shop.AverageRating,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetPriceReportPDF genera el PDF del resumen global y un nombre de archivo con la fecha.
func (uc *UseCase) GetPriceReportPDF(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	if uc.renderer == nil {
		return nil, "", fmt.Errorf("pricing: generador de reportes no configurado")
	}
	items, err := uc.GetGlobalPriceSummary()
	if err != nil {
		return nil, "", err
	}
	at := uc.now()
	pdfBytes, err = uc.renderer.RenderPriceReport(ctx, at, items)
	if err != nil {
		return nil, "", fmt.Errorf("pricing: generar reporte: %w", err)
	}
	return pdfBytes, fmt.Sprintf("precios_%s.pdf", at.Format("20060102")), nil
}
