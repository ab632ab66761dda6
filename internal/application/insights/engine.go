// Package insights implementa el motor de rankings: popularidad de tiendas, tendencia de
// productos, detección de ofertas y el feed de recomendaciones. Los pesos y topes son contractuales.
package insights

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comparador-api/internal/application/dto"
	"github.com/jhoicas/Comparador-api/internal/application/pricing"
	"github.com/jhoicas/Comparador-api/internal/domain/repository"
	"github.com/jhoicas/Comparador-api/pkg/config"
)

var (
	hundred = decimal.NewFromInt(100)
	twenty  = decimal.NewFromInt(20)
	ten     = decimal.NewFromInt(10)
	two     = decimal.NewFromInt(2)
	five    = decimal.NewFromInt(5)

	w04 = decimal.RequireFromString("0.4")
	w03 = decimal.RequireFromString("0.3")
	w02 = decimal.RequireFromString("0.2")
)

// Engine calcula las vistas derivadas sobre una lectura consistente del Entity Store.
type Engine struct {
	store  repository.Store
	now    func() time.Time
	recent time.Duration
	prior  time.Duration
}

// NewEngine construye el motor con las ventanas de tendencia configuradas.
func NewEngine(store repository.Store, cfg config.InsightsConfig) *Engine {
	recent, prior := cfg.RecentWindowDays, cfg.PriorWindowDays
	if recent <= 0 {
		recent = 7
	}
	if prior <= recent {
		prior = 2 * recent
	}
	return &Engine{
		store:  store,
		now:    time.Now,
		recent: time.Duration(recent) * 24 * time.Hour,
		prior:  time.Duration(prior) * 24 * time.Hour,
	}
}

// WithClock fija el instante de evaluación (tests).
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// GetPopularShops tiendas activas por popularidad descendente. limit <= 0 devuelve todas.
func (e *Engine) GetPopularShops(limit int) ([]dto.PopularShop, error) {
	var out []dto.PopularShop
	err := e.store.View(func(r repository.Reader) error {
		out = popularShops(r)
		return nil
	})
	return truncate(out, limit), err
}

// GetTrendingProducts productos con oferta vigente por trendScore descendente.
func (e *Engine) GetTrendingProducts(limit int) ([]dto.TrendingProduct, error) {
	var out []dto.TrendingProduct
	err := e.store.View(func(r repository.Reader) error {
		var err error
		out, err = e.trending(r, e.now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return truncate(out, limit), nil
}

// GetDeals ofertas por dealScore descendente.
func (e *Engine) GetDeals(limit int) ([]dto.Deal, error) {
	var out []dto.Deal
	err := e.store.View(func(r repository.Reader) error {
		summaries, err := pricing.Summarize(r)
		if err != nil {
			return err
		}
		out = deals(summaries)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return truncate(out, limit), nil
}

func truncate[T any](items []T, limit int) []T {
	if items == nil {
		return []T{}
	}
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

func minDec(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

func capped(n int, factor decimal.Decimal) decimal.Decimal {
	return minDec(decimal.NewFromInt(int64(n)).Mul(factor), hundred)
}
