package services

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/shopease/core/internal/domain/entities"
	"github.com/shopease/core/internal/infrastructure/logger"
	"github.com/shopease/core/internal/ports"
)

// topProductsLimit caps the top-products report length.
const topProductsLimit = 5

// ReportService derives the admin dashboard reports from the live
// collections. Nothing is precomputed or cached; every report is a full scan.
type ReportService struct {
	products ports.ProductRepository
	orders   ports.OrderRepository
	users    ports.UserStore
	logger   *logger.Logger
}

// NewReportService creates a new report service
func NewReportService(products ports.ProductRepository, orders ports.OrderRepository, users ports.UserStore, logger *logger.Logger) *ReportService {
	return &ReportService{products: products, orders: orders, users: users, logger: logger}
}

// Summary returns store-wide totals.
func (s *ReportService) Summary(ctx context.Context) (entities.SummaryReport, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return entities.SummaryReport{}, err
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return entities.SummaryReport{}, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return entities.SummaryReport{}, err
	}

	var revenue float64
	for _, o := range orders {
		revenue += o.Total
	}

	report := entities.SummaryReport{
		TotalRevenue:  revenue,
		TotalOrders:   len(orders),
		TotalProducts: len(products),
		TotalUsers:    len(users),
	}
	if report.TotalOrders > 0 {
		report.AverageOrderValue = round2(revenue / float64(report.TotalOrders))
	}

	return report, nil
}

// Sales returns the monthly sales series for the six months ending now.
func (s *ReportService) Sales(ctx context.Context) ([]entities.SalesPoint, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	return salesSeries(orders, time.Now().UTC()), nil
}

// salesSeries buckets orders by calendar month, oldest first.
func salesSeries(orders []entities.Order, now time.Time) []entities.SalesPoint {
	type bucket struct {
		sales  float64
		orders int
	}

	buckets := make(map[string]*bucket, 6)
	series := make([]entities.SalesPoint, 0, 6)
	months := make([]time.Time, 0, 6)
	for i := 5; i >= 0; i-- {
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		months = append(months, m)
		buckets[m.Format("Jan 2006")] = &bucket{}
	}

	for _, o := range orders {
		key := o.CreatedAt.UTC().Format("Jan 2006")
		if b, ok := buckets[key]; ok {
			b.sales += o.Total
			b.orders++
		}
	}

	for _, m := range months {
		b := buckets[m.Format("Jan 2006")]
		series = append(series, entities.SalesPoint{
			Month:  m.Format("Jan"),
			Sales:  round2(b.sales),
			Orders: b.orders,
		})
	}

	return series
}

// TopProducts returns the five products with the highest order revenue,
// aggregated from order item snapshots.
func (s *ReportService) TopProducts(ctx context.Context) ([]entities.TopProduct, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	return topProducts(orders), nil
}

func topProducts(orders []entities.Order) []entities.TopProduct {
	totals := make(map[string]*entities.TopProduct)
	ids := []string{}

	for _, o := range orders {
		for _, item := range o.Items {
			t, ok := totals[item.ID]
			if !ok {
				t = &entities.TopProduct{ID: item.ID, Name: item.Name}
				totals[item.ID] = t
				ids = append(ids, item.ID)
			}
			t.Sales += item.Quantity
			t.Revenue += item.Price * float64(item.Quantity)
		}
	}

	sort.SliceStable(ids, func(i, j int) bool {
		return totals[ids[i]].Revenue > totals[ids[j]].Revenue
	})

	top := make([]entities.TopProduct, 0, topProductsLimit)
	for _, id := range ids {
		if len(top) == topProductsLimit {
			break
		}
		t := *totals[id]
		t.Revenue = round2(t.Revenue)
		top = append(top, t)
	}

	return top
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
