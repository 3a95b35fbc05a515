package service

import (
	"context"
	"sort"

	"food-heaven-server/internal/models"
)

// ReportingStore provides the reads behind the two reporting endpoints.
type ReportingStore interface {
	UserCount(ctx context.Context) (int64, error)
	MenuCount(ctx context.Context) (int64, error)
	PaymentCount(ctx context.Context) (int64, error)
	Revenue(ctx context.Context) (float64, error)
	AllPayments(ctx context.Context) ([]models.Payment, error)
	MenuItems(ctx context.Context) ([]models.MenuItem, error)
}

type AdminStats struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

type CategoryStat struct {
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type Reporting struct {
	Store ReportingStore
}

func (s *Reporting) AdminStats(ctx context.Context) (AdminStats, error) {
	users, err := s.Store.UserCount(ctx)
	if err != nil {
		return AdminStats{}, err
	}
	menu, err := s.Store.MenuCount(ctx)
	if err != nil {
		return AdminStats{}, err
	}
	orders, err := s.Store.PaymentCount(ctx)
	if err != nil {
		return AdminStats{}, err
	}
	revenue, err := s.Store.Revenue(ctx)
	if err != nil {
		return AdminStats{}, err
	}
	return AdminStats{Users: users, MenuItems: menu, Orders: orders, Revenue: revenue}, nil
}

func (s *Reporting) OrderStats(ctx context.Context) ([]CategoryStat, error) {
	payments, err := s.Store.AllPayments(ctx)
	if err != nil {
		return nil, err
	}
	menu, err := s.Store.MenuItems(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeOrderStats(payments, menu), nil
}

// ComputeOrderStats expands every payment's purchased line items, joins them
// against the menu catalog by id and groups by category. Line items that no
// longer match a catalog entry are dropped, so categories with no purchases
// never appear. Output is sorted by category name.
func ComputeOrderStats(payments []models.Payment, menu []models.MenuItem) []CategoryStat {
	byID := make(map[string]models.MenuItem, len(menu))
	for _, item := range menu {
		byID[item.ID.Hex()] = item
	}

	grouped := make(map[string]*CategoryStat)
	for _, p := range payments {
		for _, id := range p.MenuItemIDs {
			item, ok := byID[id]
			if !ok {
				continue
			}
			stat, ok := grouped[item.Category]
			if !ok {
				stat = &CategoryStat{Category: item.Category}
				grouped[item.Category] = stat
			}
			stat.Quantity++
			stat.Revenue += item.Price
		}
	}

	out := make([]CategoryStat, 0, len(grouped))
	for _, stat := range grouped {
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}
