package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"food-heaven-server/internal/models"
)

func TestComputeOrderStats(t *testing.T) {
	pizza := models.MenuItem{ID: primitive.NewObjectID(), Category: "Pizza", Price: 10}
	salad := models.MenuItem{ID: primitive.NewObjectID(), Category: "Salad", Price: 6.5}
	dessert := models.MenuItem{ID: primitive.NewObjectID(), Category: "Dessert", Price: 4}
	menu := []models.MenuItem{pizza, salad, dessert}

	payments := []models.Payment{
		{MenuItemIDs: []string{pizza.ID.Hex(), salad.ID.Hex()}},
		{MenuItemIDs: []string{pizza.ID.Hex(), "missing-item"}},
	}

	stats := ComputeOrderStats(payments, menu)
	assert.Equal(t, []CategoryStat{
		{Category: "Pizza", Quantity: 2, Revenue: 20},
		{Category: "Salad", Quantity: 1, Revenue: 6.5},
	}, stats, "unpurchased categories and dangling line items are dropped")
}

func TestComputeOrderStatsSingleItem(t *testing.T) {
	item := models.MenuItem{ID: primitive.NewObjectID(), Category: "Pizza", Price: 10}
	payments := []models.Payment{{MenuItemIDs: []string{item.ID.Hex()}}}

	stats := ComputeOrderStats(payments, []models.MenuItem{item})
	assert.Equal(t, []CategoryStat{{Category: "Pizza", Quantity: 1, Revenue: 10}}, stats)
}

func TestComputeOrderStatsEmpty(t *testing.T) {
	stats := ComputeOrderStats(nil, nil)
	assert.Empty(t, stats)
}

type fakeReportingStore struct {
	users, menu, orders int64
	revenue             float64
	payments            []models.Payment
	items               []models.MenuItem
}

func (f *fakeReportingStore) UserCount(context.Context) (int64, error)    { return f.users, nil }
func (f *fakeReportingStore) MenuCount(context.Context) (int64, error)    { return f.menu, nil }
func (f *fakeReportingStore) PaymentCount(context.Context) (int64, error) { return f.orders, nil }
func (f *fakeReportingStore) Revenue(context.Context) (float64, error)    { return f.revenue, nil }
func (f *fakeReportingStore) AllPayments(context.Context) ([]models.Payment, error) {
	return f.payments, nil
}
func (f *fakeReportingStore) MenuItems(context.Context) ([]models.MenuItem, error) {
	return f.items, nil
}

func TestAdminStats(t *testing.T) {
	svc := &Reporting{Store: &fakeReportingStore{users: 4, menu: 12, orders: 3, revenue: 59.97}}

	stats, err := svc.AdminStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, AdminStats{Users: 4, MenuItems: 12, Orders: 3, Revenue: 59.97}, stats)
}

func TestAdminStatsNoPayments(t *testing.T) {
	svc := &Reporting{Store: &fakeReportingStore{users: 1}}

	stats, err := svc.AdminStats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.Revenue)
	assert.Zero(t, stats.Orders)
}
