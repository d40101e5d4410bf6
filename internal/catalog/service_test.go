package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListClothingItems(ctx context.Context, category laundry.Category) ([]*ClothingItem, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ClothingItem), args.Error(1)
}

func (m *MockRepository) FindClothingItem(ctx context.Context, id string) (*ClothingItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ClothingItem), args.Error(1)
}

func (m *MockRepository) ListServices(ctx context.Context) ([]*LaundryService, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*LaundryService), args.Error(1)
}

func (m *MockRepository) ListPricing(ctx context.Context) ([]*Pricing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Pricing), args.Error(1)
}

func (m *MockRepository) FindPrice(ctx context.Context, clothingItemID string, serviceType laundry.ServiceType, category laundry.Category) (int, error) {
	args := m.Called(ctx, clothingItemID, serviceType, category)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) Seed(ctx context.Context, items []*ClothingItem, services []*LaundryService, pricing []*Pricing) error {
	args := m.Called(ctx, items, services, pricing)
	return args.Error(0)
}

func TestService_GetClothingItems(t *testing.T) {
	t.Run("Maps To Wire Shape", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("ListClothingItems", mock.Anything, laundry.CategoryMen).Return([]*ClothingItem{
			{
				ID: "ci-shirt", NameEN: "Shirt", NameBN: "শার্ট",
				Category: laundry.CategoryMen, Icon: "shirt",
				AvailableServices: bothServices, IsActive: true,
			},
		}, nil)

		svc := NewService(repo)
		items, err := svc.GetClothingItems(context.Background(), laundry.CategoryMen)

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Shirt", items[0].Name.En)
		assert.Equal(t, "শার্ট", items[0].Name.Bn)
	})

	t.Run("Empty Category Lists All", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("ListClothingItems", mock.Anything, laundry.Category("")).Return([]*ClothingItem{}, nil)

		svc := NewService(repo)
		items, err := svc.GetClothingItems(context.Background(), "")

		require.NoError(t, err)
		assert.Empty(t, items)
		repo.AssertExpectations(t)
	})

	t.Run("Unknown Category Rejected", func(t *testing.T) {
		svc := NewService(new(MockRepository))
		_, err := svc.GetClothingItems(context.Background(), "pets")
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})
}

func TestService_UnitPrice(t *testing.T) {
	t.Run("Sums Service Prices", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindPrice", mock.Anything, "ci-shirt", laundry.ServiceWashing, laundry.CategoryMen).Return(20, nil)
		repo.On("FindPrice", mock.Anything, "ci-shirt", laundry.ServiceIroning, laundry.CategoryMen).Return(10, nil)

		svc := NewService(repo)
		price, err := svc.UnitPrice(context.Background(), "ci-shirt", laundry.CategoryMen, bothServices)

		require.NoError(t, err)
		assert.Equal(t, 30, price)
	})

	t.Run("Missing Price Fails The Whole Lookup", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("FindPrice", mock.Anything, "ci-shirt", laundry.ServiceWashing, laundry.CategoryMen).Return(0, ErrPriceNotFound)

		svc := NewService(repo)
		_, err := svc.UnitPrice(context.Background(), "ci-shirt", laundry.CategoryMen, []laundry.ServiceType{laundry.ServiceWashing})

		assert.ErrorIs(t, err, ErrPriceNotFound)
	})
}

func TestDefaultSeedConsistency(t *testing.T) {
	// every pricing row must point at a seeded item and one of its
	// available services
	items := map[string]*ClothingItem{}
	for _, it := range defaultClothingItems {
		items[it.ID] = it
	}

	for _, p := range defaultPricing {
		it, ok := items[p.ClothingItemID]
		require.True(t, ok, "pricing row %s references unknown item", p.ID)
		assert.Equal(t, it.Category, p.Category)
		assert.Contains(t, it.AvailableServices, p.ServiceType)
		assert.Greater(t, p.Price, 0)
	}
}

func TestService_SeedDefault(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Seed", mock.Anything, defaultClothingItems, defaultServices, defaultPricing).Return(nil)

	svc := NewService(repo)
	require.NoError(t, svc.SeedDefault(context.Background()))
	repo.AssertExpectations(t)
}
