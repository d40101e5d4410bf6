package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/maheenur13/laundry-lab-frontend/internal/logger"
	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
)

type Service interface {
	GetClothingItems(ctx context.Context, category laundry.Category) ([]*laundry.ClothingItem, error)
	// GetClothingItem returns nil, nil when the id is unknown or inactive.
	GetClothingItem(ctx context.Context, id string) (*laundry.ClothingItem, error)
	GetServices(ctx context.Context) ([]*laundry.LaundryService, error)
	GetPricing(ctx context.Context) ([]*laundry.Pricing, error)
	// UnitPrice sums the per-service prices for one garment. Every service
	// in the set must have an active price row.
	UnitPrice(ctx context.Context, clothingItemID string, category laundry.Category, services []laundry.ServiceType) (int, error)
	SeedDefault(ctx context.Context) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validCategory(c laundry.Category) bool {
	switch c {
	case laundry.CategoryMen, laundry.CategoryWomen, laundry.CategoryChildren:
		return true
	}
	return false
}

func (s *service) GetClothingItems(ctx context.Context, category laundry.Category) ([]*laundry.ClothingItem, error) {
	if category != "" && !validCategory(category) {
		return nil, ErrInvalidCategory
	}

	items, err := s.repo.ListClothingItems(ctx, category)
	if err != nil {
		return nil, err
	}

	out := make([]*laundry.ClothingItem, 0, len(items))
	for _, it := range items {
		out = append(out, itemToAPI(it))
	}
	return out, nil
}

func (s *service) GetClothingItem(ctx context.Context, id string) (*laundry.ClothingItem, error) {
	it, err := s.repo.FindClothingItem(ctx, id)
	if err != nil || it == nil {
		return nil, err
	}
	return itemToAPI(it), nil
}

func (s *service) GetServices(ctx context.Context) ([]*laundry.LaundryService, error) {
	services, err := s.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*laundry.LaundryService, 0, len(services))
	for _, sv := range services {
		out = append(out, serviceToAPI(sv))
	}
	return out, nil
}

func (s *service) GetPricing(ctx context.Context) ([]*laundry.Pricing, error) {
	pricing, err := s.repo.ListPricing(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*laundry.Pricing, 0, len(pricing))
	for _, p := range pricing {
		out = append(out, pricingToAPI(p))
	}
	return out, nil
}

func (s *service) UnitPrice(ctx context.Context, clothingItemID string, category laundry.Category, services []laundry.ServiceType) (int, error) {
	if !validCategory(category) {
		return 0, ErrInvalidCategory
	}

	total := 0
	for _, svc := range services {
		price, err := s.repo.FindPrice(ctx, clothingItemID, svc, category)
		if err != nil {
			return 0, err
		}
		total += price
	}
	return total, nil
}

func (s *service) SeedDefault(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	if err := s.repo.Seed(ctx, defaultClothingItems, defaultServices, defaultPricing); err != nil {
		log.Error("failed to seed catalog", zap.Error(err))
		return err
	}

	log.Info("catalog seeded",
		zap.Int("clothing_items", len(defaultClothingItems)),
		zap.Int("services", len(defaultServices)),
		zap.Int("pricing_rows", len(defaultPricing)),
	)
	return nil
}
