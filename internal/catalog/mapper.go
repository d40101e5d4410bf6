package catalog

import "github.com/maheenur13/laundry-lab-frontend/pkg/laundry"

func itemToAPI(it *ClothingItem) *laundry.ClothingItem {
	return &laundry.ClothingItem{
		ID:                it.ID,
		Name:              laundry.LocalizedText{En: it.NameEN, Bn: it.NameBN},
		Category:          it.Category,
		Icon:              it.Icon,
		AvailableServices: it.AvailableServices,
		IsActive:          it.IsActive,
	}
}

func serviceToAPI(s *LaundryService) *laundry.LaundryService {
	return &laundry.LaundryService{
		ID:          s.ID,
		Name:        laundry.LocalizedText{En: s.NameEN, Bn: s.NameBN},
		Type:        s.Type,
		Description: s.Description,
		Icon:        s.Icon,
		IsActive:    s.IsActive,
	}
}

func pricingToAPI(p *Pricing) *laundry.Pricing {
	return &laundry.Pricing{
		ID:             p.ID,
		ClothingItemID: p.ClothingItemID,
		ServiceType:    p.ServiceType,
		Category:       p.Category,
		Price:          p.Price,
		IsActive:       p.IsActive,
	}
}
