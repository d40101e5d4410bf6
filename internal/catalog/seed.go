package catalog

import "github.com/maheenur13/laundry-lab-frontend/pkg/laundry"

// Default catalog used by the seed endpoint and the migrate tool. IDs are
// stable so re-seeding updates rather than duplicates.

var bothServices = []laundry.ServiceType{laundry.ServiceWashing, laundry.ServiceIroning}

var defaultClothingItems = []*ClothingItem{
	{ID: "ci-shirt", NameEN: "Shirt", NameBN: "শার্ট", Category: laundry.CategoryMen, Icon: "shirt", AvailableServices: bothServices, IsActive: true},
	{ID: "ci-pant", NameEN: "Pant", NameBN: "প্যান্ট", Category: laundry.CategoryMen, Icon: "pant", AvailableServices: bothServices, IsActive: true},
	{ID: "ci-panjabi", NameEN: "Panjabi", NameBN: "পাঞ্জাবি", Category: laundry.CategoryMen, Icon: "panjabi", AvailableServices: bothServices, IsActive: true},
	{ID: "ci-tshirt", NameEN: "T-Shirt", NameBN: "টি-শার্ট", Category: laundry.CategoryMen, Icon: "tshirt", AvailableServices: []laundry.ServiceType{laundry.ServiceWashing}, IsActive: true},
	{ID: "ci-saree", NameEN: "Saree", NameBN: "শাড়ি", Category: laundry.CategoryWomen, Icon: "saree", AvailableServices: bothServices, IsActive: true},
	{ID: "ci-salwar", NameEN: "Salwar Kameez", NameBN: "সালোয়ার কামিজ", Category: laundry.CategoryWomen, Icon: "salwar", AvailableServices: bothServices, IsActive: true},
	{ID: "ci-orna", NameEN: "Orna", NameBN: "ওড়না", Category: laundry.CategoryWomen, Icon: "orna", AvailableServices: bothServices, IsActive: true},
	{ID: "ci-kids-shirt", NameEN: "Kids Shirt", NameBN: "বাচ্চাদের শার্ট", Category: laundry.CategoryChildren, Icon: "shirt", AvailableServices: bothServices, IsActive: true},
	{ID: "ci-kids-frock", NameEN: "Frock", NameBN: "ফ্রক", Category: laundry.CategoryChildren, Icon: "frock", AvailableServices: bothServices, IsActive: true},
}

var defaultServices = []*LaundryService{
	{ID: "svc-washing", NameEN: "Washing", NameBN: "ধোলাই", Type: laundry.ServiceWashing, Description: "Machine wash with premium detergent", Icon: "water", IsActive: true},
	{ID: "svc-ironing", NameEN: "Ironing", NameBN: "ইস্ত্রি", Type: laundry.ServiceIroning, Description: "Steam press and fold", Icon: "iron", IsActive: true},
}

var defaultPricing = buildDefaultPricing()

// buildDefaultPricing emits one row per (item, available service) pair with a
// flat base rate per service, children priced lower.
func buildDefaultPricing() []*Pricing {
	base := map[laundry.ServiceType]int{
		laundry.ServiceWashing: 20,
		laundry.ServiceIroning: 10,
	}

	var rows []*Pricing
	for _, it := range defaultClothingItems {
		for _, svc := range it.AvailableServices {
			price := base[svc]
			if it.Category == laundry.CategoryChildren {
				price = price / 2
			}
			rows = append(rows, &Pricing{
				ID:             "pr-" + it.ID[3:] + "-" + string(svc),
				ClothingItemID: it.ID,
				ServiceType:    svc,
				Category:       it.Category,
				Price:          price,
				IsActive:       true,
			})
		}
	}
	return rows
}
