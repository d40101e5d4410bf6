package catalog

import (
	"time"

	"github.com/maheenur13/laundry-lab-frontend/pkg/laundry"
)

// ClothingItem is the stored garment row. AvailableServices is kept as a
// text[] column.
type ClothingItem struct {
	ID                string
	NameEN            string
	NameBN            string
	Category          laundry.Category
	Icon              string
	AvailableServices []laundry.ServiceType
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type LaundryService struct {
	ID          string
	NameEN      string
	NameBN      string
	Type        laundry.ServiceType
	Description string
	Icon        string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Pricing struct {
	ID             string
	ClothingItemID string
	ServiceType    laundry.ServiceType
	Category       laundry.Category
	Price          int
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
