package catalog

import "errors"

var (
	ErrInvalidCategory = errors.New("invalid clothing category")
	ErrPriceNotFound   = errors.New("no price for this item and service")
)
