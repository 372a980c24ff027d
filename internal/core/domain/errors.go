package domain

import "errors"

// ErrNotFound reports a product id unknown to the catalog.
var ErrNotFound = errors.New("product not found")
