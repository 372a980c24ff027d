package domain

type Product struct {
	ProductID     string
	Name          string
	Description   string
	Price         float64
	OriginalPrice float64
	Image         string
	Category      string
	Rating        float64
	Stock         int
	Tags          []string
	Features      []string
}

// Discounted reports whether the product carries a crossed-out
// original price above the current one.
func (p Product) Discounted() bool {
	return p.OriginalPrice > p.Price
}
