package domain

// A CartLine pairs a product snapshot with the selected quantity.
//
// The line holds a copy of the product, not a reference into the
// catalog, so replacing the catalog never dangles a cart entry.
type CartLine struct {
	Product  Product
	Quantity int
}

func (l CartLine) LineTotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

type Cart struct {
	Lines []CartLine
	Open  bool
}

func (c Cart) ItemCount() (n int) {
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

func (c Cart) Subtotal() (sum float64) {
	for _, l := range c.Lines {
		sum += l.LineTotal()
	}
	return sum
}
