package domain

type Product struct {
	ID          string
	Name        string
	Price       int64
	Description string
	ImageRef    string
	Category    string
}

// NewCartLine snapshots the product so later catalog edits do not leak into
// lines that are already in a cart.
func NewCartLine(p Product) CartLine {
	return CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		ImageRef:  p.ImageRef,
		Category:  p.Category,
		Quantity:  1,
	}
}
