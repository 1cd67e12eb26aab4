package domain

// Cart is an ordered snapshot of the shopper's selection. Lines keep
// first-added-first order and hold at most one entry per ProductID.
type Cart struct {
	Lines []CartLine
}

// CartLine is a denormalized copy of a catalog product taken when it was
// first added, plus the selected quantity.
type CartLine struct {
	ProductID string
	Name      string
	UnitPrice int64
	ImageRef  string
	Category  string
	Quantity  int
}

func (l CartLine) Subtotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// TotalItems is recomputed from the lines on every call.
func (c Cart) TotalItems() int {
	var total int
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is recomputed from the lines on every call.
func (c Cart) TotalPrice() int64 {
	var total int64
	for _, line := range c.Lines {
		total += line.Subtotal()
	}
	return total
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c Cart) Find(productID string) (CartLine, bool) {
	for _, line := range c.Lines {
		if line.ProductID == productID {
			return line, true
		}
	}
	return CartLine{}, false
}

// Clone returns a copy whose Lines can be mutated without touching c.
func (c Cart) Clone() Cart {
	if c.Lines == nil {
		return Cart{}
	}
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}
