// Package catalog holds the boutique's fixed product list.
package catalog

import (
	"fmt"

	"github.com/nikolayk812/boutique/internal/domain"
)

const featuredCount = 3

// Product ids are case-sensitive: "modern-wear" and "Modern-wear" are two
// different products.
var products = []domain.Product{
	{
		ID:          "Mo-dress",
		Name:        "Single Straight Model",
		Price:       350,
		Description: "Exquisite Straight-fit wear crafted with love and precision. Custom designs that make your special day unforgettable.",
		ImageRef:    "/Single.jpeg",
		Category:    "Traditional",
	},
	{
		ID:          "modern-wear",
		Name:        "Single umbrella Model",
		Price:       350,
		Description: "Perfectly fitted with intricate detailing. From simple elegance to designer patterns.",
		ImageRef:    "/Single Umbrella.jpeg",
		Category:    "Modern",
	},
	{
		ID:          "Frill-Model",
		Name:        "Layers Frill Model",
		Price:       400,
		Description: "Elegant churidar sets tailored to perfection. Comfortable fit with beautiful finishing.",
		ImageRef:    "/Layers Fril.jpeg",
		Category:    "Frill",
	},
	{
		ID:          "Modern-wear",
		Name:        "Double Umbrella Model",
		Price:       400,
		Description: "Double Umbrella Model that adds a touch of royalty. Intricate handwork on any fabric.",
		ImageRef:    "/Double.jpeg",
		Category:    "Modern",
	},
	{
		ID:          "kids-wear",
		Name:        "Kids Wear",
		Price:       200,
		Description: "Adorable outfits for little ones. Comfortable, colorful, and crafted with care.",
		ImageRef:    "/Kids.jpeg",
		Category:    "Kids",
	},
	{
		ID:          "custom-designer",
		Name:        "Custom Designer Outfit",
		Price:       500,
		Description: "Bring your vision to life with our custom designer service. Unique creations for special occasions.",
		ImageRef:    "/Custom.jpeg",
		Category:    "Designer",
	},
}

// All returns the products in display order. The slice is a copy.
func All() []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out
}

// Featured returns the products shown on the home page.
func Featured() []domain.Product {
	return All()[:featuredCount]
}

func Find(id string) (domain.Product, error) {
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("product[%s] not found", id)
}
