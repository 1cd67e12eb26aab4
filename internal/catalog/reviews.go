package catalog

import (
	"time"

	"github.com/nikolayk812/boutique/internal/domain"
)

const featuredReviewCount = 3

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

var reviews = []domain.Review{
	{
		ID:            "1",
		CustomerName:  "Priya Bhavan",
		CustomerImage: "/placeholder.svg",
		ProductName:   "Single Straight Model",
		ProductImage:  "/placeholder.svg",
		Rating:        5,
		Message:       "Absolutely stunning work! My bridal lehenga was beyond my expectations. The attention to detail and the quality of stitching was impeccable. Thank you for making my special day even more beautiful!",
		Date:          day(2024, time.January, 15),
	},
	{
		ID:            "2",
		CustomerName:  "Harini Shivaraj",
		CustomerImage: "/placeholder.svg",
		ProductName:   "Aari Embroidery Work",
		ProductImage:  "/placeholder.svg",
		Rating:        5,
		Message:       "The Aari embroidery on my saree blouse is breathtaking! The intricate patterns and vibrant colors exceeded all my expectations. Truly artisan craftsmanship.",
		Date:          day(2024, time.October, 10),
	},
	{
		ID:            "3",
		CustomerName:  "Ishu",
		CustomerImage: "/placeholder.svg",
		ProductName:   "Blouse Stitching",
		ProductImage:  "/placeholder.svg",
		Rating:        5,
		Message:       "Perfect fit every single time! I've been coming here for all my blouse stitching needs. The team understands exactly what I want and delivers perfection.",
		Date:          day(2025, time.April, 5),
	},
	{
		ID:            "4",
		CustomerName:  "Sureka",
		CustomerImage: "/placeholder.svg",
		ProductName:   "Custom Designer Outfit",
		ProductImage:  "/placeholder.svg",
		Rating:        5,
		Message:       "Got a custom anarkali designed for my daughter's engagement. The design, fabric selection, and finishing were all top-notch. Highly recommend!",
		Date:          day(2025, time.August, 28),
	},
	{
		ID:            "5",
		CustomerName:  "Varsha",
		CustomerImage: "/placeholder.svg",
		ProductName:   "Layers Frill Model",
		ProductImage:  "/placeholder.svg",
		Rating:        5,
		Message:       "The churidar set I ordered fits like a dream! The stitching quality is excellent and the delivery was right on time. Will definitely order again.",
		Date:          day(2025, time.December, 20),
	},
	{
		ID:            "6",
		CustomerName:  "Vasundra",
		CustomerImage: "/placeholder.svg",
		ProductName:   "Double Umbrella Model",
		ProductImage:  "/placeholder.svg",
		Rating:        5,
		Message:       "My little one looked adorable in the custom pavadai! The fabric was so soft and the stitching was perfect. Thank you for the wonderful work!",
		Date:          day(2026, time.January, 15),
	},
}

// Reviews returns the testimonials in display order. The slice is a copy.
func Reviews() []domain.Review {
	out := make([]domain.Review, len(reviews))
	copy(out, reviews)
	return out
}

// FeaturedReviews returns the testimonials shown on the home page.
func FeaturedReviews() []domain.Review {
	return Reviews()[:featuredReviewCount]
}
