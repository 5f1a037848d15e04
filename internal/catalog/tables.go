// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package catalog

// DefaultCategory is used for stones not listed in categories.
const DefaultCategory = "Biege & Creme Collection"

var descriptions = map[string]string{
	"Astoria Ivory Pink":   "Elegant pink granite with ivory veining, perfect for modern kitchens and bathrooms.",
	"Canyon Gold":          "Rich golden granite with natural patterns, ideal for luxury interiors.",
	"Colonial Gold":        "Classic gold granite with timeless appeal for traditional and contemporary spaces.",
	"Colonial White":       "Pure white granite with subtle veining, perfect for minimalist designs.",
	"Crystal Gold":         "Crystal-infused gold granite with sparkling finish for premium projects.",
	"Imperial Gold":        "Royal gold granite with imperial patterns, perfect for grand entrances.",
	"Kashmir Gold":         "Exotic Kashmir gold granite with unique veining patterns.",
	"Millenium Ivory Gold": "Millennium collection ivory gold granite with sophisticated patterns.",
	"Shiva Gold":           "Divine gold granite with spiritual elegance for sacred spaces.",
	"Shiva Ivory Pink":     "Sacred pink granite with ivory accents, perfect for temples and homes.",
	"Vegas Gold":           "Vibrant gold granite with Vegas-style glamour for luxury projects.",
}

var categories = map[string][]string{
	"Pink Collection": {
		"Astoria Ivory Pink", "Shiva Ivory Pink", "Royal Pink", "Flamingo Pink", "Bhama Ivory Pink",
	},
	"Gold Collection": {
		"Canyon Gold", "Colonial Gold", "Crystal Gold", "Imperial Gold", "Kashmir Gold",
		"Millenium Ivory Gold", "Shiva Gold", "Vegas Gold",
	},
	"White Collection": {
		"Colonial White", "Millenium", "Mani White", "Ghibli Ivory", "Astoria Ivory",
	},
	"Premium Series & Others": {
		"Olivia Green", "Colombo Jubarna", "Classic Ivory", "Astoria",
	},
}

// categoryByTitle is the inverse of categories.
var categoryByTitle = func() map[string]string {
	m := make(map[string]string)
	for category, titles := range categories {
		for _, title := range titles {
			m[title] = category
		}
	}
	return m
}()

var (
	thicknesses = []string{"2cm", "3cm", "2-3cm"}
	finishes    = []string{"Polished", "Honed", "Leathered", "Brushed"}
)

// Availability labels.
const (
	InStock      = "In Stock"
	LimitedStock = "Limited Stock"
)

// Testimonial is a customer quote shown on the home page.
type Testimonial struct {
	Text   string
	Author string
	Rating int
}

var testimonials = []Testimonial{
	{"The quality and finish of Arihant's granite is unmatched. Our home looks stunning!", "Priya S., Chennai", 5},
	{"Professional service and beautiful granite. Highly recommended for any project.", "Ramesh K., Bangalore", 5},
	{"Arihant Granites team helped us choose the perfect stone for our hotel lobby.", "Hotel Grand, Madurai", 5},
	{"Excellent quality and timely delivery. The Kashmir Gold looks amazing in our living room!", "Anita M., Delhi", 5},
	{"Great variety and competitive prices. Very satisfied with our purchase.", "Rajesh P., Mumbai", 4},
	{"The Imperial Gold granite transformed our office reception area completely.", "Corporate Client, Hyderabad", 5},
}

// Testimonials returns a copy of the fixed testimonial list.
func Testimonials() []Testimonial {
	out := make([]Testimonial, len(testimonials))
	copy(out, testimonials)
	return out
}
