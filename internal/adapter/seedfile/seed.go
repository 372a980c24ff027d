package seedfile

import "github.com/hovixy/storefront/internal/core/domain"

// Builtin returns the built-in catalog seed: the mock products the
// storefront ships with when no snapshot file is configured.
func Builtin() []domain.Product {
	return []domain.Product{
		{
			ProductID:     "1",
			Name:          "Quantum Laptop X1",
			Description:   "Next-gen computing with quantum processing capabilities",
			Price:         2999.99,
			OriginalPrice: 3499.99,
			Image:         "https://images.unsplash.com/photo-1603302576837-37561b2e2302?w=400",
			Category:      "Electronics",
			Rating:        4.8,
			Stock:         15,
			Tags:          []string{"quantum", "laptop", "premium"},
			Features:      []string{"Quantum CPU", "Holographic Display", "Neural Interface"},
		},
		{
			ProductID:   "2",
			Name:        "Neural Headset Pro",
			Description: "Immersive VR experience with neural feedback",
			Price:       799.99,
			Image:       "https://images.unsplash.com/photo-1593118247619-e2d6f056869e?w=400",
			Category:    "Electronics",
			Rating:      4.6,
			Stock:       30,
			Tags:        []string{"vr", "gaming", "neural"},
			Features:    []string{"8K Resolution", "Haptic Feedback", "Brain-Computer Interface"},
		},
		{
			ProductID:   "3",
			Name:        "Solar Jacket",
			Description: "Smart jacket with integrated solar panels",
			Price:       249.99,
			Image:       "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=400",
			Category:    "Fashion",
			Rating:      4.4,
			Stock:       50,
			Tags:        []string{"smart", "sustainable", "techwear"},
			Features:    []string{"Solar Charging", "Climate Control", "LED Display"},
		},
	}
}
