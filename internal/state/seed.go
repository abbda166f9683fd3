// internal/state/seed.go
package state

import "github.com/trustpulse/pulse-backend/internal/models"

// SeedListings returns the two demo directory entries every fresh session
// starts with.
func SeedListings() []models.BusinessListing {
	return []models.BusinessListing{
		{
			ID:           "1",
			BusinessName: "EcoTech Solutions",
			Category:     "Services",
			Description:  "Helping brands transition to net-zero logistics and manufacturing.",
			Slogan:       "Clean Code, Green Future",
			Location:     "Austin, TX",
			Address:      "123 Solar Way, Austin, TX",
			Phone:        "+1 512-555-0199",
			Website:      "https://ecotech.io",
			Contact:      "contact@ecotech.io",
			Rating:       4.8,
			IsVerified:   true,
			Image:        "https://images.unsplash.com/photo-1497366216548-37526070297c?auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:           "2",
			BusinessName: "Lumina Dental",
			Category:     "Health",
			Description:  "Premium cosmetic and general dentistry with AI-driven diagnostics.",
			Slogan:       "A Brighter Pulse for Your Smile",
			Location:     "New York, NY",
			Address:      "55 Madison Ave, New York, NY",
			Phone:        "+1 212-555-0144",
			Website:      "https://lumina.dental",
			Contact:      "hello@lumina.dental",
			Rating:       4.9,
			IsVerified:   true,
			Image:        "https://images.unsplash.com/photo-1629909613654-28e377c37b09?auto=format&fit=crop&w=800&q=80",
		},
	}
}
