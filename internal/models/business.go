// internal/models/business.go
package models

// BusinessListing is a directory entry. Entries created through the creative
// studio wizard exist only in session memory alongside the seeded entries.
type BusinessListing struct {
	ID              string          `json:"id"`
	BusinessName    string          `json:"businessName"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	Slogan          string          `json:"slogan,omitempty"`
	Location        string          `json:"location"`
	Address         string          `json:"address,omitempty"`
	Website         string          `json:"website,omitempty"`
	Phone           string          `json:"phone,omitempty"`
	Contact         string          `json:"contact,omitempty"`
	Rating          float64         `json:"rating"`
	IsVerified      bool            `json:"isVerified"`
	Image           string          `json:"image"`
	Style           string          `json:"style,omitempty"`
	Color           string          `json:"color,omitempty"`
	VerifiedReviews []SocialComment `json:"verifiedReviews,omitempty"`
}
