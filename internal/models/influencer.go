// internal/models/influencer.go
package models

type InfluencerProfile struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Handle         string          `json:"handle"`
	Email          string          `json:"email,omitempty"`
	Avatar         string          `json:"avatar"`
	Category       string          `json:"category"`
	TrustScore     float64         `json:"trustScore"`
	TotalReviews   int             `json:"totalReviews"`
	Collaborations int             `json:"collaborations"`
	Followers      int             `json:"followers"`
	IsVerified     bool            `json:"isVerified"`
	AlignmentScore float64         `json:"alignmentScore,omitempty"`
	TopReviews     []SocialComment `json:"topReviews,omitempty"`
	RecentBlogs    []BlogPost      `json:"recentBlogs,omitempty"`
}

// CollabMatch is one matchmaking result between a brand and an influencer
// (or the reverse, depending on the requested target).
type CollabMatch struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Reach        string  `json:"reach"`
	Description  string  `json:"description"`
	MatchedPulse float64 `json:"matchedPulse"`
	Email        string  `json:"email"`
}

type BlogPost struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	Content    string `json:"content"`
	Category   string `json:"category"`
	Date       string `json:"date"`
	IsVerified bool   `json:"isVerified"`
	ReadTime   string `json:"readTime,omitempty"`
	Likes      int    `json:"likes"`
	VideoURL   string `json:"videoUrl,omitempty"`
}
