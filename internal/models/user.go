// internal/models/user.go
package models

// User is the ephemeral session identity. There are no credentials and no
// account records; the capability flags gate UI affordances (only verified
// users may submit reviews, only approved creators see influence analytics)
// and vanish when the session does.
type User struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Provider       LoginProvider `json:"provider"`
	IsVerified     bool          `json:"isVerified"`
	IsBlogger      bool          `json:"isBlogger,omitempty"`
	IsInfluencer   bool          `json:"isInfluencer,omitempty"`
	IsCreator      bool          `json:"isCreator,omitempty"`
	InfluenceScore float64       `json:"influenceScore,omitempty"`
}
