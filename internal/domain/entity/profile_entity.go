package entity

import "time"

// Social platform keys accepted in a profile's social link map.
const (
	SocialYoutube   = "youtube"
	SocialFacebook  = "facebook"
	SocialTwitter   = "twitter"
	SocialInstagram = "instagram"
	SocialLinkedin  = "linkedin"
)

// ProfileOwner carries the owning user's display fields, resolved on reads so
// a profile never leaves the API without them.
type ProfileOwner struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Experience is a sub-record embedded in a profile. Entries are ordered
// most-recent-first by insertion, not by any derived sort.
type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	From        string `json:"from"`
	To          string `json:"to,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// Education mirrors Experience with the education field set.
type Education struct {
	ID           string `json:"id"`
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	From         string `json:"from"`
	To           string `json:"to,omitempty"`
	Current      bool   `json:"current"`
	Description  string `json:"description,omitempty"`
}

// Profile is the one-to-one extension of a User. Experience and Education
// persist as part of the profile row; they are not independently addressable.
type Profile struct {
	ID             string            `json:"id"`
	UserID         string            `json:"user_id"`
	User           ProfileOwner      `json:"user"`
	Company        string            `json:"company,omitempty"`
	Website        string            `json:"website,omitempty"`
	Location       string            `json:"location,omitempty"`
	Bio            string            `json:"bio,omitempty"`
	Status         string            `json:"status"`
	GithubUsername string            `json:"github_username,omitempty"`
	Skills         []string          `json:"skills"`
	Social         map[string]string `json:"social,omitempty"`
	Experience     []Experience      `json:"experience"`
	Education      []Education       `json:"education"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
