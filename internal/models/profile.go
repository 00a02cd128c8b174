package models

import (
	"strings"

	"github.com/julianstephens/ghpulse/internal/constants"
)

// Profile is the public user record returned by the profile endpoint
type Profile struct {
	Login       string  `json:"login"`
	Name        *string `json:"name,omitempty"`
	AvatarURL   string  `json:"avatar_url"`
	HTMLURL     string  `json:"html_url,omitempty"`
	Bio         *string `json:"bio,omitempty"`
	PublicRepos int     `json:"public_repos"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
	PublicGists *int    `json:"public_gists,omitempty"`
}

// DisplayName falls back to the login when no name is set
func (p Profile) DisplayName() string {
	if p.Name != nil && strings.TrimSpace(*p.Name) != "" {
		return *p.Name
	}
	return p.Login
}

// BioText falls back to a fixed placeholder when no bio is set
func (p Profile) BioText() string {
	if p.Bio != nil && strings.TrimSpace(*p.Bio) != "" {
		return *p.Bio
	}
	return constants.NoBioPlaceholder
}

func (p Profile) Gists() int {
	if p.PublicGists == nil {
		return 0
	}
	return *p.PublicGists
}

// Handle returns the login prefixed with @
func (p Profile) Handle() string {
	return "@" + p.Login
}
