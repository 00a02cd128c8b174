package constants

import "time"

const (
	AppName = "ghpulse"
	Version = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Profile lookup defaults
	DefaultAPIURL    = "https://api.github.com"
	DefaultTimeout   = 10 * time.Second
	DefaultDemoUser  = "phototix"
	DefaultConfigDir = "~/.config/ghpulse"
	UserAgent        = AppName + "/" + Version

	// LookupFailedReason is shown for any non-2xx profile response
	LookupFailedReason = "User not found or API rate limit exceeded"

	// NoBioPlaceholder replaces a missing profile bio
	NoBioPlaceholder = "No bio available"

	DaysPerWeek = 7
)
