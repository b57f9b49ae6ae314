package faq

import "time"

// Config holds runtime knobs for the FAQ page.
type Config struct {
	Path        string
	Title       string
	Description string
	// StateTTL bounds how long an idle session keeps its expanded set.
	StateTTL time.Duration
}
