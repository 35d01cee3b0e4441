package shortener

import "time"

// Code represents a short link code.
type Code string

// Link is the durable mapping from a short code to its original URL.
type Link struct {
	Code      Code
	LongURL   string
	CreatedAt time.Time
}
