package analytics

import "time"

// Event topics.
const (
	TopicLinkCreated  = "link.created"
	TopicLinkAccessed = "link.accessed"
)

// Event type discriminators carried in the payload.
const (
	EventCreated  = "created"
	EventAccessed = "accessed"
)

// LinkCreatedEvent is emitted after a link is durably stored.
type LinkCreatedEvent struct {
	Event     string    `json:"event"`
	EventID   string    `json:"eventId"`
	ShortCode string    `json:"shortCode"`
	LongURL   string    `json:"longUrl"`
	Timestamp time.Time `json:"timestamp"`
	ClientIP  string    `json:"clientIp,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
}

// LinkAccessedEvent is emitted after a successful resolution. Cache
// reports whether the redirect was served from the cache.
type LinkAccessedEvent struct {
	Event     string    `json:"event"`
	EventID   string    `json:"eventId"`
	ShortCode string    `json:"shortCode"`
	LongURL   string    `json:"longUrl"`
	Cache     bool      `json:"cache"`
	Timestamp time.Time `json:"timestamp"`
	ClientIP  string    `json:"clientIp,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	Referrer  string    `json:"referrer,omitempty"`
}
