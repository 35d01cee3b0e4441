package handlers

// ShortenRequest is the request body for creating a short link.
type ShortenRequest struct {
	Body struct {
		LongURL string `doc:"The URL to shorten" example:"https://example.com/very/long/path" json:"longUrl"`
	}
}

// ShortenResponse is the response for a successfully created short link.
type ShortenResponse struct {
	Headers struct {
		Location string `doc:"The short URL location" header:"Location"`
	}
	Body struct {
		ShortURL  string `doc:"The full short URL" example:"http://localhost:3000/V1StGXR8" json:"shortUrl"`
		ShortCode string `doc:"The short code"     example:"V1StGXR8"                      json:"shortCode"`
	}
}

// RedirectRequest is the request for resolving a short code.
type RedirectRequest struct {
	ShortCode string `doc:"The short code" example:"V1StGXR8" path:"shortCode"`
}

// RedirectResponse redirects the client to the stored long URL.
type RedirectResponse struct {
	Status  int
	Headers struct {
		Location string `doc:"The original URL" header:"Location"`
	}
}
