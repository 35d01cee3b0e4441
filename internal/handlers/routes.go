package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes registers the link routes.
func RegisterRoutes(api huma.API, links *LinkHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "shorten-url",
		Method:        http.MethodPost,
		Path:          "/api/shorten",
		Summary:       "Create short link",
		Description:   "Stores the long URL under a freshly generated short code.",
		DefaultStatus: http.StatusCreated,
		Tags:          []string{"Links"},
	}, links.ShortenURL)

	huma.Register(api, huma.Operation{
		OperationID: "redirect",
		Method:      http.MethodGet,
		Path:        "/{shortCode}",
		Summary:     "Redirect to the original URL",
		Description: "Resolves the short code and redirects to the stored long URL.",
		Tags:        []string{"Links"},
	}, links.Redirect)
}
