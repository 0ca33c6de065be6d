package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/character-forge/internal/classify"
	"github.com/jonathan/character-forge/internal/parsing"
	"github.com/jonathan/character-forge/internal/storage"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Categorized upstream failures map onto the category; malformed upstream
// content is a bad gateway; everything else is a server error.
func HTTPStatus(err error) int {
	var categorized *classify.CategorizedError
	if errors.As(err, &categorized) {
		switch categorized.Category {
		case classify.CategoryBilling:
			return http.StatusPaymentRequired
		case classify.CategoryAuthentication:
			return http.StatusUnauthorized
		case classify.CategoryRateLimit:
			return http.StatusTooManyRequests
		case classify.CategoryNetwork:
			return http.StatusBadGateway
		default:
			return http.StatusInternalServerError
		}
	}

	var parseErr *parsing.ParseError
	if errors.As(err, &parseErr) {
		return http.StatusBadGateway
	}

	if errors.Is(err, storage.ErrNotFound) {
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}

// generationError writes the error with its mapped status. Categorized
// errors expose only the classifier's message, not the raw upstream body.
func (s *Server) generationError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)

	var categorized *classify.CategorizedError
	if errors.As(err, &categorized) {
		s.errorResponse(w, status, categorized.Message)
		return
	}

	s.errorResponse(w, status, err.Error())
}
