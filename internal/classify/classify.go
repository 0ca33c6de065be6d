// Package classify maps heterogeneous upstream API failures onto a small
// error taxonomy. The category drives both the user-facing message and
// whether a retry is worth offering.
package classify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/character-forge/internal/llm"
)

// Category identifies a class of upstream failure.
type Category string

const (
	CategoryBilling        Category = "billing"
	CategoryAuthentication Category = "authentication"
	CategoryRateLimit      Category = "rate_limit"
	CategoryNetwork        Category = "network"
	CategoryUnknown        Category = "unknown"
)

// CategorizedError is a classified upstream failure.
type CategorizedError struct {
	Category     Category
	Message      string
	Retryable    bool
	BillingIssue bool
	Cause        error
}

func (e *CategorizedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

func (e *CategorizedError) Unwrap() error {
	return e.Cause
}

// billingKeywords flag quota exhaustion and payment problems. A response can
// carry these in the message body even when the status code says otherwise.
var billingKeywords = []string{"billing", "quota", "payment", "subscription", "credit"}

// Categorize classifies an upstream error. The checks run in a fixed order
// and the first match wins: billing keywords outrank everything because
// quota exhaustion commonly surfaces under a 429 status yet is not fixed by
// retrying.
func Categorize(err error) *CategorizedError {
	if err == nil {
		return nil
	}
	var categorized *CategorizedError
	if errors.As(err, &categorized) {
		return categorized
	}

	message := extractMessage(err)
	status := 0
	haystack := strings.ToLower(message)

	var apiErr *llm.APIError
	if errors.As(err, &apiErr) {
		status = apiErr.StatusCode
		haystack = strings.ToLower(message + " " + apiErr.ErrType + " " + apiErr.Body)
	}

	switch {
	case containsAny(haystack, billingKeywords):
		return &CategorizedError{
			Category:     CategoryBilling,
			Message:      message,
			Retryable:    false,
			BillingIssue: true,
			Cause:        err,
		}
	case status == 401 || strings.Contains(haystack, "unauthorized") || strings.Contains(haystack, "authentication"):
		return &CategorizedError{
			Category:  CategoryAuthentication,
			Message:   message,
			Retryable: false,
			Cause:     err,
		}
	case status == 429 || strings.Contains(haystack, "rate limit"):
		return &CategorizedError{
			Category:  CategoryRateLimit,
			Message:   message,
			Retryable: true,
			Cause:     err,
		}
	case status == 0 && apiErr != nil, status == 500, status == 502, status == 503:
		return &CategorizedError{
			Category:  CategoryNetwork,
			Message:   message,
			Retryable: true,
			Cause:     err,
		}
	default:
		return &CategorizedError{
			Category:  CategoryUnknown,
			Message:   message,
			Retryable: true,
			Cause:     err,
		}
	}
}

// extractMessage prefers the vendor's nested error message, then the Go
// error text.
func extractMessage(err error) string {
	var apiErr *llm.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "An unknown error occurred"
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
