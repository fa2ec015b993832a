package validation

import (
	"net/url"
	"regexp"
	"strings"
)

// SlugPattern defines the URL-safe slug format: alphanumeric, hyphens, underscores.
var SlugPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateSlug checks if a slug can be used as a single URL path segment.
func ValidateSlug(slug string) bool {
	if slug == "" || len(slug) > 100 {
		return false
	}
	return SlugPattern.MatchString(slug)
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
// This rejects javascript:, data:, vbscript:, and other dangerous URL schemes.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}

// ValidateBaseURL checks a site origin. In addition to ValidateURL it rejects
// query strings and fragments, which cannot be joined with page paths.
func ValidateBaseURL(urlStr string) (bool, string) {
	if valid, msg := ValidateURL(urlStr); !valid {
		return false, msg
	}
	u, _ := url.Parse(urlStr)
	if u.RawQuery != "" || u.Fragment != "" {
		return false, "Base URL must not have a query or fragment"
	}
	return true, ""
}
