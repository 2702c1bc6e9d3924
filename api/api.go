// Package api exposes the suffix list over HTTP.
package api

import (
	"time"
)

const (
	PathSplit        = "/api/split/{domain}"
	PathListsRefresh = "/api/lists/refresh"
	PathListsStatus  = "/api/lists/status"

	splitPathPrefix = "/api/split/"
)

// SplitPath returns the URL path to split `domain`.
func SplitPath(domain string) string {
	return splitPathPrefix + domain
}

// SplitResponse is the result of a split
type SplitResponse struct {
	// Labels left of the registered domain
	Subdomain string `json:"subdomain"`
	// Registered domain label, empty if the input is a public suffix
	Domain string `json:"domain"`
	// Public suffix
	Suffix string `json:"suffix"`
	// Domain joined with the suffix
	RegisteredDomain string `json:"registeredDomain"`
}

// ListStatus describes the published suffix list
type ListStatus struct {
	// uninitialized, loading, ready or failed
	State string `json:"state"`
	// ID of the published list, empty if none was published
	ID string `json:"id,omitempty"`
	// Number of rules
	RuleCount int `json:"ruleCount"`
	// Publication time of the list
	Built *time.Time `json:"built,omitempty"`
	// Human readable age of the list
	Age string `json:"age,omitempty"`
	// Number of cached split results
	CacheSize int `json:"cacheSize"`
}

// ErrorResponse is returned with every non 2xx status
type ErrorResponse struct {
	Error string `json:"error"`
}
