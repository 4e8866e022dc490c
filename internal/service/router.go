package service

import (
	"strings"

	"github.com/example/redirector/internal/entity"
)

// Resolve picks the destination for a visitor. Rules are evaluated in list
// order and the first match wins; no reordering, no scoring. When nothing
// matches, the default URL is returned. An empty default with no match is a
// misconfigured link and yields ErrNoDestination.
func Resolve(rules []entity.Rule, countryCode, defaultURL string) (string, error) {
	for _, r := range rules {
		if r.Country == "*" || strings.EqualFold(r.Country, countryCode) {
			return r.Destination, nil
		}
	}
	if defaultURL == "" {
		return "", ErrNoDestination
	}
	return defaultURL, nil
}
