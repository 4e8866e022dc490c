package entity

// Rule maps a country predicate to a destination URL.
// The predicate "*" matches any country.
type Rule struct {
	Country     string `json:"country"`
	Destination string `json:"destination"`
}

// Link is the routing configuration for one short code. Links are managed
// out-of-band; the redirect path only ever reads them.
type Link struct {
	ID         string `json:"id"`
	AccountID  string `json:"account_id"`
	Rules      []Rule `json:"rules,omitempty"`
	DefaultURL string `json:"default_url"`
}
