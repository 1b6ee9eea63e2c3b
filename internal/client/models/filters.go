package models

import (
	"net/url"
	"strings"
)

// SearchFilters holds the named fields of one event search. A field whose
// value is empty or whitespace-only is treated as absent and never reaches
// the wire. Filters live only in the active search view; they are not
// persisted.
type SearchFilters struct {
	Keyword   string
	City      string
	StateCode string
	StartDate string
	EndDate   string
	Segment   string
}

// Query encodes the non-empty filter fields as request query parameters.
func (f SearchFilters) Query() url.Values {
	q := url.Values{}
	set := func(name, value string) {
		if v := strings.TrimSpace(value); v != "" {
			q.Set(name, v)
		}
	}
	set("keyword", f.Keyword)
	set("city", f.City)
	set("stateCode", f.StateCode)
	set("startDate", f.StartDate)
	set("endDate", f.EndDate)
	set("segment", f.Segment)
	return q
}

// IsZero reports whether every filter field is absent.
func (f SearchFilters) IsZero() bool {
	return len(f.Query()) == 0
}
