package models

import (
	"fmt"
	"strings"
)

// Venue is the place an event happens at, as flattened by the API from
// the upstream catalog.
type Venue struct {
	Name    string `json:"name"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
	Address string `json:"address,omitempty"`
}

// PriceRange is one ticket price bracket of an event.
type PriceRange struct {
	Type     string  `json:"type"`
	Currency string  `json:"currency"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// EventResult is a single event record from the search service. It is an
// immutable value: received verbatim, shown for the lifetime of one
// results view, never persisted locally.
type EventResult struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	URL         string       `json:"url,omitempty"`
	Image       string       `json:"image,omitempty"`
	Date        string       `json:"date,omitempty"`
	LocalDate   string       `json:"localDate,omitempty"`
	LocalTime   string       `json:"localTime,omitempty"`
	Venue       *Venue       `json:"venue,omitempty"`
	PriceRanges []PriceRange `json:"priceRanges,omitempty"`
	Segment     string       `json:"segment,omitempty"`
	Genre       string       `json:"genre,omitempty"`
	Status      string       `json:"status,omitempty"`
}

// When returns a printable date/time for list and detail views.
func (e EventResult) When() string {
	if e.LocalDate == "" {
		return "Date TBD"
	}
	if e.LocalTime == "" {
		return e.LocalDate
	}
	return e.LocalDate + " " + e.LocalTime
}

// Where returns a printable venue location, empty when the record
// carries no venue.
func (e EventResult) Where() string {
	if e.Venue == nil {
		return ""
	}
	parts := []string{}
	for _, p := range []string{e.Venue.Name, e.Venue.City, e.Venue.State} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// PriceLabel renders the first price range as "USD 25.00-150.00".
// Events without price data yield an empty string.
func (e EventResult) PriceLabel() string {
	if len(e.PriceRanges) == 0 {
		return ""
	}
	p := e.PriceRanges[0]
	return fmt.Sprintf("%s %.2f-%.2f", p.Currency, p.Min, p.Max)
}

// Snapshot reduces the event to the fields the favorites endpoint stores.
func (e EventResult) Snapshot() FavoriteSnapshot {
	venue := ""
	if e.Venue != nil {
		venue = e.Venue.Name
	}
	return FavoriteSnapshot{
		ID:    e.ID,
		Name:  e.Name,
		Date:  e.Date,
		Venue: venue,
		Image: e.Image,
	}
}
