package models

// FavoriteSnapshot is the event excerpt sent to the API when favoriting.
// The server keys favorites by the event id.
type FavoriteSnapshot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Date  string `json:"date,omitempty"`
	Venue string `json:"venue,omitempty"`
	Image string `json:"image,omitempty"`
}

// Favorite is a user's saved reference to an event as the server returns
// it: distinct from the full event record, owned by the remote API. The
// client holds a read-through copy fetched per dashboard view.
type Favorite struct {
	EventID string `json:"event_id"`
	Name    string `json:"name"`
	Date    string `json:"date,omitempty"`
	Venue   string `json:"venue,omitempty"`
	Image   string `json:"image,omitempty"`
}
