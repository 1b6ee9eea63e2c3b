package models

// User is the authenticated account record as returned by the Event Hub
// API. It is owned by the session store once authenticated and is only
// ever replaced wholesale, never patched field by field.
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
