package sessions

import "time"

// Session maps a server-side session id to an authenticated user. The id
// travels to the client inside a signed cookie; the record itself lives in
// the configured session store, never in the document database.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}
