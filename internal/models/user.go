package models

import "time"

// Identity is resolved once per request: either a stored User or Anonymous.
type Identity interface {
	HasID() bool
	IsAuthenticated() bool
}

// User is a registered account stored in the users collection.
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (u *User) HasID() bool { return u != nil && u.ID != "" }

func (u *User) IsAuthenticated() bool { return u != nil }

// Anonymous is the identity of a request carrying no valid session.
type Anonymous struct{}

func (Anonymous) HasID() bool { return false }

func (Anonymous) IsAuthenticated() bool { return false }
