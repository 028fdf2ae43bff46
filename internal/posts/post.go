package posts

import "time"

// Author is the snapshot embedded in each post at creation time. ID is empty
// for anonymous posts; later edits to the user record do not propagate back
// into existing posts.
type Author struct {
	ID   string `bson:"id,omitempty" json:"id,omitempty"`
	Name string `bson:"name" json:"name"`
}

// Post is a message-board entry stored in the posts collection.
type Post struct {
	ID         string     `bson:"_id,omitempty" json:"id"`
	Author     Author     `bson:"author" json:"author"`
	Message    string     `bson:"message" json:"message"`
	CreatedAt  time.Time  `bson:"created_at" json:"createdAt"`
	ModifiedAt *time.Time `bson:"modified_at,omitempty" json:"modifiedAt,omitempty"`
}
