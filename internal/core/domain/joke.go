package domain

import "time"

// Joke is the content record served by the read endpoints. JokesterID
// references the owning User and is the basis of the delete-by-owner check.
type Joke struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Name       string    `json:"name" bson:"name"`
	Content    string    `json:"content" bson:"content"`
	JokesterID string    `json:"jokester_id" bson:"jokester_id"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
