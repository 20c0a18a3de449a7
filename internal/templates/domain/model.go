package domain

import "time"

// TaskTemplate is a reusable task blueprint. Assigning it to companies copies
// its title/description into fresh Task documents; the template itself is
// never mutated by an assignment.
type TaskTemplate struct {
	ID          string    `json:"id" firestore:"-"`
	UserID      string    `json:"user_id,omitempty" firestore:"userId,omitempty"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}
