package domain

import "time"

// Task is a unit of work tied to a company. CompanyID is an opaque,
// unchecked reference: deleting a company does not cascade to its tasks.
type Task struct {
	ID          string    `json:"id" firestore:"-"`
	CompanyID   string    `json:"companyId" firestore:"companyId"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	Completed   bool      `json:"completed" firestore:"completed"`
	StartDate   string    `json:"startDate,omitempty" firestore:"startDate,omitempty"`
	DueDate     string    `json:"dueDate,omitempty" firestore:"dueDate,omitempty"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}
