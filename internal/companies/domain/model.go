package domain

import "time"

// Company represents a legal business entity. The document id is assigned at
// creation time and is immutable; every other attribute is a free-form string
// (EIN and phone formats are deliberately not validated beyond presence).
type Company struct {
	ID                    string    `json:"id" firestore:"-"`
	Name                  string    `json:"name" firestore:"name"`
	EIN                   string    `json:"EIN" firestore:"EIN"`
	StartDate             string    `json:"startDate" firestore:"startDate"`
	StateIncorporated     string    `json:"stateIncorporated" firestore:"stateIncorporated"`
	ContactPersonName     string    `json:"contactPersonName" firestore:"contactPersonName"`
	ContactPersonPhNumber string    `json:"contactPersonPhNumber" firestore:"contactPersonPhNumber"`
	Address1              string    `json:"address1" firestore:"address1"`
	Address2              string    `json:"address2,omitempty" firestore:"address2,omitempty"`
	City                  string    `json:"city" firestore:"city"`
	State                 string    `json:"state" firestore:"state"`
	Zip                   string    `json:"zip" firestore:"zip"`
	CreatedAt             time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt             time.Time `json:"updated_at" firestore:"updatedAt"`
}
