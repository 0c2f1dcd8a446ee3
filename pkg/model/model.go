package model

import "time"

// Record is the public representation of a stored inquiry, as it is returned by the listing
// endpoint when JSON is requested.
type Record struct {
	Id            int64     `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Gender        string    `json:"gender"`
	MaritalStatus string    `json:"marital_status"`
	Salutation    string    `json:"salutation"`
	UniqueNumber  string    `json:"unique_number"`
	CreatedAt     time.Time `json:"created_at"`
}
