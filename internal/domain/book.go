package domain

import "time"

// Book carries the slice of the catalog record the loan engine needs.
// Full catalog management (create/edit/search/import) lives in the catalog
// service; this backend only reads book identity and adjusts copy counts.
type Book struct {
	ID              int32     `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	TotalCopies     int32     `json:"total_copies"`
	AvailableCopies int32     `json:"available_copies"`
	CreatedOn       time.Time `json:"created_on"`
	UpdatedOn       time.Time `json:"updated_on"`
}
