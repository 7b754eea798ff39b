package domain

import "time"

// Gender values accepted for animal records.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Animal is the core record managed by the shelter.
// IDs are assigned by the store and are never reused within a process
// lifetime, even after deletion.
type Animal struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Race      string    `json:"race"`
	Gender    string    `json:"gender"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
