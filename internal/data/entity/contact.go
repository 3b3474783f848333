package entity

// ContactMessage is write-once, nothing updates or deletes it
type ContactMessage struct {
	Base
	Name    string `db:"name" json:"name"`
	Email   string `db:"email" json:"email"`
	Message string `db:"message" json:"message"`
}
