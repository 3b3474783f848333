package entity

import "encoding/gob"

// AuthenticatedUser is the public profile kept in a session. It never holds a password or hash.
type AuthenticatedUser struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (u AuthenticatedUser) Empty() bool {
	return u.Email == ""
}

// PendingBookingConfirmation is the snapshot of the last booking created in a session
type PendingBookingConfirmation struct {
	Booking
}

func init() {
	// scs encodes session values with gob
	gob.Register(AuthenticatedUser{})
	gob.Register(PendingBookingConfirmation{})
}
