package entity

type RegisteredUser struct {
	Base
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	ContactID    *int64 `db:"contact_id"`
}

// Complete reports whether the profile fields a session needs are present
func (u *RegisteredUser) Complete() bool {
	return u.FirstName != "" && u.LastName != "" && u.Email != ""
}

// Public strips credentials for storing in a session
func (u *RegisteredUser) Public() AuthenticatedUser {
	return AuthenticatedUser{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
