package response

import "flight-booking/internal/data/entity"

// ProfileResponse is the body of GET /profile and GET /registered
type ProfileResponse struct {
	Message string                   `json:"message,omitempty"`
	User    entity.AuthenticatedUser `json:"user"`
}

func WelcomeProfile(user entity.AuthenticatedUser) ProfileResponse {
	return ProfileResponse{
		Message: "Welcome, " + user.FirstName + " " + user.LastName,
		User:    user,
	}
}
