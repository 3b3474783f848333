package response

import (
	"time"

	"flight-booking/internal/data/entity"
)

type ContactResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func ContactToResponse(contact *entity.ContactMessage) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		Name:      contact.Name,
		Email:     contact.Email,
		Message:   contact.Message,
		CreatedAt: contact.CreatedAt,
	}
}

func ContactsToResponse(contacts []*entity.ContactMessage) []ContactResponse {
	result := make([]ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		result = append(result, ContactToResponse(contact))
	}
	return result
}
