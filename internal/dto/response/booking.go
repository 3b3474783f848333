package response

import "flight-booking/internal/data/entity"

// BookingList is the search result body. Bookings keep their legacy JSON names.
type BookingList struct {
	Bookings []*entity.Booking `json:"bookings"`
	Count    int               `json:"count"`
}

func NewBookingList(bookings []*entity.Booking) BookingList {
	if bookings == nil {
		bookings = []*entity.Booking{}
	}
	return BookingList{Bookings: bookings, Count: len(bookings)}
}

type MessageResponse struct {
	Message string `json:"message"`
}
