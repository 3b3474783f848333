package request

import (
	"net/url"
	"strings"

	"flight-booking/internal/data/entity"
)

type CreateBookingRequest struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	DepartureCity string `json:"departureCity" validate:"required"`
	ArrivalCity   string `json:"arrivalCity" validate:"required"`
	DepartureDate string `json:"departureDate" validate:"required,datetime=2006-01-02"`
	ReturnDate    string `json:"returnDate" validate:"required,datetime=2006-01-02"`
	Passengers    int    `json:"passengers" validate:"required,gt=0"`
	Class         string `json:"class" validate:"required,oneof=economy premium-economy business first"`
	TripType      string `json:"tripType" validate:"required,oneof=one-way round-trip"`
}

func (r *CreateBookingRequest) BindForm(form url.Values) error {
	r.FirstName = strings.TrimSpace(form.Get("firstName"))
	r.LastName = strings.TrimSpace(form.Get("lastName"))
	r.DepartureCity = strings.TrimSpace(form.Get("departureCity"))
	r.ArrivalCity = strings.TrimSpace(form.Get("arrivalCity"))
	r.DepartureDate = strings.TrimSpace(form.Get("departureDate"))
	r.ReturnDate = strings.TrimSpace(form.Get("returnDate"))
	r.Class = strings.TrimSpace(form.Get("class"))
	r.TripType = strings.TrimSpace(form.Get("tripType"))

	passengers, err := optionalInt(form, "passengers")
	if err != nil {
		return err
	}
	if passengers != nil {
		r.Passengers = *passengers
	}
	return nil
}

// Normalize trims every field so JSON bodies match what BindForm produces
func (r *CreateBookingRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.DepartureCity = strings.TrimSpace(r.DepartureCity)
	r.ArrivalCity = strings.TrimSpace(r.ArrivalCity)
	r.DepartureDate = strings.TrimSpace(r.DepartureDate)
	r.ReturnDate = strings.TrimSpace(r.ReturnDate)
	r.Class = strings.TrimSpace(r.Class)
	r.TripType = strings.TrimSpace(r.TripType)
}

func (r *CreateBookingRequest) ToEntity() *entity.Booking {
	return &entity.Booking{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		DepartureCity: r.DepartureCity,
		ArrivalCity:   r.ArrivalCity,
		DepartureDate: r.DepartureDate,
		ReturnDate:    r.ReturnDate,
		Passengers:    r.Passengers,
		Class:         entity.CabinClass(r.Class),
		TripType:      entity.TripType(r.TripType),
	}
}

// UpdateBookingRequest carries the id plus any subset of the booking fields.
// The cabin class may arrive as either "class" or "flightClass".
type UpdateBookingRequest struct {
	BookingID     FlexibleID `json:"bookingId" validate:"required"`
	FirstName     *string    `json:"firstName"`
	LastName      *string    `json:"lastName"`
	DepartureCity *string    `json:"departureCity"`
	ArrivalCity   *string    `json:"arrivalCity"`
	DepartureDate *string    `json:"departureDate" validate:"omitempty,datetime=2006-01-02"`
	ReturnDate    *string    `json:"returnDate" validate:"omitempty,datetime=2006-01-02"`
	Passengers    *int       `json:"passengers" validate:"omitempty,gt=0"`
	Class         *string    `json:"class" validate:"omitempty,oneof=economy premium-economy business first"`
	FlightClass   *string    `json:"flightClass" validate:"omitempty,oneof=economy premium-economy business first"`
	TripType      *string    `json:"tripType" validate:"omitempty,oneof=one-way round-trip"`
}

func (r *UpdateBookingRequest) BindForm(form url.Values) error {
	r.BookingID = FlexibleID(strings.TrimSpace(form.Get("bookingId")))
	r.FirstName = optionalString(form, "firstName")
	r.LastName = optionalString(form, "lastName")
	r.DepartureCity = optionalString(form, "departureCity")
	r.ArrivalCity = optionalString(form, "arrivalCity")
	r.DepartureDate = optionalString(form, "departureDate")
	r.ReturnDate = optionalString(form, "returnDate")
	r.Class = optionalString(form, "class")
	r.FlightClass = optionalString(form, "flightClass")
	r.TripType = optionalString(form, "tripType")

	passengers, err := optionalInt(form, "passengers")
	if err != nil {
		return err
	}
	r.Passengers = passengers
	return nil
}

// Normalize trims the fields and turns blank ones into absent ones, the way
// BindForm does for form bodies. It runs before validation.
func (r *UpdateBookingRequest) Normalize() {
	r.BookingID = FlexibleID(strings.TrimSpace(string(r.BookingID)))
	r.FirstName = nonBlank(r.FirstName)
	r.LastName = nonBlank(r.LastName)
	r.DepartureCity = nonBlank(r.DepartureCity)
	r.ArrivalCity = nonBlank(r.ArrivalCity)
	r.DepartureDate = nonBlank(r.DepartureDate)
	r.ReturnDate = nonBlank(r.ReturnDate)
	r.Class = nonBlank(r.Class)
	r.FlightClass = nonBlank(r.FlightClass)
	r.TripType = nonBlank(r.TripType)
}

// ToPatch drops blank strings so they keep their stored value like absent ones
func (r *UpdateBookingRequest) ToPatch() entity.BookingPatch {
	patch := entity.BookingPatch{
		FirstName:     nonBlank(r.FirstName),
		LastName:      nonBlank(r.LastName),
		DepartureCity: nonBlank(r.DepartureCity),
		ArrivalCity:   nonBlank(r.ArrivalCity),
		DepartureDate: nonBlank(r.DepartureDate),
		ReturnDate:    nonBlank(r.ReturnDate),
		Passengers:    r.Passengers,
	}

	class := nonBlank(r.Class)
	if class == nil {
		class = nonBlank(r.FlightClass)
	}
	if class != nil {
		c := entity.CabinClass(*class)
		patch.Class = &c
	}
	if tripType := nonBlank(r.TripType); tripType != nil {
		t := entity.TripType(*tripType)
		patch.TripType = &t
	}

	return patch
}

// SearchBookingRequest comes from the query string
type SearchBookingRequest struct {
	FirstName string
	LastName  string
	BookingID string
}

func (r *SearchBookingRequest) BindForm(form url.Values) error {
	r.FirstName = strings.TrimSpace(form.Get("firstName"))
	r.LastName = strings.TrimSpace(form.Get("lastName"))
	r.BookingID = strings.TrimSpace(form.Get("booking_id"))
	return nil
}

func nonBlank(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

