package adaptor

import (
	"errors"
	"net/http"

	"flight-booking/internal/dto/request"
	"flight-booking/internal/dto/response"
	"flight-booking/internal/session"
	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service  usecase.BookingService
	sessions *session.Sessions
	log      *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, sessions *session.Sessions, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service:  service,
		sessions: sessions,
		log:      log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /booking
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := request.Bind(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	h.sessions.SetPendingBooking(r.Context(), *booking)
	http.Redirect(w, r, "/confirmation", http.StatusFound)
}

// Confirmation handles GET /confirmation
func (h *BookingHandler) Confirmation(w http.ResponseWriter, r *http.Request) {
	booking, ok := h.sessions.PendingBooking(r.Context())
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	utils.ResponseSuccess(w, "Booking confirmed", booking)
}

// EditSearch handles GET /editsearch?booking_id= and returns the bare booking
func (h *BookingHandler) EditSearch(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.GetByID(r.Context(), r.URL.Query().Get("booking_id"))
	if err != nil {
		h.handleServiceError(w, err, "get booking")
		return
	}

	utils.WriteJSON(w, http.StatusOK, booking)
}

// UpdateBooking handles POST /updateBooking
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateBookingRequest
	if err := request.Bind(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Update(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "update booking")
		return
	}

	http.Redirect(w, r, "/updatesuccess", http.StatusFound)
}

// UpdateSuccess handles GET /updatesuccess
func (h *BookingHandler) UpdateSuccess(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Booking updated successfully", nil)
}

// DeleteBooking handles DELETE /deleteBooking/{bookingId}
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "bookingId")); err != nil {
		h.handleServiceError(w, err, "delete booking")
		return
	}

	utils.WriteJSON(w, http.StatusOK, response.MessageResponse{Message: "Booking deleted successfully"})
}

// Search handles GET /search?firstName=&lastName=&booking_id=
func (h *BookingHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req request.SearchBookingRequest
	req.BindForm(r.URL.Query())

	bookings, err := h.service.Search(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "search bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved successfully", response.NewBookingList(bookings))
}

func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	if badRequest(w, h.log, err, operation) {
		return
	}

	switch {
	case errors.Is(err, utils.ErrNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Booking not found")

	default:
		internalError(w, h.log, err, operation)
	}
}
