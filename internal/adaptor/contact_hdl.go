package adaptor

import (
	"net/http"

	"flight-booking/internal/dto/request"
	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

type ContactHandler struct {
	service usecase.ContactService
	log     *zap.Logger
}

func NewContactHandler(service usecase.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log.With(zap.String("handler", "contact")),
	}
}

// SubmitContact handles POST /contact
func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req request.ContactRequest
	if err := request.Bind(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	contact, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "submit contact")
		return
	}

	utils.ResponseSuccess(w, "Thank you for contacting us", contact)
}

// ListContacts handles GET /contacts?page=1&per_page=10
func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	var req request.PaginatedRequest
	req.BindForm(r.URL.Query())

	contacts, err := h.service.List(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "list contacts")
		return
	}

	utils.ResponseSuccess(w, "Contacts retrieved successfully", contacts)
}

func (h *ContactHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	if badRequest(w, h.log, err, operation) {
		return
	}
	internalError(w, h.log, err, operation)
}
