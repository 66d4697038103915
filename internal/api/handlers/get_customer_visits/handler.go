package get_customer_visits

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sgasoft/SGA-VisitService/internal/api/handlers"
	"github.com/sgasoft/SGA-VisitService/internal/service/visits"
)

const msgInvalidCustomerID = "некорректный ID клиента"

type Handler struct {
	service VisitService
	logger  Logger
}

func NewHandler(service VisitService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/{customerId}/visits
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerID, err := strconv.ParseInt(vars["customerId"], 10, 64)
	if err != nil || customerID <= 0 {
		h.logger.Warn("GET /customers/{id}/visits - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	visitList, err := h.service.GetCustomerVisits(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, visits.ErrInvalidInput):
			h.logger.Warn("GET /customers/{id}/visits - Invalid input: customer_id=%d", customerID)
			handlers.RespondBadRequest(w, msgInvalidCustomerID)

		default:
			h.logger.Error("GET /customers/{id}/visits - Failed to list visits: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/{id}/visits - %d visit(s) listed: customer_id=%d",
		len(visitList.Visits), customerID)
	handlers.RespondJSON(w, http.StatusOK, visitList)
}
