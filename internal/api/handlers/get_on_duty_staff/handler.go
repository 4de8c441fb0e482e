package get_on_duty_staff

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StaffAvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-StaffAvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-StaffAvailabilityService/internal/domain"
	"github.com/m04kA/SMC-StaffAvailabilityService/internal/service/roster"
	"github.com/m04kA/SMC-StaffAvailabilityService/internal/service/roster/models"
)

const (
	msgInvalidLocationID = "некорректный ID локации"
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID     = "отсутствует ID пользователя"
)

type Handler struct {
	service RosterService
	logger  Logger
}

func NewHandler(service RosterService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/on-duty
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем locationId из URL
	locationIDStr := vars["locationId"]
	locationID, err := strconv.ParseInt(locationIDStr, 10, 64)
	if err != nil || locationID <= 0 {
		h.logger.Warn("GET /locations/{id}/on-duty - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /locations/{id}/on-duty - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /locations/{id}/on-duty - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /locations/{id}/on-duty - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetOnDutyStaff(r.Context(), &models.GetOnDutyStaffRequest{
		UserID:     userID,
		LocationID: locationID,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, roster.ErrInvalidInput):
			h.logger.Warn("GET /locations/{id}/on-duty - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /locations/{id}/on-duty - Failed to get roster: location_id=%d, error=%v",
				locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /locations/{id}/on-duty - Roster retrieved successfully: location_id=%d, date=%s, staff_count=%d",
		locationID, dateStr, len(result.Staff))
	handlers.RespondJSON(w, http.StatusOK, result)
}
