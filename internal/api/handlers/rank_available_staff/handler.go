package rank_available_staff

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StaffAvailabilityService/internal/api/handlers"
	rankAvailableStaff "github.com/m04kA/SMC-StaffAvailabilityService/internal/usecase/rank_available_staff"
	"github.com/m04kA/SMC-StaffAvailabilityService/pkg/ptr"
)

const (
	msgInvalidLocationID = "некорректный ID локации"
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingDuration   = "длительность услуги обязательна"
	msgInvalidDuration   = "некорректная длительность услуги"
	msgInvalidLimit      = "некорректный limit"
	msgDataUnavailable   = "данные о доступности временно недоступны"
)

type Handler struct {
	useCase RankAvailableStaffUseCase
	logger  Logger
}

func NewHandler(useCase RankAvailableStaffUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleByLocation GET /api/v1/locations/{locationId}/available-staff
// Query params: date (required, YYYY-MM-DD), durationMinutes (required), limit (optional)
func (h *Handler) HandleByLocation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем locationId из URL
	locationIDStr := vars["locationId"]
	locationID, err := strconv.ParseInt(locationIDStr, 10, 64)
	if err != nil || locationID <= 0 {
		h.logger.Warn("GET /locations/{id}/available-staff - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	h.handle(w, r, ptr.Ptr(locationID))
}

// HandleAllLocations GET /api/v1/available-staff
// Псевдозапрос без локации: документированный fallback - все активные
// мастера с номинальной полной доступностью на день
// Query params: date (required, YYYY-MM-DD), durationMinutes (required), limit (optional)
func (h *Handler) HandleAllLocations(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, nil)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, locationID *int64) {
	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET available-staff - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Извлекаем durationMinutes из query параметров
	durationStr := r.URL.Query().Get("durationMinutes")
	if durationStr == "" {
		h.logger.Warn("GET available-staff - Missing duration")
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}

	durationMinutes, err := strconv.Atoi(durationStr)
	if err != nil {
		h.logger.Warn("GET available-staff - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	// Извлекаем limit из query параметров (опционально)
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			h.logger.Warn("GET available-staff - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(locationID, dateStr, durationMinutes, limit)
	if err != nil {
		h.logger.Warn("GET available-staff - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, rankAvailableStaff.ErrInvalidServiceDuration):
			h.logger.Warn("GET available-staff - Invalid service duration: %d", durationMinutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, rankAvailableStaff.ErrInvalidInput):
			h.logger.Warn("GET available-staff - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, rankAvailableStaff.ErrDataUnavailable):
			// 503, а не 500: UI должен отличать "нет свободных мастеров"
			// от "не удалось загрузить доступность"
			h.logger.Error("GET available-staff - Data unavailable: location=%v, error=%v", locationID, err)
			handlers.RespondServiceUnavailable(w, msgDataUnavailable)

		default:
			h.logger.Error("GET available-staff - Failed to rank staff: location=%v, error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET available-staff - Ranked successfully: location=%v, date=%s, staff_count=%d",
		locationID, dateStr, len(result.Staff))
	handlers.RespondJSON(w, http.StatusOK, response)
}
