package get_calendar_config

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/calendar-config
// Публичный эндпоинт: конфигурация нужна клиентам при выборе даты записи
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем professionalId из URL
	vars := mux.Vars(r)
	professionalIDStr := vars["professionalId"]

	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/calendar-config - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Получаем конфигурацию (при отсутствии вернётся дефолтная политика)
	result, err := h.service.GetConfig(r.Context(), professionalID)
	if err != nil {
		h.logger.Error("GET /professionals/{id}/calendar-config - Failed to get config: professional_id=%d, error=%v",
			professionalID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /professionals/{id}/calendar-config - Config retrieved successfully: professional_id=%d, is_default=%t",
		professionalID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
