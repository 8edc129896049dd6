package update_calendar_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/calendar"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgInvalidBody           = "некорректное тело запроса"
	msgForbidden             = "доступ запрещен"
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

// Handle PUT /api/v1/professionals/{professionalId}/calendar-config
// Конфигурация заменяется целиком, доступно только самому профессионалу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем professionalId из URL
	vars := mux.Vars(r)
	professionalIDStr := vars["professionalId"]

	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /professionals/{id}/calendar-config - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /professionals/{id}/calendar-config - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Парсим тело запроса
	var body UpdateConfigBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PUT /professionals/{id}/calendar-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	// Сохраняем конфигурацию (сервис сам проверит права доступа и валидность)
	result, err := h.service.UpsertConfig(r.Context(), body.ToServiceRequest(professionalID, userID))
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrAccessDenied):
			h.logger.Warn("PUT /professionals/{id}/calendar-config - Access denied: professional_id=%d, user_id=%d",
				professionalID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("PUT /professionals/{id}/calendar-config - Invalid config: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /professionals/{id}/calendar-config - Failed to upsert config: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /professionals/{id}/calendar-config - Config upserted successfully: professional_id=%d, config_id=%d",
		professionalID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
