package create_special_date

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
	msgDuplicateDate         = "особая дата на этот день уже существует"
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

// Handle POST /api/v1/professionals/{professionalId}/special-dates
// Доступно только самому профессионалу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем professionalId из URL
	vars := mux.Vars(r)
	professionalIDStr := vars["professionalId"]

	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /professionals/{id}/special-dates - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /professionals/{id}/special-dates - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Парсим тело запроса
	var body CreateSpecialDateBody
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /professionals/{id}/special-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	// Создаем особую дату (сервис сам проверит права доступа и валидность)
	result, err := h.service.CreateSpecialDate(r.Context(), body.ToServiceRequest(professionalID, userID))
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrAccessDenied):
			h.logger.Warn("POST /professionals/{id}/special-dates - Access denied: professional_id=%d, user_id=%d",
				professionalID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, calendar.ErrSpecialDateAlreadyExists):
			h.logger.Warn("POST /professionals/{id}/special-dates - Duplicate date: professional_id=%d, date=%s",
				professionalID, body.Date)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateDate)

		case errors.Is(err, calendar.ErrInvalidInput):
			h.logger.Warn("POST /professionals/{id}/special-dates - Invalid data: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /professionals/{id}/special-dates - Failed to create special date: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /professionals/{id}/special-dates - Special date created successfully: professional_id=%d, special_date_id=%d",
		professionalID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
