package delete_special_date

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/calendar"
	"github.com/m04kA/SMC-SchedulingService/internal/service/calendar/models"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgInvalidSpecialDateID  = "некорректный ID особой даты"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgForbidden             = "доступ запрещен"
	msgSpecialDateNotFound   = "особая дата не найдена"
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

// Handle DELETE /api/v1/professionals/{professionalId}/special-dates/{specialDateId}
// Доступно только самому профессионалу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем параметры из URL
	vars := mux.Vars(r)

	professionalID, err := strconv.ParseInt(vars["professionalId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /professionals/{id}/special-dates/{sdId} - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	specialDateID, err := strconv.ParseInt(vars["specialDateId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /professionals/{id}/special-dates/{sdId} - Invalid special date ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpecialDateID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /professionals/{id}/special-dates/{sdId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Удаляем особую дату (сервис сам проверит права доступа)
	err = h.service.DeleteSpecialDate(r.Context(), &models.DeleteSpecialDateRequest{
		UserID:         userID,
		ProfessionalID: professionalID,
		SpecialDateID:  specialDateID,
	})
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrAccessDenied):
			h.logger.Warn("DELETE /professionals/{id}/special-dates/{sdId} - Access denied: professional_id=%d, user_id=%d",
				professionalID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, calendar.ErrSpecialDateNotFound):
			h.logger.Warn("DELETE /professionals/{id}/special-dates/{sdId} - Special date not found: professional_id=%d, special_date_id=%d",
				professionalID, specialDateID)
			handlers.RespondNotFound(w, msgSpecialDateNotFound)

		default:
			h.logger.Error("DELETE /professionals/{id}/special-dates/{sdId} - Failed to delete special date: special_date_id=%d, error=%v",
				specialDateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /professionals/{id}/special-dates/{sdId} - Special date deleted successfully: professional_id=%d, special_date_id=%d",
		professionalID, specialDateID)
	w.WriteHeader(http.StatusNoContent)
}
