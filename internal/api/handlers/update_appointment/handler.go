package update_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	updateAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/update_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "запись не найдена"
	msgForbidden            = "доступ запрещен"
	msgCannotUpdate         = "запись нельзя изменить в текущем статусе"
	msgNonBusinessDay       = "выбранный день не является рабочим"
	msgSpecialDateBlocked   = "выбранный день закрыт для записи"
	msgInvalidApptDate      = "некорректная дата записи"
	msgStartOutsideHours    = "время начала вне рабочих часов"
	msgSlotFull             = "на выбранное время нет свободных мест"
)

type Handler struct {
	useCase UpdateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем appointmentId из URL
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(appointmentID, userID)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, updateAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateAppointment.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id} - Access denied: appointment_id=%d, user_id=%d", appointmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateAppointment.ErrCannotUpdate):
			h.logger.Warn("PATCH /appointments/{id} - Cannot update: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgCannotUpdate)

		case errors.Is(err, updateAppointment.ErrSlotFull):
			h.logger.Warn("PATCH /appointments/{id} - Slot full: appointment_id=%d, user_id=%d", appointmentID, userID)
			handlers.RespondError(w, http.StatusConflict, msgSlotFull)

		case errors.Is(err, updateAppointment.ErrNonBusinessDay):
			h.logger.Warn("PATCH /appointments/{id} - Non-business day: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgNonBusinessDay)

		case errors.Is(err, updateAppointment.ErrSpecialDateBlocked):
			h.logger.Warn("PATCH /appointments/{id} - Special date blocked: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgSpecialDateBlocked)

		case errors.Is(err, updateAppointment.ErrInvalidDate):
			h.logger.Warn("PATCH /appointments/{id} - Invalid appointment date: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgInvalidApptDate)

		case errors.Is(err, updateAppointment.ErrStartOutsideHours):
			h.logger.Warn("PATCH /appointments/{id} - Start outside business hours: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgStartOutsideHours)

		case errors.Is(err, updateAppointment.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id} - Invalid input: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /appointments/{id} - Failed to update appointment: appointment_id=%d, user_id=%d, error=%v",
				appointmentID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /appointments/{id} - Appointment updated successfully: appointment_id=%d, user_id=%d",
		appointmentID, userID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
