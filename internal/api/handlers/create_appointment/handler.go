package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	createAppointment "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgProfessionalNotFound = "профессионал не найден"
	msgNonBusinessDay       = "выбранный день не является рабочим"
	msgSpecialDateBlocked   = "выбранный день закрыт для записи"
	msgInvalidApptDate      = "некорректная дата записи"
	msgStartOutsideHours    = "время начала вне рабочих часов"
	msgSlotFull             = "на выбранное время нет свободных мест"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createAppointment.ErrIncompleteSubmission):
			// Текст ошибки перечисляет все пропущенные поля разом
			h.logger.Warn("POST /appointments - Incomplete submission: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createAppointment.ErrSlotFull):
			h.logger.Warn("POST /appointments - Slot full: client_id=%d, professional_id=%d", clientID, req.ProfessionalID)
			handlers.RespondError(w, http.StatusConflict, msgSlotFull)

		case errors.Is(err, createAppointment.ErrProfessionalNotFound):
			h.logger.Warn("POST /appointments - Professional not found: professional_id=%d", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createAppointment.ErrNonBusinessDay):
			h.logger.Warn("POST /appointments - Non-business day: client_id=%d, date=%s", clientID, req.Date)
			handlers.RespondBadRequest(w, msgNonBusinessDay)

		case errors.Is(err, createAppointment.ErrSpecialDateBlocked):
			h.logger.Warn("POST /appointments - Special date blocked: client_id=%d, date=%s", clientID, req.Date)
			handlers.RespondBadRequest(w, msgSpecialDateBlocked)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid appointment date: client_id=%d, date=%s", clientID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidApptDate)

		case errors.Is(err, createAppointment.ErrStartOutsideHours):
			h.logger.Warn("POST /appointments - Start outside business hours: client_id=%d, time=%s", clientID, req.StartTime)
			handlers.RespondBadRequest(w, msgStartOutsideHours)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client_id=%d, professional_id=%d, error=%v",
				clientID, req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, client_id=%d, professional_id=%d",
		result.ID, clientID, req.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
