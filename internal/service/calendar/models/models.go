package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модели

// UpsertConfigRequest запрос на создание или замену конфигурации календаря.
// Конфигурация заменяется целиком, частичное обновление не поддерживается.
type UpsertConfigRequest struct {
	UserID         int64 `json:"userId"`
	ProfessionalID int64 `json:"professionalId"`

	BusinessDays           []int64 `json:"businessDays"` // 0 = воскресенье .. 6 = суббота
	StartTime              string  `json:"startTime"`    // "08:00"
	EndTime                string  `json:"endTime"`      // "18:00"
	SlotMinTime            *string `json:"slotMinTime,omitempty"`
	SlotMaxTime            *string `json:"slotMaxTime,omitempty"`
	MaxAppointmentsPerSlot int     `json:"maxAppointmentsPerSlot"`
}

// ToDomainConfig конвертирует request в domain модель
func (r *UpsertConfigRequest) ToDomainConfig() *domain.CalendarConfig {
	cfg := &domain.CalendarConfig{
		ProfessionalID:         r.ProfessionalID,
		BusinessDays:           r.BusinessDays,
		StartTime:              types.TimeString(r.StartTime),
		EndTime:                types.TimeString(r.EndTime),
		MaxAppointmentsPerSlot: r.MaxAppointmentsPerSlot,
	}

	if r.SlotMinTime != nil {
		t := types.TimeString(*r.SlotMinTime)
		cfg.SlotMinTime = &t
	}
	if r.SlotMaxTime != nil {
		t := types.TimeString(*r.SlotMaxTime)
		cfg.SlotMaxTime = &t
	}

	return cfg
}

// CreateSpecialDateRequest запрос на создание особой даты
type CreateSpecialDateRequest struct {
	UserID         int64 `json:"userId"`
	ProfessionalID int64 `json:"professionalId"`

	Date        string  `json:"date"` // "2026-12-31"
	Title       string  `json:"title"`
	IsAvailable bool    `json:"isAvailable"`
	Color       *string `json:"color,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ListSpecialDatesRequest запрос на получение особых дат за период
type ListSpecialDatesRequest struct {
	ProfessionalID int64      `json:"professionalId"`
	From           *time.Time `json:"from,omitempty"` // Начало периода (опционально)
	To             *time.Time `json:"to,omitempty"`   // Конец периода (опционально)
}

// DeleteSpecialDateRequest запрос на удаление особой даты
type DeleteSpecialDateRequest struct {
	UserID         int64 `json:"userId"`
	ProfessionalID int64 `json:"professionalId"`
	SpecialDateID  int64 `json:"specialDateId"`
}

// Response модели

// ConfigResponse ответ с конфигурацией календаря
type ConfigResponse struct {
	ID             int64 `json:"id"`
	ProfessionalID int64 `json:"professionalId"`

	BusinessDays           []int64 `json:"businessDays"`
	StartTime              string  `json:"startTime"`
	EndTime                string  `json:"endTime"`
	SlotMinTime            *string `json:"slotMinTime,omitempty"`
	SlotMaxTime            *string `json:"slotMaxTime,omitempty"`
	MaxAppointmentsPerSlot int     `json:"maxAppointmentsPerSlot"`

	// IsDefault true, если у профессионала нет сохранённой конфигурации
	// и применяется дефолтная политика
	IsDefault bool `json:"isDefault"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(cfg *domain.CalendarConfig, isDefault bool) *ConfigResponse {
	if cfg == nil {
		return nil
	}

	resp := &ConfigResponse{
		ID:                     cfg.ID,
		ProfessionalID:         cfg.ProfessionalID,
		BusinessDays:           cfg.BusinessDays,
		StartTime:              cfg.StartTime.String(),
		EndTime:                cfg.EndTime.String(),
		MaxAppointmentsPerSlot: cfg.MaxAppointmentsPerSlot,
		IsDefault:              isDefault,
		CreatedAt:              cfg.CreatedAt,
		UpdatedAt:              cfg.UpdatedAt,
	}

	if cfg.SlotMinTime != nil {
		t := cfg.SlotMinTime.String()
		resp.SlotMinTime = &t
	}
	if cfg.SlotMaxTime != nil {
		t := cfg.SlotMaxTime.String()
		resp.SlotMaxTime = &t
	}

	return resp
}

// SpecialDateResponse ответ с особой датой
type SpecialDateResponse struct {
	ID             int64 `json:"id"`
	ProfessionalID int64 `json:"professionalId"`

	Date        string  `json:"date"` // "2026-12-31"
	Title       string  `json:"title"`
	IsAvailable bool    `json:"isAvailable"`
	Color       *string `json:"color,omitempty"`
	Description *string `json:"description,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SpecialDateListResponse ответ со списком особых дат
type SpecialDateListResponse struct {
	SpecialDates []SpecialDateResponse `json:"specialDates"`
}

// FromDomainSpecialDate конвертирует domain модель в DTO
func FromDomainSpecialDate(sd *domain.SpecialDate) *SpecialDateResponse {
	if sd == nil {
		return nil
	}

	return &SpecialDateResponse{
		ID:             sd.ID,
		ProfessionalID: sd.ProfessionalID,
		Date:           sd.Date.Format(domain.DateFormat),
		Title:          sd.Title,
		IsAvailable:    sd.IsAvailable,
		Color:          sd.Color,
		Description:    sd.Description,
		CreatedAt:      sd.CreatedAt,
		UpdatedAt:      sd.UpdatedAt,
	}
}

// FromDomainSpecialDateList конвертирует список domain моделей в DTO
func FromDomainSpecialDateList(dates []*domain.SpecialDate) *SpecialDateListResponse {
	if dates == nil {
		return &SpecialDateListResponse{
			SpecialDates: []SpecialDateResponse{},
		}
	}

	resp := &SpecialDateListResponse{
		SpecialDates: make([]SpecialDateResponse, len(dates)),
	}

	for i, sd := range dates {
		if sdResp := FromDomainSpecialDate(sd); sdResp != nil {
			resp.SpecialDates[i] = *sdResp
		}
	}

	return resp
}
