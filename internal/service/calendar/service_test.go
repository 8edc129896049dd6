package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	configRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/calendarconfig"
	specialDateRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/specialdate"
	"github.com/m04kA/SMC-SchedulingService/internal/service/calendar/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

// --- Фейки ---

type fakeConfigRepo struct {
	config *domain.CalendarConfig
}

func (f *fakeConfigRepo) GetByProfessionalID(_ context.Context, professionalID int64) (*domain.CalendarConfig, error) {
	if f.config == nil || f.config.ProfessionalID != professionalID {
		return nil, configRepo.ErrConfigNotFound
	}
	return f.config, nil
}

func (f *fakeConfigRepo) Upsert(_ context.Context, cfg *domain.CalendarConfig) (*domain.CalendarConfig, error) {
	stored := *cfg
	stored.ID = 1
	f.config = &stored
	return &stored, nil
}

type fakeSpecialDateRepo struct {
	dates     []*domain.SpecialDate
	duplicate bool
}

func (f *fakeSpecialDateRepo) Create(_ context.Context, sd *domain.SpecialDate) (*domain.SpecialDate, error) {
	if f.duplicate {
		return nil, specialDateRepo.ErrDuplicateDate
	}
	created := *sd
	created.ID = int64(len(f.dates) + 1)
	f.dates = append(f.dates, &created)
	return &created, nil
}

func (f *fakeSpecialDateRepo) ListByProfessional(_ context.Context, professionalID int64, from, to *time.Time) ([]*domain.SpecialDate, error) {
	var out []*domain.SpecialDate
	for _, sd := range f.dates {
		if sd.ProfessionalID != professionalID {
			continue
		}
		if from != nil && sd.Date.Before(*from) {
			continue
		}
		if to != nil && sd.Date.After(*to) {
			continue
		}
		out = append(out, sd)
	}
	return out, nil
}

func (f *fakeSpecialDateRepo) Delete(_ context.Context, professionalID, specialDateID int64) error {
	for i, sd := range f.dates {
		if sd.ProfessionalID == professionalID && sd.ID == specialDateID {
			f.dates = append(f.dates[:i], f.dates[i+1:]...)
			return nil
		}
	}
	return specialDateRepo.ErrSpecialDateNotFound
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

const testProfessionalID = int64(20)

func newTestService() (*Service, *fakeConfigRepo, *fakeSpecialDateRepo) {
	cfgRepo := &fakeConfigRepo{}
	sdRepo := &fakeSpecialDateRepo{}
	return NewService(cfgRepo, sdRepo, nopLogger{}), cfgRepo, sdRepo
}

func validUpsertRequest() *models.UpsertConfigRequest {
	return &models.UpsertConfigRequest{
		UserID:                 testProfessionalID,
		ProfessionalID:         testProfessionalID,
		BusinessDays:           []int64{1, 2, 3, 4, 5},
		StartTime:              "09:00",
		EndTime:                "19:00",
		MaxAppointmentsPerSlot: 2,
	}
}

// --- GetConfig ---

func TestGetConfig_ReturnsDefaultPolicyWhenMissing(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.GetConfig(context.Background(), testProfessionalID)

	require.NoError(t, err)
	assert.True(t, resp.IsDefault)
	assert.Equal(t, testProfessionalID, resp.ProfessionalID)
	assert.Equal(t, domain.DefaultStartTime, resp.StartTime)
	assert.Equal(t, domain.DefaultEndTime, resp.EndTime)
	assert.Equal(t, domain.DefaultMaxAppointmentsPerSlot, resp.MaxAppointmentsPerSlot)
	// Пн-Пт по умолчанию
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, resp.BusinessDays)
}

func TestGetConfig_ReturnsStoredConfig(t *testing.T) {
	svc, cfgRepo, _ := newTestService()

	_, err := svc.UpsertConfig(context.Background(), validUpsertRequest())
	require.NoError(t, err)
	require.NotNil(t, cfgRepo.config)

	resp, err := svc.GetConfig(context.Background(), testProfessionalID)

	require.NoError(t, err)
	assert.False(t, resp.IsDefault)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, 2, resp.MaxAppointmentsPerSlot)
}

// --- UpsertConfig ---

func TestUpsertConfig_StrangerDenied(t *testing.T) {
	svc, _, _ := newTestService()

	req := validUpsertRequest()
	req.UserID = 99

	_, err := svc.UpsertConfig(context.Background(), req)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpsertConfig_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.UpsertConfigRequest)
	}{
		{"EmptyBusinessDays", func(r *models.UpsertConfigRequest) { r.BusinessDays = nil }},
		{"DayOutOfRange", func(r *models.UpsertConfigRequest) { r.BusinessDays = []int64{1, 7} }},
		{"DuplicateDay", func(r *models.UpsertConfigRequest) { r.BusinessDays = []int64{1, 1} }},
		{"MalformedStartTime", func(r *models.UpsertConfigRequest) { r.StartTime = "9am" }},
		{"StartAfterEnd", func(r *models.UpsertConfigRequest) { r.StartTime = "20:00" }},
		{"SlotMinAfterStart", func(r *models.UpsertConfigRequest) { r.SlotMinTime = ptr.Ptr("10:00") }},
		{"SlotMaxBeforeEnd", func(r *models.UpsertConfigRequest) { r.SlotMaxTime = ptr.Ptr("18:00") }},
		{"ZeroCapacity", func(r *models.UpsertConfigRequest) { r.MaxAppointmentsPerSlot = 0 }},
		{"CapacityAboveLimit", func(r *models.UpsertConfigRequest) { r.MaxAppointmentsPerSlot = 101 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService()
			req := validUpsertRequest()
			tt.mutate(req)

			_, err := svc.UpsertConfig(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpsertConfig_RenderWindowAccepted(t *testing.T) {
	svc, _, _ := newTestService()

	req := validUpsertRequest()
	req.SlotMinTime = ptr.Ptr("08:00")
	req.SlotMaxTime = ptr.Ptr("21:00")

	resp, err := svc.UpsertConfig(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp.SlotMinTime)
	assert.Equal(t, "08:00", *resp.SlotMinTime)
	require.NotNil(t, resp.SlotMaxTime)
	assert.Equal(t, "21:00", *resp.SlotMaxTime)
}

// --- Особые даты ---

func TestCreateSpecialDate_Success(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.CreateSpecialDate(context.Background(), &models.CreateSpecialDateRequest{
		UserID:         testProfessionalID,
		ProfessionalID: testProfessionalID,
		Date:           "2026-12-31",
		Title:          "Новый год",
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-12-31", resp.Date)
	assert.Equal(t, "Новый год", resp.Title)
	assert.False(t, resp.IsAvailable)
}

func TestCreateSpecialDate_StrangerDenied(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateSpecialDate(context.Background(), &models.CreateSpecialDateRequest{
		UserID:         99,
		ProfessionalID: testProfessionalID,
		Date:           "2026-12-31",
		Title:          "Новый год",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreateSpecialDate_InvalidDate(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.CreateSpecialDate(context.Background(), &models.CreateSpecialDateRequest{
		UserID:         testProfessionalID,
		ProfessionalID: testProfessionalID,
		Date:           "31.12.2026",
		Title:          "Новый год",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateSpecialDate_DuplicateConflict(t *testing.T) {
	svc, _, sdRepo := newTestService()
	sdRepo.duplicate = true

	_, err := svc.CreateSpecialDate(context.Background(), &models.CreateSpecialDateRequest{
		UserID:         testProfessionalID,
		ProfessionalID: testProfessionalID,
		Date:           "2026-12-31",
		Title:          "Новый год",
	})

	assert.ErrorIs(t, err, ErrSpecialDateAlreadyExists)
}

func TestListSpecialDates_PeriodFilter(t *testing.T) {
	svc, _, _ := newTestService()

	for _, d := range []string{"2026-11-01", "2026-12-31"} {
		_, err := svc.CreateSpecialDate(context.Background(), &models.CreateSpecialDateRequest{
			UserID:         testProfessionalID,
			ProfessionalID: testProfessionalID,
			Date:           d,
			Title:          "Выходной",
		})
		require.NoError(t, err)
	}

	from := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	result, err := svc.ListSpecialDates(context.Background(), &models.ListSpecialDatesRequest{
		ProfessionalID: testProfessionalID,
		From:           &from,
	})

	require.NoError(t, err)
	require.Len(t, result.SpecialDates, 1)
	assert.Equal(t, "2026-12-31", result.SpecialDates[0].Date)
}

func TestListSpecialDates_InvalidPeriod(t *testing.T) {
	svc, _, _ := newTestService()

	from := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.ListSpecialDates(context.Background(), &models.ListSpecialDatesRequest{
		ProfessionalID: testProfessionalID,
		From:           &from,
		To:             &to,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteSpecialDate_Success(t *testing.T) {
	svc, _, sdRepo := newTestService()

	created, err := svc.CreateSpecialDate(context.Background(), &models.CreateSpecialDateRequest{
		UserID:         testProfessionalID,
		ProfessionalID: testProfessionalID,
		Date:           "2026-12-31",
		Title:          "Новый год",
	})
	require.NoError(t, err)

	err = svc.DeleteSpecialDate(context.Background(), &models.DeleteSpecialDateRequest{
		UserID:         testProfessionalID,
		ProfessionalID: testProfessionalID,
		SpecialDateID:  created.ID,
	})

	require.NoError(t, err)
	assert.Empty(t, sdRepo.dates)
}

func TestDeleteSpecialDate_NotFound(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.DeleteSpecialDate(context.Background(), &models.DeleteSpecialDateRequest{
		UserID:         testProfessionalID,
		ProfessionalID: testProfessionalID,
		SpecialDateID:  404,
	})

	assert.ErrorIs(t, err, ErrSpecialDateNotFound)
}

func TestDeleteSpecialDate_StrangerDenied(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.DeleteSpecialDate(context.Background(), &models.DeleteSpecialDateRequest{
		UserID:         99,
		ProfessionalID: testProfessionalID,
		SpecialDateID:  1,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}
