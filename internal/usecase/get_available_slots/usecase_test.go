package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	configRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/calendarconfig"
	catalogClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// --- фейки зависимостей ---

type fakeConfigRepo struct {
	cfg *domain.CalendarConfig
}

func (f *fakeConfigRepo) GetByProfessionalID(_ context.Context, _ int64) (*domain.CalendarConfig, error) {
	if f.cfg == nil {
		return nil, configRepo.ErrConfigNotFound
	}
	return f.cfg, nil
}

type fakeSpecialDateRepo struct {
	dates []*domain.SpecialDate
}

func (f *fakeSpecialDateRepo) GetByProfessionalAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.SpecialDate, error) {
	return f.dates, nil
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) GetByProfessionalWithFilter(_ context.Context, _ domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type fakeCatalogClient struct {
	catalog []domain.Category
	err     error
}

func (f *fakeCatalogClient) GetCatalog(_ context.Context, _ int64) ([]domain.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.catalog, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- тестовые данные ---

var testCatalog = []domain.Category{
	{
		Name: "Hair",
		Services: []domain.Service{
			{ID: 1, Name: "Haircut", Price: 1500, DurationMinutes: 60},
		},
	},
}

var monday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func newTestUseCase(cfg *domain.CalendarConfig, dates []*domain.SpecialDate, appts []*domain.Appointment, catalog *fakeCatalogClient) *UseCase {
	return NewUseCase(
		&fakeConfigRepo{cfg: cfg},
		&fakeSpecialDateRepo{dates: dates},
		&fakeAppointmentRepo{appointments: appts},
		catalog,
		nopLogger{},
	)
}

func TestExecute_DefaultConfig_FullDayOfSlots(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil, &fakeCatalogClient{catalog: testCatalog})

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 20, ServiceID: 1, Date: monday})

	require.NoError(t, err)
	assert.Equal(t, "Haircut", resp.ServiceName)
	assert.Equal(t, 60, resp.DurationMinutes)

	// 08:00-18:00 с шагом 60 минут: 10 слотов в группах утро и день
	total := 0
	for _, group := range resp.Groups {
		total += len(group.Slots)
	}
	assert.Equal(t, 10, total)

	require.Len(t, resp.Groups, 2)
	assert.Equal(t, domain.PeriodMorning, resp.Groups[0].Period)
	assert.Equal(t, domain.PeriodAfternoon, resp.Groups[1].Period)

	first := resp.Groups[0].Slots[0]
	assert.Equal(t, types.TimeString("08:00"), first.StartTime)
	assert.Equal(t, types.TimeString("09:00"), first.EndTime)
	assert.Equal(t, 1, first.Available)
	assert.True(t, first.Bookable)
}

func TestExecute_NonBusinessDay(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil, &fakeCatalogClient{catalog: testCatalog})

	saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 20, ServiceID: 1, Date: saturday})

	assert.ErrorIs(t, err, ErrNonBusinessDay)
}

func TestExecute_SpecialDateBlocked(t *testing.T) {
	dates := []*domain.SpecialDate{
		{ID: 1, ProfessionalID: 20, Date: monday, Title: "Holiday", IsAvailable: false},
	}
	uc := newTestUseCase(nil, dates, nil, &fakeCatalogClient{catalog: testCatalog})

	_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 20, ServiceID: 1, Date: monday})

	assert.ErrorIs(t, err, ErrSpecialDateBlocked)
}

func TestExecute_AvailableSpecialDateDoesNotOpenWeekend(t *testing.T) {
	// Переопределение с is_available=true не открывает нерабочий день недели
	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
	dates := []*domain.SpecialDate{
		{ID: 1, ProfessionalID: 20, Date: sunday, Title: "Extra day", IsAvailable: true},
	}
	uc := newTestUseCase(nil, dates, nil, &fakeCatalogClient{catalog: testCatalog})

	_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 20, ServiceID: 1, Date: sunday})

	assert.ErrorIs(t, err, ErrNonBusinessDay)
}

func TestExecute_BookedSlotHasNoAvailability(t *testing.T) {
	appts := []*domain.Appointment{
		{ID: 1, ProfessionalID: 20, ClientID: 10, Date: monday,
			StartTime: types.TimeString("10:00"), Status: domain.StatusConfirmed},
	}
	uc := newTestUseCase(nil, nil, appts, &fakeCatalogClient{catalog: testCatalog})

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 20, ServiceID: 1, Date: monday})

	require.NoError(t, err)
	for _, group := range resp.Groups {
		for _, slot := range group.Slots {
			if slot.StartTime == "10:00" {
				assert.Equal(t, 0, slot.Available)
			} else {
				assert.Equal(t, 1, slot.Available)
			}
		}
	}
}

func TestExecute_CancelledAppointmentsDoNotOccupySlots(t *testing.T) {
	appts := []*domain.Appointment{
		{ID: 1, ProfessionalID: 20, ClientID: 10, Date: monday,
			StartTime: types.TimeString("10:00"), Status: domain.StatusCancelledByClient},
		{ID: 2, ProfessionalID: 20, ClientID: 11, Date: monday,
			StartTime: types.TimeString("10:00"), Status: domain.StatusNoShow},
	}
	uc := newTestUseCase(nil, nil, appts, &fakeCatalogClient{catalog: testCatalog})

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 20, ServiceID: 1, Date: monday})

	require.NoError(t, err)
	for _, group := range resp.Groups {
		for _, slot := range group.Slots {
			assert.Equal(t, 1, slot.Available)
		}
	}
}

func TestExecute_UnknownService_DefaultDuration(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil, &fakeCatalogClient{catalog: testCatalog})

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 20, ServiceID: 999, Date: monday})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultServiceDurationMinutes, resp.DurationMinutes)
	assert.Empty(t, resp.ServiceName)
}

func TestExecute_RenderWindowSlots_NotBookable(t *testing.T) {
	// Окно отрисовки шире рабочих часов: ранние слоты присутствуют, но не бронируемы
	cfg := domain.DefaultCalendarConfig()
	cfg.SlotMinTime = ptr.Ptr(types.TimeString("07:00"))
	uc := newTestUseCase(cfg, nil, nil, &fakeCatalogClient{catalog: testCatalog})

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: 20, ServiceID: 1, Date: monday})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Groups)
	first := resp.Groups[0].Slots[0]
	assert.Equal(t, types.TimeString("07:00"), first.StartTime)
	assert.False(t, first.Bookable)
	second := resp.Groups[0].Slots[1]
	assert.Equal(t, types.TimeString("08:00"), second.StartTime)
	assert.True(t, second.Bookable)
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil, &fakeCatalogClient{err: catalogClient.ErrProfessionalNotFound})

	_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 20, ServiceID: 1, Date: monday})

	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil, &fakeCatalogClient{catalog: testCatalog})

	_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 0, ServiceID: 1, Date: monday})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
