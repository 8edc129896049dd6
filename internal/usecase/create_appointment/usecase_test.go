package create_appointment

import (
	"context"
	"errors"
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

type fakeAppointmentRepo struct {
	existing []*domain.Appointment
	created  *domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	created := *appt
	created.ID = 42
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeAppointmentRepo) GetByProfessionalWithFilter(_ context.Context, _ domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
	return f.existing, nil
}

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

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
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
			{ID: 1, Name: "Haircut", Price: 1500, DurationMinutes: 30},
			{ID: 2, Name: "Coloring", Price: 4500, DurationMinutes: 45},
		},
	},
}

func newTestUseCase(
	apptRepo *fakeAppointmentRepo,
	cfgRepo *fakeConfigRepo,
	sdRepo *fakeSpecialDateRepo,
	catalog *fakeCatalogClient,
	now time.Time,
) *UseCase {
	uc := NewUseCase(apptRepo, cfgRepo, sdRepo, catalog, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		ClientID:       10,
		ProfessionalID: 20,
		ServiceID:      1,
		Title:          "Haircut for Ivan",
		Date:           time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), // понедельник
		StartTime:      types.TimeString("10:00"),
		PaymentType:    "cash",
	}
}

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func TestExecute_Success(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{}
	uc := newTestUseCase(apptRepo, &fakeConfigRepo{}, &fakeSpecialDateRepo{}, &fakeCatalogClient{catalog: testCatalog}, testNow)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("10:30"), resp.EndTime)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, "Haircut", resp.ServiceName)
	assert.Equal(t, 1500.0, resp.ServicePrice)
	assert.NotEmpty(t, resp.DisplayColor)
	assert.Empty(t, resp.Warnings)
}

func TestExecute_MissingFields_AllListedAtOnce(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeConfigRepo{}, &fakeSpecialDateRepo{}, &fakeCatalogClient{catalog: testCatalog}, testNow)

	_, err := uc.Execute(context.Background(), &Request{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncompleteSubmission)
	// все пропущенные поля перечислены в одной ошибке
	assert.Contains(t, err.Error(), "clientId")
	assert.Contains(t, err.Error(), "professionalId")
	assert.Contains(t, err.Error(), "serviceId")
	assert.Contains(t, err.Error(), "title")
	assert.Contains(t, err.Error(), "date")
	assert.Contains(t, err.Error(), "startTime")
	assert.Contains(t, err.Error(), "paymentType")
}

func TestExecute_NonBusinessDay(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeConfigRepo{}, &fakeSpecialDateRepo{}, &fakeCatalogClient{catalog: testCatalog}, testNow)

	req := validRequest()
	req.Date = time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC) // суббота

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrNonBusinessDay)
}

func TestExecute_SpecialDateBlocked(t *testing.T) {
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	sdRepo := &fakeSpecialDateRepo{dates: []*domain.SpecialDate{
		{ID: 1, ProfessionalID: 20, Date: date, Title: "Holiday", IsAvailable: false},
	}}
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeConfigRepo{}, sdRepo, &fakeCatalogClient{catalog: testCatalog}, testNow)

	req := validRequest()
	req.Date = date

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSpecialDateBlocked)
}

func TestExecute_DateInPast(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeConfigRepo{}, &fakeSpecialDateRepo{}, &fakeCatalogClient{catalog: testCatalog}, testNow)

	req := validRequest()
	req.Date = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC) // понедельник до testNow

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_StartOutsideHours_HardFailure(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeConfigRepo{}, &fakeSpecialDateRepo{}, &fakeCatalogClient{catalog: testCatalog}, testNow)

	req := validRequest()
	req.StartTime = types.TimeString("19:30")

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrStartOutsideHours)
}

func TestExecute_EndPastClosing_WarningNotError(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{}
	uc := newTestUseCase(apptRepo, &fakeConfigRepo{}, &fakeSpecialDateRepo{}, &fakeCatalogClient{catalog: testCatalog}, testNow)

	// услуга на 45 минут, старт 17:45 при закрытии в 18:00
	req := validRequest()
	req.ServiceID = 2
	req.StartTime = types.TimeString("17:45")

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, types.TimeString("18:30"), resp.EndTime)
	assert.Contains(t, resp.Warnings, WarningEndPastClosing)
}

func TestExecute_SlotFull(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{existing: []*domain.Appointment{
		{ID: 1, ProfessionalID: 20, ClientID: 11, StartTime: types.TimeString("10:00"), Status: domain.StatusConfirmed},
	}}
	uc := newTestUseCase(apptRepo, &fakeConfigRepo{}, &fakeSpecialDateRepo{}, &fakeCatalogClient{catalog: testCatalog}, testNow)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotFull)
}

func TestExecute_CancelledAppointmentDoesNotBlockSlot(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{existing: []*domain.Appointment{
		{ID: 1, ProfessionalID: 20, ClientID: 11, StartTime: types.TimeString("10:00"), Status: domain.StatusCancelledByClient},
	}}
	uc := newTestUseCase(apptRepo, &fakeConfigRepo{}, &fakeSpecialDateRepo{}, &fakeCatalogClient{catalog: testCatalog}, testNow)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestExecute_SlotCapacityTwo_SecondAppointmentAllowed(t *testing.T) {
	cfg := domain.DefaultCalendarConfig()
	cfg.MaxAppointmentsPerSlot = 2
	apptRepo := &fakeAppointmentRepo{existing: []*domain.Appointment{
		{ID: 1, ProfessionalID: 20, ClientID: 11, StartTime: types.TimeString("10:00"), Status: domain.StatusConfirmed},
	}}
	uc := newTestUseCase(apptRepo, &fakeConfigRepo{cfg: cfg}, &fakeSpecialDateRepo{}, &fakeCatalogClient{catalog: testCatalog}, testNow)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestExecute_UnknownService_DefaultDuration(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{}
	uc := newTestUseCase(apptRepo, &fakeConfigRepo{}, &fakeSpecialDateRepo{}, &fakeCatalogClient{catalog: testCatalog}, testNow)

	req := validRequest()
	req.ServiceID = 999

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultServiceDurationMinutes, resp.DurationMinutes)
	assert.Equal(t, types.TimeString("11:00"), resp.EndTime)
	assert.Empty(t, resp.ServiceName)
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeConfigRepo{}, &fakeSpecialDateRepo{},
		&fakeCatalogClient{err: catalogClient.ErrProfessionalNotFound}, testNow)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_InvalidPaymentType(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeConfigRepo{}, &fakeSpecialDateRepo{}, &fakeCatalogClient{catalog: testCatalog}, testNow)

	req := validRequest()
	req.PaymentType = "crypto"

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_NotesTooLong(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeConfigRepo{}, &fakeSpecialDateRepo{}, &fakeCatalogClient{catalog: testCatalog}, testNow)

	long := make([]byte, domain.MaxNotesLength+1)
	for i := range long {
		long[i] = 'a'
	}
	req := validRequest()
	req.Notes = ptr.Ptr(string(long))

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_DefaultConfigAppliedWhenMissing(t *testing.T) {
	// Конфигурации нет: должна применяться дефолтная политика пн-пт 08:00-18:00
	apptRepo := &fakeAppointmentRepo{}
	uc := newTestUseCase(apptRepo, &fakeConfigRepo{cfg: nil}, &fakeSpecialDateRepo{}, &fakeCatalogClient{catalog: testCatalog}, testNow)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, apptRepo.created)
	assert.Equal(t, domain.StatusConfirmed, apptRepo.created.Status)
	assert.Equal(t, int64(42), resp.ID)
}

func TestExecute_RepoErrorWrappedAsInternal(t *testing.T) {
	catalog := &fakeCatalogClient{err: errors.New("connection refused")}
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeConfigRepo{}, &fakeSpecialDateRepo{}, catalog, testNow)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
