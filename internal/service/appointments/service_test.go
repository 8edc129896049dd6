package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SchedulingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// --- Фейки ---

type fakeAppointmentRepo struct {
	appointments map[int64]*domain.Appointment

	cancelledID     int64
	cancelledStatus domain.AppointmentStatus
	cancelledReason string

	updatedID     int64
	updatedStatus domain.AppointmentStatus

	err error
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	appt, ok := f.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	cp := *appt
	return &cp, nil
}

func (f *fakeAppointmentRepo) GetByClientID(_ context.Context, clientID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Appointment
	for _, appt := range f.appointments {
		if appt.ClientID != clientID {
			continue
		}
		if status != nil && appt.Status != *status {
			continue
		}
		out = append(out, appt)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) GetByProfessionalWithFilter(_ context.Context, filter domain.ProfessionalAppointmentsFilter) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Appointment
	for _, appt := range f.appointments {
		if appt.ProfessionalID != filter.ProfessionalID {
			continue
		}
		if !filter.IncludeInactive && !appt.IsActive() {
			continue
		}
		if filter.Status != nil && appt.Status != *filter.Status {
			continue
		}
		out = append(out, appt)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	if _, ok := f.appointments[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, id int64, status domain.AppointmentStatus, reason string) error {
	if _, ok := f.appointments[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	f.cancelledID = id
	f.cancelledStatus = status
	f.cancelledReason = reason
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// --- Хелперы ---

const (
	testClientID       = int64(10)
	testProfessionalID = int64(20)
	testStrangerID     = int64(99)
)

func baseAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              7,
		ProfessionalID:  testProfessionalID,
		ClientID:        testClientID,
		ServiceID:       1,
		Title:           "Стрижка",
		Date:            time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		EndTime:         types.TimeString("10:30"),
		DurationMinutes: 30,
		Status:          domain.StatusConfirmed,
		PaymentType:     domain.PaymentCash,
		ServiceName:     "Стрижка",
		ServicePrice:    1500,
	}
}

func newTestService(appts ...*domain.Appointment) (*Service, *fakeAppointmentRepo) {
	repo := &fakeAppointmentRepo{appointments: map[int64]*domain.Appointment{}}
	for _, a := range appts {
		repo.appointments[a.ID] = a
	}
	return NewService(repo, nopLogger{}), repo
}

// --- GetByID ---

func TestGetByID_ClientSeesOwnAppointment(t *testing.T) {
	svc, _ := newTestService(baseAppointment())

	resp, err := svc.GetByID(context.Background(), 7, testClientID)

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "Стрижка", resp.Title)
}

func TestGetByID_ProfessionalSeesAppointment(t *testing.T) {
	svc, _ := newTestService(baseAppointment())

	resp, err := svc.GetByID(context.Background(), 7, testProfessionalID)

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
}

func TestGetByID_StrangerDenied(t *testing.T) {
	svc, _ := newTestService(baseAppointment())

	_, err := svc.GetByID(context.Background(), 7, testStrangerID)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), 404, testClientID)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

// --- Cancel ---

func TestCancel_ByClient(t *testing.T) {
	svc, repo := newTestService(baseAppointment())

	err := svc.Cancel(context.Background(), 7, &models.CancelAppointmentRequest{
		UserID:             testClientID,
		CancellationReason: "передумал",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByClient, repo.cancelledStatus)
	assert.Equal(t, "передумал", repo.cancelledReason)
}

func TestCancel_ByProfessional(t *testing.T) {
	svc, repo := newTestService(baseAppointment())

	err := svc.Cancel(context.Background(), 7, &models.CancelAppointmentRequest{
		UserID: testProfessionalID,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelledByProfessional, repo.cancelledStatus)
}

func TestCancel_StrangerDenied(t *testing.T) {
	svc, _ := newTestService(baseAppointment())

	err := svc.Cancel(context.Background(), 7, &models.CancelAppointmentRequest{
		UserID: testStrangerID,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_CompletedNotCancellable(t *testing.T) {
	appt := baseAppointment()
	appt.Status = domain.StatusCompleted
	svc, _ := newTestService(appt)

	err := svc.Cancel(context.Background(), 7, &models.CancelAppointmentRequest{
		UserID: testClientID,
	})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_ReasonTooLong(t *testing.T) {
	svc, _ := newTestService(baseAppointment())

	longReason := make([]byte, domain.MaxCancellationReasonLength+1)
	for i := range longReason {
		longReason[i] = 'a'
	}

	err := svc.Cancel(context.Background(), 7, &models.CancelAppointmentRequest{
		UserID:             testClientID,
		CancellationReason: string(longReason),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

// --- UpdateStatus ---

func TestUpdateStatus_ProfessionalMarksCompleted(t *testing.T) {
	svc, repo := newTestService(baseAppointment())

	err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{
		UserID: testProfessionalID,
		Status: "completed",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, repo.updatedStatus)
}

func TestUpdateStatus_ClientDenied(t *testing.T) {
	svc, _ := newTestService(baseAppointment())

	err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{
		UserID: testClientID,
		Status: "completed",
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc, _ := newTestService(baseAppointment())

	err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{
		UserID: testProfessionalID,
		Status: "teleported",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

// --- Списки ---

func TestGetClientAppointments_OwnOnly(t *testing.T) {
	other := baseAppointment()
	other.ID = 8
	other.ClientID = 55
	svc, _ := newTestService(baseAppointment(), other)

	result, err := svc.GetClientAppointments(context.Background(), &models.GetClientAppointmentsRequest{
		ClientID: testClientID,
	})

	require.NoError(t, err)
	require.Len(t, result.Appointments, 1)
	assert.Equal(t, int64(7), result.Appointments[0].ID)
}

func TestGetProfessionalAppointments_StrangerDenied(t *testing.T) {
	svc, _ := newTestService(baseAppointment())

	_, err := svc.GetProfessionalAppointments(context.Background(), &models.GetProfessionalAppointmentsRequest{
		UserID:         testStrangerID,
		ProfessionalID: testProfessionalID,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetProfessionalAppointments_RepoError(t *testing.T) {
	svc, repo := newTestService(baseAppointment())
	repo.err = errors.New("connection reset")

	_, err := svc.GetProfessionalAppointments(context.Background(), &models.GetProfessionalAppointmentsRequest{
		UserID:         testProfessionalID,
		ProfessionalID: testProfessionalID,
	})

	assert.ErrorIs(t, err, ErrInternal)
}
