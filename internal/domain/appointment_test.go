package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_IsActive(t *testing.T) {
	tests := []struct {
		status AppointmentStatus
		active bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusCompleted, true},
		{StatusCancelledByClient, false},
		{StatusCancelledByProfessional, false},
		{StatusNoShow, false},
	}

	for _, tt := range tests {
		a := &Appointment{Status: tt.status}
		assert.Equal(t, tt.active, a.IsActive(), "status=%s", tt.status)
	}
}

func TestAppointment_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Appointment{Status: StatusConfirmed}).CanBeCancelled())

	assert.False(t, (&Appointment{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusCancelledByClient}).CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusNoShow}).CanBeCancelled())
}

func TestAppointment_CanBeUpdated(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusPending}).CanBeUpdated())
	assert.True(t, (&Appointment{Status: StatusConfirmed}).CanBeUpdated())

	assert.False(t, (&Appointment{Status: StatusCompleted}).CanBeUpdated())
	assert.False(t, (&Appointment{Status: StatusCancelledByProfessional}).CanBeUpdated())
}

func TestValidPaymentType(t *testing.T) {
	assert.True(t, ValidPaymentType(PaymentCash))
	assert.True(t, ValidPaymentType(PaymentCard))
	assert.True(t, ValidPaymentType(PaymentTransfer))

	assert.False(t, ValidPaymentType(PaymentType("crypto")))
	assert.False(t, ValidPaymentType(PaymentType("")))
}
