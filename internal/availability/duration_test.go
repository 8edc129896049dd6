package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

func testCatalog() []domain.Category {
	return []domain.Category{
		{
			Name: "Hair",
			Services: []domain.Service{
				{ID: 1, Name: "Haircut", Price: 50, DurationMinutes: 30},
				{ID: 2, Name: "Coloring", Price: 120, DurationMinutes: 90},
			},
		},
		{
			Name: "Nails",
			Services: []domain.Service{
				{ID: 3, Name: "Manicure", Price: 40, DurationMinutes: 45},
			},
		},
	}
}

func TestServiceDuration(t *testing.T) {
	catalog := testCatalog()

	assert.Equal(t, 30, ServiceDuration(1, catalog))
	assert.Equal(t, 90, ServiceDuration(2, catalog))
	// Found in the second category, the scan crosses category boundaries.
	assert.Equal(t, 45, ServiceDuration(3, catalog))
}

func TestServiceDuration_UnknownFallsBackTo60(t *testing.T) {
	catalog := testCatalog()

	assert.Equal(t, domain.DefaultServiceDurationMinutes, ServiceDuration(999, catalog))
	assert.Equal(t, domain.DefaultServiceDurationMinutes, ServiceDuration(1, nil))
}

func TestFindService(t *testing.T) {
	catalog := testCatalog()

	service, found := FindService(3, catalog)
	assert.True(t, found)
	assert.Equal(t, "Manicure", service.Name)

	_, found = FindService(999, catalog)
	assert.False(t, found)
}

func TestComputeEndTime(t *testing.T) {
	catalog := testCatalog()

	start := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
	end := ComputeEndTime(start, 1, catalog)
	assert.Equal(t, time.Date(2024, 3, 4, 10, 30, 0, 0, time.UTC), end)

	// A 45-minute service starting 17:45 ends 18:30, past an 18:00 close.
	// The overrun is the caller's warning to raise, not this function's.
	start = time.Date(2024, 3, 4, 17, 45, 0, 0, time.UTC)
	end = ComputeEndTime(start, 3, catalog)
	assert.Equal(t, time.Date(2024, 3, 4, 18, 30, 0, 0, time.UTC), end)
}

func TestComputeEndTime_ZeroesSecondsAndBelow(t *testing.T) {
	catalog := testCatalog()

	start := time.Date(2024, 3, 4, 10, 0, 42, 999, time.UTC)
	end := ComputeEndTime(start, 1, catalog)
	assert.Equal(t, time.Date(2024, 3, 4, 10, 30, 0, 0, time.UTC), end)
}

func TestComputeEndTime_UnknownServiceAdds60Minutes(t *testing.T) {
	start := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	end := ComputeEndTime(start, 999, testCatalog())
	assert.Equal(t, start.Add(60*time.Minute), end)
}

func TestComputeEndTime_Deterministic(t *testing.T) {
	catalog := testCatalog()
	start := time.Date(2024, 3, 4, 14, 15, 0, 0, time.UTC)

	first := ComputeEndTime(start, 2, catalog)
	second := ComputeEndTime(start, 2, catalog)
	assert.Equal(t, first, second)
	assert.Equal(t, start.Add(90*time.Minute), first)
}
