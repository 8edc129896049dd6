package availability

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ServiceDuration resolves the duration of a service by linear scan across
// all catalog categories. An unknown id falls back to the default duration;
// that is documented policy, not an error. This is the single source of truth
// for the fallback, callers must not reimplement the lookup.
func ServiceDuration(serviceID int64, catalog []domain.Category) int {
	for _, category := range catalog {
		for _, service := range category.Services {
			if service.ID == serviceID {
				return service.DurationMinutes
			}
		}
	}
	return domain.DefaultServiceDurationMinutes
}

// FindService resolves a service by id, reporting whether it was found.
func FindService(serviceID int64, catalog []domain.Category) (domain.Service, bool) {
	for _, category := range catalog {
		for _, service := range category.Services {
			if service.ID == serviceID {
				return service, true
			}
		}
	}
	return domain.Service{}, false
}

// ComputeEndTime returns start plus the service duration, at minute
// precision: seconds and finer components of start are zeroed first.
func ComputeEndTime(start time.Time, serviceID int64, catalog []domain.Category) time.Time {
	minutes := ServiceDuration(serviceID, catalog)
	truncated := time.Date(start.Year(), start.Month(), start.Day(),
		start.Hour(), start.Minute(), 0, 0, start.Location())
	return truncated.Add(time.Duration(minutes) * time.Minute)
}
