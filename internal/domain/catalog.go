package domain

// Service is a billable unit from the catalog; its duration drives end-time
// computation. Service ids are unique across the whole catalog.
type Service struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
}

// Category groups services in the catalog.
type Category struct {
	Name     string
	Services []Service
}
