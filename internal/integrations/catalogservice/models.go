package catalogservice

import "github.com/m04kA/SMC-SchedulingService/internal/domain"

// Catalog модель каталога услуг из CatalogService
type Catalog struct {
	ProfessionalID int64      `json:"professional_id"`
	Categories     []Category `json:"categories"`
}

// Category категория услуг
type Category struct {
	Name     string    `json:"name"`
	Services []Service `json:"services"`
}

// Service услуга внутри категории
type Service struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration_minutes"`
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует каталог в доменные модели
func (c *Catalog) ToDomain() []domain.Category {
	categories := make([]domain.Category, len(c.Categories))
	for i, category := range c.Categories {
		services := make([]domain.Service, len(category.Services))
		for j, service := range category.Services {
			services[j] = domain.Service{
				ID:              service.ID,
				Name:            service.Name,
				Price:           service.Price,
				DurationMinutes: service.DurationMinutes,
			}
		}
		categories[i] = domain.Category{
			Name:     category.Name,
			Services: services,
		}
	}
	return categories
}
