package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ProfessionalID int64     // ID профессионала
	ServiceID      int64     // ID услуги (определяет шаг слотов)
	Date           time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со слотами, сгруппированными по периодам дня
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	ProfessionalID  int64     // ID профессионала
	ServiceID       int64     // ID услуги
	ServiceName     string    // Название услуги (пустое, если услуга не найдена в каталоге)
	DurationMinutes int       // Шаг слотов (длительность услуги)
	Groups          []Group   // Слоты по периодам дня: утро, день, вечер
}

// Group группа слотов одного периода дня
type Group struct {
	Period         domain.DayPeriod // morning / afternoon / evening
	TotalAvailable int              // Суммарное количество свободных мест в группе
	Slots          []Slot           // Слоты в хронологическом порядке
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	EndTime   types.TimeString // Время конца слота
	Available int              // Количество свободных мест
	Capacity  int              // Общее количество мест
	Bookable  bool             // false для контекстных слотов вне рабочих часов
}

// fromDomainGroups конвертирует доменные группы слотов в модели usecase
func fromDomainGroups(groups []domain.SlotGroup) []Group {
	result := make([]Group, len(groups))
	for i, group := range groups {
		slots := make([]Slot, len(group.Slots))
		for j, slot := range group.Slots {
			slots[j] = Slot{
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
				Available: slot.Available,
				Capacity:  slot.Capacity,
				Bookable:  slot.Bookable,
			}
		}
		result[i] = Group{
			Period:         group.Period,
			TotalAvailable: group.TotalAvailable,
			Slots:          slots,
		}
	}
	return result
}
