package specialdate

import "errors"

var (
	// ErrSpecialDateNotFound возвращается, когда особая дата не найдена
	ErrSpecialDateNotFound = errors.New("specialdate.repository: special date not found")

	// ErrDuplicateDate возвращается при попытке создать вторую особую дату на тот же день
	ErrDuplicateDate = errors.New("specialdate.repository: special date already exists for this date")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("specialdate.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("specialdate.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("specialdate.repository: failed to scan row")
)
