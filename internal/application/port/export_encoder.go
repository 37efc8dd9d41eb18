package port

import "github.com/dreschagin/scrum-health-dashboard/internal/application/dto"

// ExportEncoder сериализует строки экспорта в конкретный формат
type ExportEncoder interface {
	// Encode сериализует строки экспорта
	Encode(rows []*dto.ExportRowDTO) ([]byte, error)

	// ContentType возвращает MIME type формата
	ContentType() string

	// FileExtension возвращает расширение файла без точки
	FileExtension() string
}
