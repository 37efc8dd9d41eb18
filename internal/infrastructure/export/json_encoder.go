package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dreschagin/scrum-health-dashboard/internal/application/dto"
)

// JSONEncoder сериализует строки экспорта в JSON документ с метаданными.
// Реализует port.ExportEncoder.
type JSONEncoder struct{}

// NewJSONEncoder создает новый JSON encoder
func NewJSONEncoder() *JSONEncoder {
	return &JSONEncoder{}
}

type jsonDocument struct {
	GeneratedAt time.Time           `json:"generated_at"`
	RowCount    int                 `json:"row_count"`
	Rows        []*dto.ExportRowDTO `json:"rows"`
}

// Encode сериализует строки экспорта
func (e *JSONEncoder) Encode(rows []*dto.ExportRowDTO) ([]byte, error) {
	doc := jsonDocument{
		GeneratedAt: time.Now().UTC(),
		RowCount:    len(rows),
		Rows:        rows,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export document: %w", err)
	}

	return data, nil
}

// ContentType возвращает MIME type формата
func (e *JSONEncoder) ContentType() string {
	return "application/json"
}

// FileExtension возвращает расширение файла
func (e *JSONEncoder) FileExtension() string {
	return "json"
}
