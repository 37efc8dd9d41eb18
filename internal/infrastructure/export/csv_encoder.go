package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/dreschagin/scrum-health-dashboard/internal/application/dto"
)

// CSVEncoder сериализует строки экспорта в CSV.
// Реализует port.ExportEncoder.
type CSVEncoder struct{}

// NewCSVEncoder создает новый CSV encoder
func NewCSVEncoder() *CSVEncoder {
	return &CSVEncoder{}
}

var csvHeader = []string{
	"team", "sprint", "metric", "value",
	"computed_color", "displayed_color",
	"approved", "approved_by", "approval_comment",
}

// Encode сериализует строки экспорта
func (e *CSVEncoder) Encode(rows []*dto.ExportRowDTO) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.TeamName,
			row.SprintNumber,
			row.MetricName,
			row.Value,
			row.ActualColor,
			row.EffectiveColor,
			strconv.FormatBool(row.Approved),
			row.ApprovedBy,
			row.ApprovalComment,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// ContentType возвращает MIME type формата
func (e *CSVEncoder) ContentType() string {
	return "text/csv"
}

// FileExtension возвращает расширение файла
func (e *CSVEncoder) FileExtension() string {
	return "csv"
}
