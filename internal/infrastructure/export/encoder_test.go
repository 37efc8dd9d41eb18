package export

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dreschagin/scrum-health-dashboard/internal/application/dto"
)

func sampleRows() []*dto.ExportRowDTO {
	return []*dto.ExportRowDTO{
		{
			TeamName:       "Phoenix",
			SprintNumber:   "S01",
			MetricName:     "velocity_sp",
			Value:          "35",
			ActualColor:    "yellow",
			EffectiveColor: "yellow",
		},
		{
			TeamName:        "Phoenix",
			SprintNumber:    "S02",
			MetricName:      "critical_bugs",
			Value:           "9",
			ActualColor:     "red",
			EffectiveColor:  "green",
			Approved:        true,
			ApprovedBy:      "po@example.com",
			ApprovalComment: "infra spike, accepted",
		},
	}
}

func TestCSVEncoder(t *testing.T) {
	data, err := NewCSVEncoder().Encode(sampleRows())
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse generated csv: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}
	if records[0][0] != "team" {
		t.Errorf("header = %v", records[0])
	}
	if records[2][4] != "red" || records[2][5] != "green" {
		t.Errorf("approved row should keep both colors: %v", records[2])
	}
	if records[2][6] != "true" {
		t.Errorf("approved flag = %s", records[2][6])
	}
}

func TestCSVEncoder_EmptyRows(t *testing.T) {
	data, err := NewCSVEncoder().Encode(nil)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse generated csv: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected header only, got %d records", len(records))
	}
}

func TestJSONEncoder(t *testing.T) {
	data, err := NewJSONEncoder().Encode(sampleRows())
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var doc struct {
		RowCount int                 `json:"row_count"`
		Rows     []*dto.ExportRowDTO `json:"rows"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("failed to parse generated json: %v", err)
	}

	if doc.RowCount != 2 || len(doc.Rows) != 2 {
		t.Fatalf("expected 2 rows, got count=%d len=%d", doc.RowCount, len(doc.Rows))
	}
	if doc.Rows[1].ApprovedBy != "po@example.com" {
		t.Errorf("ApprovedBy = %s", doc.Rows[1].ApprovedBy)
	}
}

func TestEncoderMetadata(t *testing.T) {
	csvEnc := NewCSVEncoder()
	if csvEnc.ContentType() != "text/csv" || csvEnc.FileExtension() != "csv" {
		t.Errorf("unexpected csv metadata: %s %s", csvEnc.ContentType(), csvEnc.FileExtension())
	}

	jsonEnc := NewJSONEncoder()
	if jsonEnc.ContentType() != "application/json" || jsonEnc.FileExtension() != "json" {
		t.Errorf("unexpected json metadata: %s %s", jsonEnc.ContentType(), jsonEnc.FileExtension())
	}
}
