package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/domain/models"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/metrics"
	"github.com/kanaujiya/SNM-Medical-Staging-Backend/internal/utils"
)

const (
	XLSXContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ExportFilename    = "MasterSearch.xlsx"
	ExportSheetName   = "Master Search Data"
	exportColumnWidth = 25
)

// ExportService renders search records as a spreadsheet.
type ExportService struct {
	RequestID string
}

// Build writes records to a single-sheet workbook. Columns are the keys of the first record in
// order; keys that only appear in later records are not exported. Zero records return
// EmptyResultError instead of a workbook.
func (s ExportService) Build(records []models.Record) ([]byte, error) {
	if len(records) == 0 {
		metrics.Exports.WithLabelValues(metrics.OutcomeEmpty).Inc()
		return nil, domain.EmptyResultError{Resource: "export"}
	}
	buf, err := writeWorkbook(records)
	if err != nil {
		metrics.Exports.WithLabelValues(metrics.OutcomeError).Inc()
		utils.LogFailure(s.RequestID, "export", "build_xlsx", err)
		return nil, domain.InternalError{Msg: "Export failed", Err: err}
	}
	metrics.Exports.WithLabelValues(metrics.OutcomeOK).Inc()
	utils.LogEvent(s.RequestID, "export", "build_xlsx", fmt.Sprintf("rows=%d bytes=%d", len(records), len(buf)))
	return buf, nil
}

func writeWorkbook(records []models.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheetName); err != nil {
		return nil, err
	}
	sw, err := f.NewStreamWriter(ExportSheetName)
	if err != nil {
		return nil, err
	}

	columns := records[0].Keys()
	if err := sw.SetColWidth(1, len(columns), exportColumnWidth); err != nil {
		return nil, err
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, err
	}

	for i, rec := range records {
		row := make([]any, len(columns))
		for j, c := range columns {
			v, _ := rec.Get(c)
			row[j] = cellValue(v)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return nil, err
		}
	}
	if err := sw.Flush(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// cellValue keeps numbers and text as they are and renders dates as text.
func cellValue(v any) any {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		return utils.FormatDateTime(t)
	case []byte:
		return string(t)
	default:
		return t
	}
}
