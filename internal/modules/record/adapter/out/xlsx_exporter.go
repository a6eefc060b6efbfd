package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"healthlog/internal/modules/record/domain"
	recordout "healthlog/internal/modules/record/port/out"
)

const exportSheet = "History"

var exportHeaders = []string{"date", "painLevel", "pillCount", "exerciseDone", "feelsHealthy", "weather", "activityNote", "notes"}

type XLSXExporter struct{}

func NewXLSXExporter() recordout.Exporter {
	return XLSXExporter{}
}

func (XLSXExporter) Export(_ context.Context, path string, records []domain.HealthRecord) (string, error) {
	if path == "" {
		return "", fmt.Errorf("export path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return "", fmt.Errorf("rename sheet: %w", err)
	}
	header := make([]any, len(exportHeaders))
	for i, h := range exportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", err
		}
		row := []any{r.Date.String(), r.PainLevel, r.PillCount, string(r.ExerciseDone), string(r.FeelsHealthy), r.Weather, r.ActivityNote, r.Notes}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return "", fmt.Errorf("write row %d: %w", i+2, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return path, nil
}
