package usecase

import (
	"fmt"
	"time"

	"github.com/gocarina/gocsv"

	"SignalDesk/internal/domain/models"
)

// ExportCSV serializes evaluated signal rows to CSV with a timestamped
// filename.
func ExportCSV(rows []models.SignalRow, now time.Time) (*models.ExportResponse, error) {
	csv, err := gocsv.MarshalString(&rows)
	if err != nil {
		return nil, fmt.Errorf("marshal csv: %w", err)
	}
	return &models.ExportResponse{
		CSV:      csv,
		Filename: fmt.Sprintf("signals_%s.csv", now.Format("20060102_150405")),
	}, nil
}
