// Package export produces XLSX workbooks of verification history.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"slipverify/internal/repository"
)

// Service is a tiny façade over the history repository that produces XLSX bytes.
type Service struct {
	history repository.HistoryRepository
	logger  *slog.Logger
}

func NewService(history repository.HistoryRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{history: history, logger: logger}
}

// VerificationsXLSX returns an XLSX workbook (as bytes) containing the most
// recent verification records, newest first.
func (s *Service) VerificationsXLSX(ctx context.Context, limit int) ([]byte, error) {
	start := time.Now()

	recs, err := s.history.ListVerifications(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("query verifications: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Verifications"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Verified At",
		"Recipient",
		"Status",
		"Amount",
		"Message",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		amount := ""
		if r.Amount != nil {
			amount = *r.Amount
		}
		values := []any{
			r.CreatedAt.UTC().Format(time.RFC3339),
			r.Recipient,
			string(r.Status),
			amount,
			r.Message,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	// drop the default sheet so the workbook opens on Verifications
	if index, _ := f.GetSheetIndex("Sheet1"); index != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("exported verifications", "rows", len(recs), "duration_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}
