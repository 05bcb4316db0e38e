package export

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/kaaryaa/identity-engine/internal/extract"
)

// Service renders a batch of extraction records as an XLSX workbook.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// RecordsXLSX returns an XLSX workbook (as bytes) with one row per record.
func (s *Service) RecordsXLSX(records []*extract.Record) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Records"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Document Type",
		"ID Number",
		"Full Name",
		"Gender",
		"Date of Birth",
		"Address",
		"IFSC Code",
		"Bank Name",
		"Employer Name",
		"Assessment Year",
		"Gross Income",
		"Tax Paid",
		"Confidence",
		"Validation Status",
		"Warnings",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range records {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, string(r.DocumentType))
		write(2, r.IDNumber)
		write(3, r.FullName)
		write(4, r.Gender)
		write(5, r.DateOfBirth)
		write(6, r.Address)
		write(7, r.IFSCCode)
		write(8, r.BankName)
		write(9, r.EmployerName)
		write(10, r.AssessmentYear)
		write(11, r.GrossIncome)
		write(12, r.TaxPaid)
		write(13, fmt.Sprintf("%.2f", r.ConfidenceScore))
		write(14, string(r.ValidationStatus))
		write(15, strings.Join(r.Warnings, "; "))

		row++
	}

	// Widen the text-heavy columns
	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "B", "C", 24)
	_ = f.SetColWidth(sheet, "F", "F", 48)
	_ = f.SetColWidth(sheet, "H", "I", 28)
	_ = f.SetColWidth(sheet, "O", "O", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
