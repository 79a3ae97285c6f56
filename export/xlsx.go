/*
xlsx.go - Payroll workbook export

PURPOSE:
  Writes computed payslips to an Excel workbook for the accounting team.

SHEETS:
  Payroll:  Employee | Amount | Currency        (one row per employee)
  Details:  Employee | Day | Start | End | Plan | Amount   (one row per worked block)
*/
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/warp/payroll-engine/payroll"
)

const (
	SummarySheet = "Payroll"
	DetailSheet  = "Details"
)

// PayrollWorkbook accumulates payroll sheets before writing them out.
type PayrollWorkbook struct {
	file *excelize.File
}

// NewPayrollWorkbook builds the summary and detail sheets for slips.
func NewPayrollWorkbook(slips []payroll.Payslip, currency string) (*PayrollWorkbook, error) {
	f := excelize.NewFile()
	wb := &PayrollWorkbook{file: f}

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(DetailSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("create sheet %s: %w", DetailSheet, err)
	}

	summary := [][]any{{"Employee", "Amount", "Currency"}}
	details := [][]any{{"Employee", "Day", "Start", "End", "Plan", "Amount"}}
	for _, slip := range slips {
		summary = append(summary, []any{slip.Employee, slip.Total.InexactFloat64(), currency})
		for _, line := range slip.Lines {
			details = append(details, []any{
				slip.Employee,
				line.Worked.Weekday.String(),
				line.Worked.Start.String(),
				line.Worked.End.String(),
				line.Plan.String(),
				line.Amount.InexactFloat64(),
			})
		}
	}

	if err := wb.writeRows(SummarySheet, summary); err != nil {
		f.Close()
		return nil, err
	}
	if err := wb.writeRows(DetailSheet, details); err != nil {
		f.Close()
		return nil, err
	}
	return wb, nil
}

// writeRows writes rows starting at A1; the first row is the bold header.
func (wb *PayrollWorkbook) writeRows(sheet string, rows [][]any) error {
	for r, row := range rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := wb.file.SetCellValue(sheet, cell, val); err != nil {
				return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
			}
		}
	}

	if len(rows) == 0 {
		return nil
	}
	style, err := wb.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(rows[0]), 1)
		_ = wb.file.SetCellStyle(sheet, "A1", endCell, style)
	}
	return nil
}

// Write streams the workbook to w.
func (wb *PayrollWorkbook) Write(w io.Writer) error {
	return wb.file.Write(w)
}

// SaveAs writes the workbook to disk.
func (wb *PayrollWorkbook) SaveAs(path string) error {
	return wb.file.SaveAs(path)
}

// Close releases resources.
func (wb *PayrollWorkbook) Close() error {
	return wb.file.Close()
}

// WritePayroll builds the workbook for slips and writes it to w.
func WritePayroll(w io.Writer, slips []payroll.Payslip, currency string) error {
	wb, err := NewPayrollWorkbook(slips, currency)
	if err != nil {
		return err
	}
	defer wb.Close()
	return wb.Write(w)
}
