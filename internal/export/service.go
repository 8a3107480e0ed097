// Package export serializes the billing register to XLSX workbooks and
// loads previously exported workbooks back into a table.
package export

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/voucherdesk/voucherdesk/constants"
	"github.com/voucherdesk/voucherdesk/internal/common"
	"github.com/voucherdesk/voucherdesk/internal/entity"
	"github.com/voucherdesk/voucherdesk/internal/ledger"
)

// SheetName is the single worksheet every register workbook carries.
const SheetName = "Register"

// Service produces XLSX bytes for a register table and reads them back.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// FileName returns the timestamped workbook name for an export taken at t,
// e.g. Billing_Register_05122025_141503.xlsx.
func FileName(t time.Time) string {
	return "Billing_Register_" + t.Format("02012006_150405") + ".xlsx"
}

// WriteXLSX renders the table as a single-sheet workbook. Amounts are written
// as whole-rupee numbers (rounded, not truncated); the paid flag is a real
// boolean cell so spreadsheet editors round-trip it.
func (s *Service) WriteXLSX(table ledger.Table) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	if index, _ := f.GetSheetIndex(SheetName); index == -1 {
		if _, err := f.NewSheet(SheetName); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(SheetName)
	f.SetActiveSheet(activeIndex)

	for i, h := range constants.LedgerHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(SheetName, cell, h)
	}

	row := 2
	for _, r := range table.Records {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(SheetName, cell, v)
		}

		write(1, r.Date)
		write(2, r.MonthPeriod)
		write(3, r.VoucherNo)
		write(4, r.CostHead)
		write(5, r.PartyName)
		write(6, int64(math.Round(r.Amount)))
		write(7, string(r.EntrySide))
		write(8, r.Paid)
		write(9, r.SourceFile)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(SheetName, "A", "B", 14) // date, month
	_ = f.SetColWidth(SheetName, "C", "D", 12) // voucher, cost head
	_ = f.SetColWidth(SheetName, "E", "E", 28) // party
	_ = f.SetColWidth(SheetName, "F", "F", 14) // amount
	_ = f.SetColWidth(SheetName, "I", "I", 36) // source file

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(table.Records),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// LoadFile reads a previously exported workbook from disk.
func (s *Service) LoadFile(path string) (ledger.Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return ledger.Table{}, fmt.Errorf("open register %s: %w", path, err)
	}
	defer func() { _ = fh.Close() }()
	table, err := s.Load(fh)
	return table, common.WrapError(err, "register "+path)
}

// Load reads a workbook back into a table. The header row must carry every
// register column; a workbook with a different shape is rejected outright
// rather than merged on a guess.
func (s *Service) Load(r io.Reader) (ledger.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return ledger.Table{}, fmt.Errorf("xlsx open: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheet := SheetName
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		// Older exports used the workbook's default sheet.
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return ledger.Table{}, fmt.Errorf("xlsx read rows: %w", err)
	}
	if len(rows) == 0 {
		return ledger.Table{}, common.NewAppError("REGISTER_EMPTY", "workbook has no header row", common.ErrColumnMismatch)
	}

	cols, err := headerColumns(rows[0])
	if err != nil {
		return ledger.Table{}, err
	}

	var table ledger.Table
	for _, row := range rows[1:] {
		cell := func(name string) string {
			i := cols[name]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		amount, err := strconv.ParseFloat(strings.ReplaceAll(cell("Amount"), ",", ""), 64)
		if err != nil {
			amount = 0
		}

		table.Records = append(table.Records, entity.Record{
			Date:        cell("Date"),
			MonthPeriod: cell("Month"),
			VoucherNo:   cell("VR_No"),
			CostHead:    cell("Code_Head"),
			PartyName:   cell("Party_Name"),
			Amount:      amount,
			EntrySide:   constants.EntrySide(cell("Entry_Side")),
			Paid:        strings.EqualFold(cell("Paid"), "true"),
			SourceFile:  cell("File_Name"),
		})
	}

	s.logger.Info("export.xlsx.loaded", "rows", len(table.Records))
	return table, nil
}

// headerColumns maps every register column name to its index in the header
// row, failing loudly when any column is missing.
func headerColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, want := range constants.LedgerHeaders {
		if _, ok := cols[want]; !ok {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return nil, common.NewAppError(
			"REGISTER_COLUMNS",
			fmt.Sprintf("workbook is missing columns %s", strings.Join(missing, ", ")),
			common.ErrColumnMismatch,
		)
	}
	return cols, nil
}
