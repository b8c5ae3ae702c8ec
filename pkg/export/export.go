// Package export serializes revenue-annotated customer rows into the
// download formats offered on the customer list: CSV, JSON, and XLSX.
//
// All three formats share one header and field order, so a row carries
// identical values whichever format the user picks. Customers without
// orders have no revenue at all (not zero): blank in CSV, null in JSON,
// an empty cell in XLSX.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Header is the shared column order of every export format.
var Header = []string{"id", "name", "email", "phone", "billing_address", "total_revenue"}

// Row is one exported customer with their computed lifetime revenue.
type Row struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	BillingAddress string `json:"billing_address"`
	TotalRevenue   Money  `json:"total_revenue"`
}

// Money is a nullable decimal amount. Null renders as blank (CSV, XLSX)
// or JSON null; a value renders with exactly two decimal places.
type Money struct {
	decimal.NullDecimal
}

// NewMoney wraps a nullable decimal for rendering.
func NewMoney(d decimal.NullDecimal) Money {
	return Money{NullDecimal: d}
}

func (m Money) String() string {
	if !m.Valid {
		return ""
	}
	return m.Decimal.StringFixed(2)
}

func (m Money) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	// Unquoted: revenue is a number in the JSON document.
	return []byte(m.Decimal.StringFixed(2)), nil
}

// cell is the XLSX cell value: a float for amounts, nil for missing ones.
func (m Money) cell() interface{} {
	if !m.Valid {
		return nil
	}
	f, _ := m.Decimal.Float64()
	return f
}

// WriteCSV streams rows as CSV with the shared header.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("export: write csv header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			strconv.FormatUint(uint64(row.ID), 10),
			row.Name,
			row.Email,
			row.Phone,
			row.BillingAddress,
			row.TotalRevenue.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export: write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes rows as a pretty-printed JSON array (4-space indent).
func WriteJSON(w io.Writer, rows []Row) error {
	if rows == nil {
		rows = []Row{} // an empty export is [], not null
	}

	data, err := json.MarshalIndent(rows, "", "    ")
	if err != nil {
		return fmt.Errorf("export: marshal json: %w", err)
	}

	_, err = w.Write(data)
	return err
}

// SheetName is the single worksheet of the XLSX export.
const SheetName = "Customers"

// WriteXLSX writes rows as a workbook with one worksheet.
func WriteXLSX(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("export: write xlsx header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("export: cell name: %w", err)
		}
		values := []interface{}{
			row.ID,
			row.Name,
			row.Email,
			row.Phone,
			row.BillingAddress,
			row.TotalRevenue.cell(),
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("export: write xlsx row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export: write xlsx: %w", err)
	}
	return nil
}
