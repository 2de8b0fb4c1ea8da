// Package reports renders filtered lists as downloadable CSV, Excel or PDF files.
package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// Supported export formats.
const (
	FormatCSV   = "csv"
	FormatExcel = "xlsx"
	FormatPDF   = "pdf"
)

// Content types per format.
const (
	ContentTypeCSV   = "text/csv"
	ContentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF   = "application/pdf"
)

// Table is a titled grid of text cells. Widths are PDF column widths in mm.
type Table struct {
	Name    string
	Title   string
	Headers []string
	Widths  []float64
	Rows    [][]string
}

// File is a rendered export ready to be sent as an attachment.
type File struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Exporter renders tables into files.
type Exporter interface {
	Export(format string, table Table) (*File, error)
}

type exporter struct {
	now func() time.Time
}

// NewExporter creates an Exporter that stamps file names with the current time.
func NewExporter() Exporter {
	return &exporter{now: time.Now}
}

// Supported reports whether format can be exported.
func Supported(format string) bool {
	switch format {
	case FormatCSV, FormatExcel, FormatPDF:
		return true
	}
	return false
}

func (e *exporter) Export(format string, table Table) (*File, error) {
	filename := fmt.Sprintf("%s_%s.%s", table.Name, e.now().Format("20060102_150405"), format)

	var (
		data        []byte
		contentType string
		err         error
	)
	switch format {
	case FormatCSV:
		data, err = exportCSV(table)
		contentType = ContentTypeCSV
	case FormatExcel:
		data, err = exportExcel(table)
		contentType = ContentTypeExcel
	case FormatPDF:
		data, err = exportPDF(table)
		contentType = ContentTypePDF
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to export %s as %s: %w", table.Name, format, err)
	}

	return &File{Data: data, Filename: filename, ContentType: contentType}, nil
}

func exportCSV(table Table) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(table.Headers); err != nil {
		return nil, err
	}
	if err := writer.WriteAll(table.Rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportExcel(table Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := table.Title
	if len(sheet) > 31 {
		sheet = sheet[:31]
	}
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	write := func(row int, values []string) error {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		return nil
	}

	if err := write(1, table.Headers); err != nil {
		return nil, err
	}
	for i, r := range table.Rows {
		if err := write(i+2, r); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportPDF(table Table) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, tr(table.Title))
	pdf.Ln(10)

	width := func(i int) float64 {
		if i < len(table.Widths) {
			return table.Widths[i]
		}
		return 30
	}

	pdf.SetFont("Arial", "B", 9)
	for i, h := range table.Headers {
		pdf.CellFormat(width(i), 7, tr(h), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, r := range table.Rows {
		for i, v := range r {
			pdf.CellFormat(width(i), 6, tr(v), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
