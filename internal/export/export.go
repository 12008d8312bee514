// Package export renders travel-time observations as downloadable files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/phrazzld/roadnet-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the records in xlsx exports.
const SheetName = "travel_data"

// Header is the first row of every export, in column order.
var Header = []string{"link_dir", "tx", "length", "mean", "stddev", "confidence", "pct_50"}

// ContentType returns the MIME type of the export format.
func ContentType(ft domain.FileType) string {
	if ft == domain.FileTypeXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// FileName returns the attachment file name for the export format.
func FileName(ft domain.FileType) string {
	return "travel_data." + string(ft)
}

// Write renders records to w in the requested format.
func Write(w io.Writer, ft domain.FileType, records []domain.TravelRecord) error {
	switch ft {
	case domain.FileTypeCSV:
		return writeCSV(w, records)
	case domain.FileTypeXLSX:
		return writeXLSX(w, records)
	default:
		return fmt.Errorf("unsupported file type %q", ft)
	}
}

func writeCSV(w io.Writer, records []domain.TravelRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.LinkDir,
			r.Tx,
			formatFloat(r.Length),
			formatFloat(r.Mean),
			formatFloat(r.Stddev),
			strconv.FormatInt(r.Confidence, 10),
			formatFloat(r.Pct50),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeXLSX(w io.Writer, records []domain.TravelRecord) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close workbook: %w", cerr)
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("name worksheet: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("open stream writer: %w", err)
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("write xlsx header: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{r.LinkDir, r.Tx, r.Length, r.Mean, r.Stddev, r.Confidence, r.Pct50}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("write xlsx row %d: %w", i+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush xlsx rows: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
