package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"thorn/internal/domains/catalog/model/dto"
)

const (
	importColumnCount = 5

	importMinDuration = 5
	importMaxDuration = 480
)

var importHeader = []string{"category", "name", "duration_minutes", "price", "description"}

// SampleCSV is the template offered for download next to the import form.
func SampleCSV() []byte {
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)

	_ = writer.Write(importHeader)
	_ = writer.Write([]string{"Piercings", "Lobe Piercing", "30", "45.00", "Single or pair, jewellery included"})
	_ = writer.Write([]string{"Piercings", "Septum Piercing", "45", "60.00", ""})
	_ = writer.Write([]string{"Consultations", "Jewellery Consultation", "15", "0", "Free sizing and fitting advice"})
	writer.Flush()

	return buf.Bytes()
}

// parseImportCSV reads the uploaded file into rows, collecting per-row
// validation errors instead of failing on the first bad line.
func parseImportCSV(data []byte) ([]dto.ImportRow, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	if len(header) < importColumnCount || !strings.EqualFold(strings.TrimSpace(header[1]), "name") {
		return nil, fmt.Errorf("unexpected CSV header, expected: %s", strings.Join(importHeader, ","))
	}

	rows := []dto.ImportRow{}
	line := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		line++

		if err != nil {
			rows = append(rows, dto.ImportRow{Line: line, Errors: []string{err.Error()}})

			continue
		}

		rows = append(rows, parseImportRecord(line, record))
	}

	return rows, nil
}

func parseImportRecord(line int, record []string) dto.ImportRow {
	row := dto.ImportRow{Line: line}

	if len(record) < importColumnCount {
		row.Errors = append(row.Errors, fmt.Sprintf("expected %d columns, got %d", importColumnCount, len(record)))

		return row
	}

	row.CategoryName = strings.TrimSpace(record[0])
	row.Name = strings.TrimSpace(record[1])
	row.Description = strings.TrimSpace(record[4])

	if row.Name == "" {
		row.Errors = append(row.Errors, "name is required")
	}

	duration, err := strconv.Atoi(strings.TrimSpace(record[2]))

	switch {
	case err != nil:
		row.Errors = append(row.Errors, "duration_minutes must be a whole number")
	case duration < importMinDuration || duration > importMaxDuration:
		row.Errors = append(row.Errors, fmt.Sprintf("duration_minutes must be between %d and %d", importMinDuration, importMaxDuration))
	default:
		row.DurationMinutes = duration
	}

	if priceStr := strings.TrimSpace(record[3]); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)

		switch {
		case err != nil:
			row.Errors = append(row.Errors, "price must be a number")
		case price < 0:
			row.Errors = append(row.Errors, "price cannot be negative")
		default:
			row.Price = price
		}
	}

	return row
}
