package utils

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"equityPaperBot/internal/domain"
)

var csvHeader = []string{"time", "open", "high", "low", "close", "volume"}

// WriteBarsToCSV writes a daily bar series to a CSV file, oldest first.
func WriteBarsToCSV(bars []domain.PriceBar, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write(csvHeader)
	for _, b := range bars {
		writer.Write([]string{
			b.Time.Format(time.RFC3339),
			strconv.FormatFloat(b.Open, 'f', -1, 64),
			strconv.FormatFloat(b.High, 'f', -1, 64),
			strconv.FormatFloat(b.Low, 'f', -1, 64),
			strconv.FormatFloat(b.Close, 'f', -1, 64),
			strconv.FormatFloat(b.Volume, 'f', -1, 64),
		})
	}
	return writer.Error()
}

// ReadBarsFromCSV reads a daily bar series written by WriteBarsToCSV.
func ReadBarsFromCSV(filename string) ([]domain.PriceBar, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	var bars []domain.PriceBar
	for i, rec := range records[1:] { // Skip header
		if len(rec) != len(csvHeader) {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", i+2, len(csvHeader), len(rec))
		}
		t, err := time.Parse(time.RFC3339, rec[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing time '%s': %w", i+2, rec[0], err)
		}
		vals := make([]float64, 5)
		for j := 1; j < len(rec); j++ {
			vals[j-1], err = strconv.ParseFloat(rec[j], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: parsing %s '%s': %w", i+2, csvHeader[j], rec[j], err)
			}
		}
		bars = append(bars, domain.PriceBar{
			Time:   t,
			Open:   vals[0],
			High:   vals[1],
			Low:    vals[2],
			Close:  vals[3],
			Volume: vals[4],
		})
	}
	return bars, nil
}
