// Package catalog parses the published wine stop sheet (CSV) into domain
// stops. Rows missing a name or rating are skipped, matching the upstream
// sheet's convention of leaving placeholder rows blank.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/louwian/medoc-marathon/internal/domain"
)

// Sheet column headers as exported from the stop spreadsheet.
const (
	colName   = "wine_stop"
	colKm     = "approx_km"
	colRating = "wine_rating"
	colPrice  = "approx_uk_price_winesearcher"
	colFood   = "food_stop"
)

func ParseFile(path string) ([]domain.Stop, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parse stop sheet: open %q: %w", path, err)
	}
	defer f.Close()

	stops, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse stop sheet: %q: %w", path, err)
	}
	return stops, nil
}

// Parse reads the stop sheet. Column order is taken from the header row, so
// sheet edits that reorder columns stay harmless.
func Parse(r io.Reader) ([]domain.Stop, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := map[string]int{}
	for i, h := range header {
		cols[strings.TrimSpace(strings.ToLower(h))] = i
	}
	for _, required := range []string{colName, colKm, colRating, colPrice} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var stops []domain.Stop
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line+1, err)
		}
		line++

		name := field(record, cols[colName])
		ratingRaw := field(record, cols[colRating])
		if name == "" || ratingRaw == "" {
			continue
		}

		rating, err := domain.ParseRating(ratingRaw)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}

		km, err := strconv.ParseFloat(field(record, cols[colKm]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad %s: %w", line, colKm, err)
		}

		price := 0.0
		if raw := field(record, cols[colPrice]); raw != "" {
			price, err = strconv.ParseFloat(strings.TrimPrefix(raw, "£"), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad %s: %w", line, colPrice, err)
			}
		}

		food := ""
		if i, ok := cols[colFood]; ok {
			food = field(record, i)
		}

		stops = append(stops, domain.Stop{
			Name:     name,
			Km:       km,
			Rating:   rating,
			PriceGBP: price,
			Food:     food,
		})
	}

	return stops, nil
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
