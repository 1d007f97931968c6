package curve

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errShortRecord = errors.New("curve record needs x and y columns")

// ReadCSV parses x,y rows into a curve. A leading header row whose first
// column is not a number is skipped. Extra columns are ignored.
func ReadCSV(r io.Reader) (Curve, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var out Curve
	for record := 1; ; record++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read curve: %w", err)
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("read curve record %d: %w", record, errShortRecord)
		}

		x, errX := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if record == 1 && errX != nil {
			continue
		}
		if errX != nil {
			return nil, fmt.Errorf("read curve record %d x: %w", record, errX)
		}
		if errY != nil {
			return nil, fmt.Errorf("read curve record %d y: %w", record, errY)
		}
		out = append(out, Point{X: x, Y: y})
	}
}

// WriteCSV writes c as x,y rows preceded by a header.
func WriteCSV(w io.Writer, c Curve) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return fmt.Errorf("write curve: %w", err)
	}
	for _, p := range c {
		rec := []string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write curve: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write curve: %w", err)
	}
	return nil
}
