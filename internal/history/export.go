package history

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
)

// Filename is the fixed export target written next to the binary.
const Filename = "serbest-dusme-verileri.csv"

// Header row in the display language of the tool, field order fixed.
var exportHeader = []string{
	"Zaman (s)",
	"Yükseklik (m)",
	"Hız (m/s)",
	"İvme (m/s²)",
	"Yol (m)",
	"Kütle (kg)",
}

// ExportCSV writes the full history as semicolon-delimited UTF-8 text with a
// comma decimal separator. An empty store writes nothing at all.
func (s *Store) ExportCSV(w io.Writer) error {
	if len(s.records) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(exportHeader); err != nil {
		return err
	}

	for _, r := range s.records {
		row := []string{
			decimal(r.Time),
			decimal(r.Height),
			decimal(r.Velocity),
			decimal(r.Acceleration),
			decimal(r.Displacement),
			decimal(r.Mass),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportFile writes the CSV document to path. On an empty store no file is
// created and nil is returned.
func (s *Store) ExportFile(path string) error {
	if len(s.records) == 0 {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return s.ExportCSV(f)
}

func decimal(v float64) string {
	return strings.ReplaceAll(strconv.FormatFloat(v, 'f', 2, 64), ".", ",")
}
