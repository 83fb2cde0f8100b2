package cohort

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Header of the exported artifact. Column order is part of the public
// contract; the outcome column is intentionally absent.
var csvHeader = []string{"id", "gpa", "gre", "treatment_probability", "treatment"}

// WriteCSV serializes the public schema, one row per unit plus a header.
// Pure projection: no transformation logic lives here.
func (c *Cohort) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, u := range c.Units {
		rec := []string{
			strconv.Itoa(u.ID),
			strconv.FormatFloat(u.GPA, 'f', 2, 64),
			strconv.FormatFloat(u.GRE, 'f', -1, 64),
			strconv.FormatFloat(u.TreatmentProbability, 'f', -1, 64),
			strconv.FormatFloat(u.Treatment, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write unit %d: %w", u.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the artifact atomically: the rows go to a temp file in
// the target directory which is renamed into place only on success, so a
// failed run never leaves a partial artifact.
func (c *Cohort) SaveCSV(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".cohort-*.csv")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := c.WriteCSV(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
