package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/drakos74/load-profiles/internal/model"
	"github.com/rs/zerolog/log"
)

// LoadCSV reads a wide csv with one row per consumer.
// The first column holds the consumer id, the rest the measurements.
// The first row is expected to be a header.
func LoadCSV(r io.Reader, name string, freq int) (model.Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	ds := model.Dataset{
		Name:   name,
		Freq:   freq,
		Series: make([]model.Series, 0),
	}

	if _, err := reader.Read(); err != nil {
		return ds, fmt.Errorf("could not read header: %w", err)
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ds, fmt.Errorf("could not read line %d: %w", line, err)
		}
		if len(record) < 2 {
			return ds, fmt.Errorf("line %d has no values: %w", line, model.ErrEmptyDataset)
		}
		values := make([]float64, len(record)-1)
		for i, s := range record[1:] {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return ds, fmt.Errorf("line %d column %d '%s': %w", line, i+2, s, model.ErrInvalidValue)
			}
			values[i] = v
		}
		ds.Series = append(ds.Series, model.Series{
			ID:     record[0],
			Values: values,
		})
	}

	if err := ds.Validate(); err != nil {
		return ds, err
	}
	return ds, nil
}

// LoadFile reads a dataset from the csv file at the given path.
func LoadFile(path string, freq int) (model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("could not open dataset '%s': %w", path, err)
	}
	defer f.Close()
	ds, err := LoadCSV(f, NameOf(path), freq)
	if err != nil {
		return ds, fmt.Errorf("could not load dataset '%s': %w", path, err)
	}
	log.Info().
		Str("path", path).
		Int("series", ds.Len()).
		Int("length", ds.Length()).
		Msg("loaded dataset")
	return ds, nil
}

// NameOf returns the dataset name of the file at the given path.
func NameOf(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// SaveCSV writes the dataset in the format expected by LoadCSV.
func SaveCSV(w io.Writer, ds model.Dataset) error {
	writer := csv.NewWriter(w)

	header := make([]string, ds.Length()+1)
	header[0] = "id"
	for i := 1; i < len(header); i++ {
		header[i] = fmt.Sprintf("t%d", i)
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("could not write header: %w", err)
	}

	for _, s := range ds.Series {
		record := make([]string, len(s.Values)+1)
		record[0] = s.ID
		for i, v := range s.Values {
			record[i+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("could not write series '%s': %w", s.ID, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
