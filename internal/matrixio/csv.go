// Package matrixio reads labeled activity matrices and cluster labels
// from CSV files, transparently decompressing gzip inputs.
package matrixio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/pisces-labs/masterreg/internal/matrix"
	"github.com/pisces-labs/masterreg/internal/scoring"
)

// ReadActivityCSV loads a matrix whose header row holds sample
// identifiers and whose first column holds protein identifiers. A .gz
// suffix selects gzip decompression.
func ReadActivityCSV(path string) (*matrix.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var src io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip %s: %w", path, err)
		}
		defer gz.Close()
		src = gz
	}
	return parseActivity(csv.NewReader(src))
}

func parseActivity(r *csv.Reader) (*matrix.Matrix, error) {
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("header needs a label column and at least one sample")
	}
	samples := header[1:]

	var proteins []string
	var values []float64
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(record) != len(samples)+1 {
			return nil, fmt.Errorf("row %q has %d values, want %d", record[0], len(record)-1, len(samples))
		}
		proteins = append(proteins, record[0])
		for _, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %q: %w", record[0], err)
			}
			values = append(values, v)
		}
	}
	if len(proteins) == 0 {
		return nil, fmt.Errorf("matrix has no data rows")
	}
	return matrix.New(proteins, samples, values)
}

// ReadClusterCSV loads sample-to-cluster labels from a two-column CSV
// with a header row.
func ReadClusterCSV(path string) (scoring.Clustering, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	if _, err := r.Read(); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	clustering := make(scoring.Clustering)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("cluster row %v needs sample and label columns", record)
		}
		clustering[record[0]] = record[1]
	}
	return clustering, nil
}
