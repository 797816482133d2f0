package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads a tabular word list. The first row is a header naming the
// columns; a "word" column is required, the rest are optional. Rows with an
// empty word are skipped; a malformed difficulty cell falls back to
// DefaultDifficulty rather than failing the load.
func LoadCSV(r io.Reader) ([]WordRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read word list header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := cols["word"]; !ok {
		return nil, fmt.Errorf("word list has no 'word' column")
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []WordRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read word list row: %w", err)
		}
		word := field(row, "word")
		if word == "" {
			continue
		}
		rec := WordRecord{
			Word:       word,
			Difficulty: DefaultDifficulty,
			Definition: field(row, "definition"),
			Origin:     field(row, "origin"),
			Sentence:   field(row, "sentence"),
		}
		if d, err := strconv.Atoi(field(row, "difficulty")); err == nil {
			rec.Difficulty = d
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadCSVFile loads a word list from a file path.
func LoadCSVFile(path string) ([]WordRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadCSV(f)
}
