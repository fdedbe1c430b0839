// Package seed loads the hobby catalogue from CSV files.
package seed

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"hobbyexplorer/internal/errors"
	"hobbyexplorer/internal/usecase"
)

const (
	columnName        = "name"
	columnDescription = "description"
	utf8BOM           = "\ufeff"
)

// CSVLoader reads hobbies from a CSV file with a header row.
// Expected columns: name (required), description (optional); others are ignored.
type CSVLoader struct {
	path string
}

// NewCSVLoader creates a loader for the given file
func NewCSVLoader(path string) *CSVLoader {
	return &CSVLoader{path: path}
}

// Path returns the file the loader reads.
func (l *CSVLoader) Path() string {
	return l.path
}

// Load opens the file and parses every row.
func (l *CSVLoader) Load() ([]usecase.CreateHobbyInput, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	return ParseHobbies(file)
}

// ParseHobbies reads hobbies from r. Empty descriptions become nil; a row with
// an empty name fails with its line number.
func ParseHobbies(r io.Reader) ([]usecase.CreateHobbyInput, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("hobbies CSV is empty: header row required")
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	nameIdx, descriptionIdx := columnIndexes(header)
	if nameIdx < 0 {
		return nil, errors.Errorf("hobbies CSV header must contain a %q column", columnName)
	}

	var hobbies []usecase.CreateHobbyInput
	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.WithStack(readErr)
		}
		line, _ := reader.FieldPos(0)

		hobby, parseErr := parseHobby(record, nameIdx, descriptionIdx, line)
		if parseErr != nil {
			return nil, parseErr
		}

		hobbies = append(hobbies, hobby)
	}

	return hobbies, nil
}

func columnIndexes(header []string) (nameIdx, descriptionIdx int) {
	nameIdx, descriptionIdx = -1, -1
	for i, column := range header {
		column = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(column, utf8BOM)))
		switch column {
		case columnName:
			nameIdx = i
		case columnDescription:
			descriptionIdx = i
		}
	}

	return nameIdx, descriptionIdx
}

func parseHobby(record []string, nameIdx, descriptionIdx, line int) (usecase.CreateHobbyInput, error) {
	var name string
	if nameIdx < len(record) {
		name = strings.TrimSpace(record[nameIdx])
	}
	if name == "" {
		return usecase.CreateHobbyInput{}, errors.Errorf("invalid hobbies CSV at line %d: name is required", line)
	}

	hobby := usecase.CreateHobbyInput{Name: name}
	if descriptionIdx >= 0 && descriptionIdx < len(record) {
		if description := strings.TrimSpace(record[descriptionIdx]); description != "" {
			hobby.Description = &description
		}
	}

	return hobby, nil
}
