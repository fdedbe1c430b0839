package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hobbyexplorer/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseHobbies(t *testing.T) {
	input := "name,description,type\n" +
		"Chess,Board game of strategy,indoor\n" +
		"Hiking,,outdoor\n" +
		"\"Knitting\",\"Yarn, needles\",craft\n"

	hobbies, err := ParseHobbies(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []usecase.CreateHobbyInput{
		{Name: "Chess", Description: strPtr("Board game of strategy")},
		{Name: "Hiking"},
		{Name: "Knitting", Description: strPtr("Yarn, needles")},
	}, hobbies)
}

func TestParseHobbies_ColumnOrderAndBOM(t *testing.T) {
	input := "\ufefftype, Description ,NAME\noutdoor,Walks,Hiking\n"

	hobbies, err := ParseHobbies(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, hobbies, 1)
	assert.Equal(t, "Hiking", hobbies[0].Name)
	assert.Equal(t, "Walks", *hobbies[0].Description)
}

func TestParseHobbies_NameOnly(t *testing.T) {
	hobbies, err := ParseHobbies(strings.NewReader("name\nChess\nGolf\n"))

	require.NoError(t, err)
	assert.Len(t, hobbies, 2)
	assert.Nil(t, hobbies[1].Description)
}

func TestParseHobbies_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{name: "empty file", input: "", contains: "header row required"},
		{name: "missing name column", input: "title,description\nChess,Game\n", contains: `"name" column`},
		{name: "empty name", input: "name,description\nChess,Game\n  ,Nothing\n", contains: "line 3"},
		{name: "short row", input: "description,name\nOnly description\n", contains: "line 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hobbies, err := ParseHobbies(strings.NewReader(tt.input))

			assert.Nil(t, hobbies)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestCSVLoader_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hobbies.csv")
	require.NoError(t, os.WriteFile(path, []byte("name,description\nChess,Game\n"), 0o600))

	loader := NewCSVLoader(path)
	hobbies, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, path, loader.Path())
	assert.Equal(t, []usecase.CreateHobbyInput{{Name: "Chess", Description: strPtr("Game")}}, hobbies)
}

func TestCSVLoader_LoadMissingFile(t *testing.T) {
	_, err := NewCSVLoader(filepath.Join(t.TempDir(), "missing.csv")).Load()

	assert.ErrorIs(t, err, os.ErrNotExist)
}
