package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cycleworks/taskcycle/models"
)

func TestTable_ColumnWidths(t *testing.T) {
	table := &Table{
		Headers: []string{"#", "Name", "Status"},
		Rows: [][]string{
			{"1", "Transcribe an audio clip", "open"},
			{"12", "Record a short video", "locked"},
		},
	}

	widths := table.ColumnWidths()

	assert.Equal(t, 2, widths[0])  // "12" is longest in first column
	assert.Equal(t, 24, widths[1]) // "Transcribe an audio clip"
	assert.Equal(t, 6, widths[2])  // "locked" is longest
}

func TestTable_ColumnWidths_MaxWidth(t *testing.T) {
	table := &Table{
		Headers:  []string{"#", "Description"},
		Rows:     [][]string{{"1", "This is a very long description that should be truncated"}},
		MaxWidth: 20,
	}

	widths := table.ColumnWidths()

	assert.Equal(t, 1, widths[0])
	assert.Equal(t, 20, widths[1]) // Capped at MaxWidth
}

func TestTable_Render(t *testing.T) {
	table := &Table{
		Headers: []string{"#", "Name"},
		Rows: [][]string{
			{"1", "Label images"},
			{"2", "Record audio"},
		},
	}

	output := table.Render()

	assert.Contains(t, output, "Name")
	assert.Contains(t, output, "Label images")
	assert.Contains(t, output, "Record audio")
	assert.Contains(t, output, "─")
}

func TestTable_Render_Empty(t *testing.T) {
	table := &Table{}
	assert.Empty(t, table.Render())
}

func TestTable_Render_RowsHaveFewerColumns(t *testing.T) {
	table := &Table{
		Headers: []string{"#", "Name", "Status"},
		Rows: [][]string{
			{"1", "Label images"}, // Missing Status column
		},
	}

	output := table.Render()

	assert.Contains(t, output, "Label images")
	lines := strings.Split(strings.TrimSpace(output), "\n")
	assert.Equal(t, 3, len(lines))
}

func TestTruncateID(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"general-tag-1", "general-tag-1"},
		{"advanced-tag-12", "advanced-tag-"},
		{"short", "short"},
		{"", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, TruncateID(tc.input))
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"abc", 5, "abc  "},
		{"hello", 5, "hello"},
		{"longer", 3, "longer"},
		{"", 3, "   "},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, padRight(tc.input, tc.width))
	}
}

func TestTaskTable(t *testing.T) {
	tasks := []models.Task{
		{ID: "general-tag-1", NumID: 1, Name: "Classify colors", Type: models.TypeImage, Price: 1, Completed: true},
		{ID: "general-tag-2", NumID: 2, Name: "Transcribe audio", Type: models.TypeTranscription, Price: 2.5, Locked: true},
	}

	output := TaskTable(tasks, []int{2})

	assert.Contains(t, output, "Classify colors")
	assert.Contains(t, output, "done")
	assert.Contains(t, output, "locked")
	assert.Contains(t, output, "★")
}

func TestCycleSummary(t *testing.T) {
	out := CycleSummary(1, 3, 7)
	assert.Contains(t, out, "Cycle 1")
	assert.Contains(t, out, "3/7 tasks completed")
}
