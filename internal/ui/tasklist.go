package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cycleworks/taskcycle/models"
)

// TaskStatus renders the catalog status marker for one task.
func TaskStatus(t models.Task) string {
	switch {
	case t.Completed:
		return StyleCompleted.Render("done")
	case t.Locked:
		return StyleLocked.Render("locked")
	default:
		return StylePrimary.Render("open")
	}
}

// TaskTable renders the task catalog as a terminal table. Recommended
// numeric ids get a marker in the first column.
func TaskTable(tasks []models.Task, recommended []int) string {
	recSet := make(map[int]bool, len(recommended))
	for _, id := range recommended {
		recSet[id] = true
	}

	table := &Table{
		Headers:  []string{"", "#", "ID", "Name", "Type", "Price", "Status"},
		MaxWidth: 36,
	}
	for _, t := range tasks {
		marker := ""
		if recSet[t.NumID] {
			marker = StyleRecommended.Render("★")
		}
		table.Rows = append(table.Rows, []string{
			marker,
			strconv.Itoa(t.NumID),
			TruncateID(t.ID),
			t.Name,
			string(t.Type),
			fmt.Sprintf("$%.2f", t.Price),
			TaskStatus(t),
		})
	}
	return table.Render()
}

// CycleSummary renders a one-line progress summary for the active cycle.
func CycleSummary(cycleNum, completed, total int) string {
	bar := StyleSuccess.Render(strings.Repeat("■", completed)) +
		StyleSubtle.Render(strings.Repeat("□", total-completed))
	return fmt.Sprintf("%s %s %d/%d tasks completed",
		StyleSectionTitle.Render(fmt.Sprintf("Cycle %d", cycleNum)), bar, completed, total)
}
