package export

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planshop/internal/domain"
)

func TestWriteDocument_FullPlan(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteDocument(&b, exportPlan()))
	doc := b.String()

	assert.Contains(t, doc, "Annual Work Plan\n================")
	assert.Contains(t, doc, "Vision\n------\na leading service")
	assert.Contains(t, doc, "Strengths:\n  - experienced staff")
	assert.Contains(t, doc, "Constraints & Risks")
	assert.Contains(t, doc, "budget approval may slip")

	// The table carries the task row and the childless-goal placeholder.
	assert.Contains(t, doc, "audit intake process")
	assert.Contains(t, doc, "expand prevention work")

	// Form feeds paginate the table and constraints sections.
	assert.Equal(t, 2, strings.Count(doc, "\f"))
}

func TestWriteDocument_TableAlignment(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteDocument(&b, exportPlan()))

	lines := strings.Split(b.String(), "\n")
	var header string
	for _, l := range lines {
		if strings.HasPrefix(l, "Goal") {
			header = l
			break
		}
	}
	require.NotEmpty(t, header)
	for _, col := range []string{"Goal", "Objective", "Task", "Responsibility", "Timeline"} {
		assert.Contains(t, header, col)
	}
}

func TestWriteDocument_EmptyPlanOmitsEmptySections(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteDocument(&b, domain.NewPlan()))
	doc := b.String()

	assert.NotContains(t, doc, "SWOT")
	assert.NotContains(t, doc, "Background")
	assert.NotContains(t, doc, "Constraints")
	assert.Contains(t, doc, "Work Plan Table")
}

func TestWriteDocument_TableAlignsNonASCII(t *testing.T) {
	p := domain.NewPlan()
	g := p.AddGoal("שיפור השירות")
	o := p.AddObjective(g.ID, "קיצור זמני המתנה")
	p.AddTask(o.ID, "מיפוי תהליך הקליטה", "", "מנהלת", "Q1")

	var b strings.Builder
	require.NoError(t, WriteDocument(&b, p))

	lines := strings.Split(b.String(), "\n")
	var header, row string
	for i, l := range lines {
		if strings.HasPrefix(l, "Goal") {
			header = l
			row = lines[i+2] // past the rule line
			break
		}
	}
	require.NotEmpty(t, row)

	// Columns line up by rune offset even when cells are Hebrew.
	assert.Equal(t, runeIndex(header, "Objective"), runeIndex(row, "קיצור"))
	assert.Equal(t, runeIndex(header, "Timeline"), runeIndex(row, "Q1"))
}

func runeIndex(s, sub string) int {
	i := strings.Index(s, sub)
	if i < 0 {
		return -1
	}
	return utf8.RuneCountInString(s[:i])
}
