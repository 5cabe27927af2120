package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkupHeadings(t *testing.T) {
	out := RenderMarkup("# Top\n## Section\n### Sub", 80)

	assert.Contains(t, out, "TOP")
	assert.Contains(t, out, "Section")
	assert.Contains(t, out, "Sub")
	assert.NotContains(t, out, "#")
}

func TestRenderMarkupBullets(t *testing.T) {
	out := RenderMarkup("* first point\n- second point", 80)

	assert.Contains(t, out, "• first point")
	assert.Contains(t, out, "• second point")
}

func TestRenderMarkupBold(t *testing.T) {
	out := RenderMarkup("this is **vital** advice", 80)

	assert.Contains(t, out, "vital")
	assert.NotContains(t, out, "**")
}

func TestRenderMarkupUnclosedBoldLeftAlone(t *testing.T) {
	out := RenderMarkup("a ** stray marker", 80)

	assert.Contains(t, out, "** stray marker")
}

func TestRenderMarkupTable(t *testing.T) {
	text := strings.Join([]string{
		"| Goal | Objective |",
		"|------|-----------|",
		"| Grow | Run 12 sessions |",
	}, "\n")

	out := RenderMarkup(text, 80)

	assert.Contains(t, out, "Goal")
	assert.Contains(t, out, "Run 12 sessions")
	assert.NotContains(t, out, "|")
	assert.NotContains(t, out, "----")
}

func TestRenderMarkupPlainTextPassesThrough(t *testing.T) {
	out := RenderMarkup("just a sentence", 80)

	assert.Contains(t, out, "just a sentence")
}

func TestRenderMarkupWrapsLongLines(t *testing.T) {
	out := RenderMarkup(strings.Repeat("word ", 30), 40)

	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 40)
	}
}
