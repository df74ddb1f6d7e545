package chunking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStripsTables(t *testing.T) {
	raw := "Summary\n\n| Col A | Col B |\n|---|---|\n| one | two |\n\nAfter the table"
	got := Normalize(raw)

	assert.NotContains(t, got, "|")
	assert.Contains(t, got, "Summary")
	assert.Contains(t, got, "After the table")
}

func TestNormalizePreservesSinglePipes(t *testing.T) {
	raw := "Acme Corp | 2020-2022\nBuilt things."
	got := Normalize(raw)

	assert.Contains(t, got, "Acme Corp | 2020-2022")
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	raw := "a   b\t\tc   \n\n\n\n\nd"
	got := Normalize(raw)

	assert.Equal(t, "a b c\n\nd", got)
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := "  Heading  \n\n\n\nbody   text  \n| a | b |\n"
	once := Normalize(raw)
	twice := Normalize(once)

	assert.Equal(t, once, twice)
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \n\n\t  "))
}
