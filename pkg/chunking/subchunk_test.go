package chunking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(maxWords, minWords int) Config {
	return Config{TargetWords: minWords, MaxWords: maxWords, MinWords: minWords, SourceLabel: "test"}
}

func TestSubchunkPassThroughWithinBudget(t *testing.T) {
	section := Section{Heading: "Summary", Body: "short body that fits comfortably inside the budget"}

	fragments := subchunk(section, TypePersonal, testConfig(100, 3))

	require.Len(t, fragments, 1)
	assert.Equal(t, "Summary", fragments[0].Heading)
	assert.Equal(t, "Summary", fragments[0].ParentHeading)
	assert.Equal(t, TypePersonal, fragments[0].ChunkType)
}

func TestSubchunkExperienceSplitsPerJob(t *testing.T) {
	body := "**Company X** | 2020-2022\n" +
		"Built and ran the billing platform, led a team of four engineers, and cut invoice latency in half over two years.\n" +
		"**Company Y** | 2022-2024\n" +
		"Designed the ingestion pipeline for telemetry data and kept it alive through three major traffic spikes without paging anyone."

	section := Section{Heading: "Experience", Body: body}
	fragments := subchunk(section, TypeExperience, testConfig(30, 5))

	require.Len(t, fragments, 2)
	assert.Equal(t, "Company X", fragments[0].Heading)
	assert.Equal(t, "Company Y", fragments[1].Heading)
	assert.Contains(t, fragments[0].Text, "billing platform")
	assert.Contains(t, fragments[1].Text, "ingestion pipeline")
	for _, frag := range fragments {
		assert.Equal(t, TypeExperience, frag.ChunkType)
		assert.Equal(t, "Experience", frag.ParentHeading)
	}
}

func TestSubchunkExperienceSplitsJobsUnderBudget(t *testing.T) {
	// The whole section fits in one chunk, but it still holds two jobs
	// and each must retrieve on its own.
	body := "**Company X** | 2020-2022\n" +
		"Built and ran the billing platform, led a team of four engineers, and cut invoice latency in half over two years.\n" +
		"**Company Y** | 2022-2024\n" +
		"Designed the ingestion pipeline for telemetry data and kept it alive through three major traffic spikes without paging anyone."

	section := Section{Heading: "Experience", Body: body}
	fragments := subchunk(section, TypeExperience, testConfig(150, 15))

	require.Len(t, fragments, 2)
	assert.Equal(t, "Company X", fragments[0].Heading)
	assert.Equal(t, "Company Y", fragments[1].Heading)
}

func TestSubchunkExperienceNoCuesKeepsShortSectionWhole(t *testing.T) {
	body := "Fifteen years of consulting work across finance and healthcare, always on the backend."

	section := Section{Heading: "Experience", Body: body}
	fragments := subchunk(section, TypeExperience, testConfig(150, 5))

	require.Len(t, fragments, 1)
	assert.Equal(t, body, fragments[0].Text)
	assert.Equal(t, "Experience", fragments[0].Heading)
}

func TestSubchunkExperienceFallsBackWithoutBoundaries(t *testing.T) {
	// Prose with no job boundary cues at all: one continuous paragraph.
	body := strings.TrimSpace(strings.Repeat("steady professional output without any structure to anchor on ", 8))

	section := Section{Heading: "Experience", Body: body}
	fragments := subchunk(section, TypeExperience, testConfig(30, 5))

	require.NotEmpty(t, fragments)
	assert.Equal(t, "Experience", fragments[0].Heading)
	for _, frag := range fragments {
		assert.Equal(t, TypeExperience, frag.ChunkType)
	}
}

func TestSubchunkEducationTitles(t *testing.T) {
	body := "**University of Somewhere**\n" +
		"BSc Computer Science, first class honours, graduating after three years of coursework projects and one regrettable group assignment.\n" +
		"**Another University**\n" +
		"MSc Software Engineering with a thesis on distributed consensus that nobody has read since, completed part time over two years."

	section := Section{Heading: "Education", Body: body}
	fragments := subchunk(section, TypeEducation, testConfig(30, 5))

	require.Len(t, fragments, 2)
	assert.Equal(t, "University of Somewhere", fragments[0].Heading)
	assert.Equal(t, "Another University", fragments[1].Heading)
}

func TestSubchunkSkillsRegroupsBullets(t *testing.T) {
	var b strings.Builder
	b.WriteString("Skills overview\n")
	for i := 0; i < 30; i++ {
		b.WriteString("- alpha beta gamma\n")
	}

	section := Section{Heading: "Technical Skills", Body: strings.TrimSpace(b.String())}
	fragments := subchunk(section, TypeSkills, testConfig(50, 5))

	require.True(t, len(fragments) >= 2)
	assert.Equal(t, "Technical Skills", fragments[0].Heading)
	assert.Equal(t, "Technical Skills (Part 2)", fragments[1].Heading)
	for _, frag := range fragments {
		assert.LessOrEqual(t, frag.WordCount, 50)
		assert.Equal(t, TypeSkills, frag.ChunkType)
		assert.True(t, strings.HasPrefix(frag.Text, "• "))
	}
}

func TestExtractEntryTitle(t *testing.T) {
	assert.Equal(t, "Acme Corp", extractEntryTitle("**Acme Corp**\nDid things there.", "Position"))
	assert.Equal(t, "Acme Corp", extractEntryTitle("Acme Corp | 2019-2021\nDid things there.", "Position"))
	assert.Equal(t, "Senior Engineer at Acme", extractEntryTitle("Senior Engineer at Acme\nDid things there.", "Position"))
	assert.Equal(t, "Position", extractEntryTitle(strings.Repeat("word ", 15), "Position"))
}
