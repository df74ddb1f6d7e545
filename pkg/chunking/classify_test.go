package chunking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		heading string
		want    ChunkType
	}{
		{"Professional Experience", TypeExperience},
		{"WORK HISTORY", TypeExperience},
		{"Employment", TypeExperience},
		{"Education", TypeEducation},
		{"Academic Background", TypeEducation},
		{"Certifications and Training", TypeEducation},
		{"Technical Skills", TypeSkills},
		{"Programming Languages", TypeSkills},
		{"Key Projects", TypeProjects},
		{"Publications", TypeProjects},
		{"Volunteering", TypeProjects},
		{"Contact Details", TypePersonal},
		{"Profile", TypePersonal},
		{"Hobbies", TypeGeneral},
		{"", TypeGeneral},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.heading), "heading %q", tc.heading)
	}
}

func TestClassifyTieBreak(t *testing.T) {
	// "Experience & Education" hits both tables; the experience table is
	// consulted first and wins.
	assert.Equal(t, TypeExperience, Classify("Experience & Education"))
}
