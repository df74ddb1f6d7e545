package chunking

import "strings"

// categoryKeywords maps each semantic category to the heading keywords
// that select it. Order is significant: the first category with a match
// wins, so "Professional Experience" classifies as experience even though
// "professional" could plausibly describe other sections.
var categoryKeywords = []struct {
	category ChunkType
	keywords []string
}{
	{TypeExperience, []string{
		"experience", "work", "career", "employment", "professional",
		"positions", "roles", "history",
	}},
	{TypeEducation, []string{
		"education", "qualifications", "academic", "degree", "university",
		"college", "school", "certification", "training",
	}},
	{TypeSkills, []string{
		"skills", "technical", "expertise", "competencies", "technologies",
		"tools", "languages", "programming",
	}},
	{TypeProjects, []string{
		"projects", "portfolio", "achievements", "publications",
		"presentations", "leadership", "volunteering",
	}},
	{TypePersonal, []string{
		"contact", "personal", "details", "information", "summary", "profile",
	}},
}

// Classify maps a section heading to its semantic category. It is total:
// any heading, including the empty string, classifies to a category, with
// general as the catch-all.
func Classify(heading string) ChunkType {
	lower := strings.ToLower(heading)
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.category
			}
		}
	}
	return TypeGeneral
}
