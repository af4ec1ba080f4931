// Package sections splits resume text into labeled regions and derives
// signals from them: experience level and domain context.
package sections

import (
	"regexp"
	"sort"
	"strings"
)

// Sections maps the fixed section names to contiguous spans of the original
// resume text. Absent sections are empty strings, never missing keys.
type Sections struct {
	Skills     string
	Projects   string
	Experience string
	Education  string
	Other      string
}

// Header detection is first-occurrence of a keyword alternation over the
// lowercased text. A keyword appearing in prose before the real header will
// misplace the split point; that fragility is kept for compatibility and
// isolated here so callers never depend on how the split is found.
var sectionMarkers = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"skills", regexp.MustCompile(`skills|technical skills|languages|technologies|proficiencies`)},
	{"projects", regexp.MustCompile(`projects|portfolio|work samples|applications`)},
	{"experience", regexp.MustCompile(`experience|professional experience|work experience|job history|employment`)},
	{"education", regexp.MustCompile(`education|academic|degree|university|college`)},
}

// Split sections resumeText by header keyword detection. When no header is
// recognized the whole text lands in Other.
func Split(resumeText string) Sections {
	lowered := strings.ToLower(resumeText)

	type found struct {
		name   string
		offset int
	}
	positions := make([]found, 0, len(sectionMarkers))
	for _, marker := range sectionMarkers {
		if loc := marker.pattern.FindStringIndex(lowered); loc != nil {
			positions = append(positions, found{name: marker.name, offset: loc[0]})
		}
	}

	var out Sections
	if len(positions) == 0 {
		out.Other = resumeText
		return out
	}

	sort.Slice(positions, func(i, j int) bool { return positions[i].offset < positions[j].offset })
	for i, pos := range positions {
		end := len(resumeText)
		if i+1 < len(positions) {
			end = positions[i+1].offset
		}
		span := resumeText[pos.offset:end]
		switch pos.name {
		case "skills":
			out.Skills = span
		case "projects":
			out.Projects = span
		case "experience":
			out.Experience = span
		case "education":
			out.Education = span
		}
	}
	return out
}

// Joined returns all section text concatenated, for whole-resume scans.
func (s Sections) Joined() string {
	return s.Skills + " " + s.Projects + " " + s.Experience + " " + s.Education + " " + s.Other
}
