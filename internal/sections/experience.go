package sections

import (
	"regexp"
	"strconv"
	"strings"
)

// Level is the inferred seniority of a resume.
type Level string

const (
	LevelInternship Level = "internship"
	LevelJunior     Level = "junior"
	LevelMid        Level = "mid"
	LevelSenior     Level = "senior"
)

// Keyword groups are tested in strict priority order; the first group with any
// hit wins and groups are never combined. Note the generic "years" keyword in
// the mid group: any years-of-experience phrasing short-circuits to mid before
// the junior group is consulted.
var (
	seniorKeywords     = []string{"senior", "lead", "manager", "architect", "principal"}
	midKeywords        = []string{"mid-level", "intermediate", "years", "6+ years", "5+ years"}
	juniorKeywords     = []string{"junior", "associate", "2 years", "3 years", "recent", "graduate"}
	internshipKeywords = []string{"internship", "intern", "gpa", "coursework", "projects only"}

	yearsPattern = regexp.MustCompile(`(\d+)\+?\s*years`)
)

// DetectLevel infers the experience level from the experience and education
// sections. Defaults to junior when nothing matches.
func DetectLevel(s Sections) Level {
	text := strings.ToLower(s.Experience + " " + s.Education)

	switch {
	case containsAny(text, seniorKeywords):
		return LevelSenior
	case containsAny(text, midKeywords):
		return LevelMid
	case containsAny(text, juniorKeywords):
		return LevelJunior
	case containsAny(text, internshipKeywords):
		return LevelInternship
	}

	if match := yearsPattern.FindStringSubmatch(text); match != nil {
		years, err := strconv.Atoi(match[1])
		if err == nil {
			switch {
			case years >= 7:
				return LevelSenior
			case years >= 4:
				return LevelMid
			case years >= 2:
				return LevelJunior
			}
		}
	}

	return LevelJunior
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
