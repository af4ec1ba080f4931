package skills

import "sort"

// GapResult holds the set differences between resume and job skills.
type GapResult struct {
	Matched []string
	Missing []string
	Bonus   []string
}

// Gap computes matched (intersection), missing (job minus resume) and bonus
// (resume minus job) skill sets. Outputs are sorted for stable responses;
// membership is all that matters to callers.
func Gap(resumeSkills, jobSkills []string) GapResult {
	resumeSet := toSet(resumeSkills)
	jobSet := toSet(jobSkills)

	result := GapResult{
		Matched: make([]string, 0, len(jobSkills)),
		Missing: make([]string, 0, len(jobSkills)),
		Bonus:   make([]string, 0, len(resumeSkills)),
	}
	for skill := range jobSet {
		if _, ok := resumeSet[skill]; ok {
			result.Matched = append(result.Matched, skill)
		} else {
			result.Missing = append(result.Missing, skill)
		}
	}
	for skill := range resumeSet {
		if _, ok := jobSet[skill]; !ok {
			result.Bonus = append(result.Bonus, skill)
		}
	}
	sort.Strings(result.Matched)
	sort.Strings(result.Missing)
	sort.Strings(result.Bonus)
	return result
}
