// Package scoring computes the seven-factor weighted match score. Every
// factor is a pure piecewise mapping to [0,100]; no factor reads another
// factor's output, and scoring holds no state between calls.
package scoring

import (
	"math"
	"strings"
	"unicode"

	"resume-matcher/internal/sections"
	"resume-matcher/internal/skills"
)

// Weights for the seven factors. They sum to 1.0, which bounds the weighted
// total to [0,100] for any valid factor inputs.
const (
	weightRequiredSkills      = 0.40
	weightSkillRelevance      = 0.25
	weightSkillDepth          = 0.15
	weightExperienceAlignment = 0.10
	weightDomainContext       = 0.05
	weightATSOptimization     = 0.03
	weightSignalNoise         = 0.02
)

// Input carries everything the factor functions need for one analysis.
type Input struct {
	Role            skills.Role
	Level           sections.Level
	ResumeText      string
	Sections        sections.Sections
	ResumeSkills    []string
	JobSkills       []string
	Matched         []string
	Missing         []string
	Bonus           []string
	DomainRelevance float64
}

// Breakdown holds the seven factor scores plus the weighted total.
type Breakdown struct {
	RequiredSkills      float64 `json:"required_skills"`
	SkillRelevance      float64 `json:"skill_relevance"`
	SkillDepth          float64 `json:"skill_depth"`
	ExperienceAlignment float64 `json:"experience_alignment"`
	DomainContext       float64 `json:"domain_context"`
	ATSOptimization     float64 `json:"ats_optimization"`
	SignalNoise         float64 `json:"signal_noise"`
	WeightedTotal       float64 `json:"-"`
}

// Score runs all seven factors and combines them. Factor scores are rounded
// to one decimal, the weighted total to two.
func Score(in Input) Breakdown {
	b := Breakdown{
		RequiredSkills:      round1(clamp(factorRequiredSkills(len(in.Matched), len(in.JobSkills)))),
		SkillRelevance:      round1(clamp(factorSkillRelevance(in.ResumeSkills, in.JobSkills, in.Role))),
		SkillDepth:          round1(clamp(factorSkillDepth(in.Sections, in.Matched))),
		ExperienceAlignment: round1(clamp(factorExperienceAlignment(in.Level, len(in.Missing), len(in.JobSkills)))),
		DomainContext:       round1(clamp(in.DomainRelevance)),
		ATSOptimization:     round1(clamp(factorATSOptimization(in.ResumeText))),
		SignalNoise:         round1(clamp(factorSignalNoise(len(in.Bonus), len(in.Missing)))),
	}
	b.WeightedTotal = round2(b.RequiredSkills*weightRequiredSkills +
		b.SkillRelevance*weightSkillRelevance +
		b.SkillDepth*weightSkillDepth +
		b.ExperienceAlignment*weightExperienceAlignment +
		b.DomainContext*weightDomainContext +
		b.ATSOptimization*weightATSOptimization +
		b.SignalNoise*weightSignalNoise)
	return b
}

// Factor 1: required skill coverage. An empty job skill set scores 100; there
// is nothing to penalize against.
func factorRequiredSkills(matchedCount, jobCount int) float64 {
	if jobCount == 0 {
		return 100
	}
	matchPct := float64(matchedCount) / float64(jobCount) * 100
	switch {
	case matchPct >= 90:
		return 100
	case matchPct >= 80:
		return 90
	case matchPct >= 70:
		return 80
	case matchPct >= 60:
		return 70
	case matchPct >= 50:
		return 60
	case matchPct >= 30:
		return 40
	default:
		return math.Max(0, matchPct*0.5)
	}
}

// Factor 2: skill relevance to the detected role. A matched core skill is
// worth 1, a matched non-core skill 0.5, a miss 0.
func factorSkillRelevance(resumeSkills, jobSkills []string, role skills.Role) float64 {
	if len(jobSkills) == 0 {
		return 50
	}
	resumeSet := make(map[string]struct{}, len(resumeSkills))
	for _, skill := range resumeSkills {
		resumeSet[skill] = struct{}{}
	}

	matchedRelevant := 0.0
	for _, skill := range jobSkills {
		if _, ok := resumeSet[skill]; !ok {
			continue
		}
		if skills.IsCore(skill, role) {
			matchedRelevant += 1
		} else {
			matchedRelevant += 0.5
		}
	}

	relevancePct := matchedRelevant / float64(len(jobSkills)) * 100
	switch {
	case relevancePct >= 90:
		return 100
	case relevancePct >= 70:
		return 85
	case relevancePct >= 50:
		return 70
	case relevancePct >= 30:
		return 50
	default:
		return math.Max(0, relevancePct*0.8)
	}
}

// actionVerbs signal that a skill was used rather than listed.
var actionVerbs = []string{
	"build", "built", "develop", "developed", "implement", "implemented",
	"create", "created", "design", "designed", "deploy", "deployed",
	"manage", "managed", "optimize", "optimized", "architect", "lead",
}

// Factor 3: skill depth. Checks whether each matched skill co-occurs with an
// action verb within a 500-character window of the projects+experience text.
// The window uses first occurrences only; multiple occurrences can give false
// positives or negatives. Kept as-is: the suggestion templates downstream
// assume these score bands.
func factorSkillDepth(s sections.Sections, matched []string) float64 {
	if len(matched) == 0 {
		return 50
	}
	text := strings.ToLower(s.Projects + " " + s.Experience)

	withDepth := 0.0
	for _, skill := range matched {
		withDepth += depthCredit(text, strings.ToLower(skill))
	}

	depthPct := withDepth / float64(len(matched)) * 100
	switch {
	case depthPct >= 80:
		return 100
	case depthPct >= 60:
		return 85
	case depthPct >= 40:
		return 70
	case depthPct >= 20:
		return 50
	default:
		return 30
	}
}

func depthCredit(text, skill string) float64 {
	skillIdx := strings.Index(text, skill)
	for _, verb := range actionVerbs {
		verbIdx := strings.Index(text, verb)
		if verbIdx >= 0 && skillIdx >= 0 && verbIdx < skillIdx+500 {
			return 1
		}
	}
	if skillIdx >= 0 {
		return 0.3
	}
	return 0
}

// Factor 4: experience-level alignment. Thresholds on the missing-skill ratio
// loosen for internships and tighten for mid/senior.
func factorExperienceAlignment(level sections.Level, missingCount, jobCount int) float64 {
	if jobCount == 0 {
		return 100
	}
	missingPct := float64(missingCount) / float64(jobCount) * 100

	switch level {
	case sections.LevelInternship:
		switch {
		case missingPct <= 30:
			return 100
		case missingPct <= 50:
			return 85
		case missingPct <= 70:
			return 70
		default:
			return 50
		}
	case sections.LevelJunior:
		switch {
		case missingPct <= 20:
			return 100
		case missingPct <= 40:
			return 85
		case missingPct <= 60:
			return 70
		default:
			return 50
		}
	default: // mid or senior
		switch {
		case missingPct <= 10:
			return 100
		case missingPct <= 25:
			return 90
		case missingPct <= 40:
			return 75
		default:
			return 50
		}
	}
}

// Factor 6: ATS readability heuristics, an additive point system capped at 100.
func factorATSOptimization(resumeText string) float64 {
	lowered := strings.ToLower(resumeText)

	headers := []string{"skills", "experience", "projects", "education", "technical"}
	sectionsFound := 0
	for _, header := range headers {
		if strings.Contains(lowered, header) {
			sectionsFound++
		}
	}

	score := 0.0
	switch {
	case sectionsFound >= 3:
		score += 30
	case sectionsFound >= 2:
		score += 20
	default:
		score += 10
	}

	head := resumeText
	if len(head) > 100 {
		head = head[:100]
	}
	if strings.Contains(resumeText, "•") || strings.Contains(head, "-") {
		score += 25
	}

	if strings.Contains(lowered, "@") || strings.Contains(lowered, "//") || strings.Contains(lowered, "http") {
		score += 20
	}

	upper := 0
	total := 0
	for _, r := range resumeText {
		total++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	if total == 0 {
		total = 1
	}
	if float64(upper)/float64(total) < 0.3 {
		score += 15
	}

	if score > 100 {
		score = 100
	}
	return score
}

// Factor 7: signal vs noise. Bonus skills only count when nothing required is
// missing.
func factorSignalNoise(bonusCount, missingCount int) float64 {
	switch {
	case missingCount > 0:
		return 50
	case bonusCount == 0:
		return 75
	case bonusCount <= 3:
		return 90
	case bonusCount <= 6:
		return 75
	default:
		return 60
	}
}

func clamp(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
