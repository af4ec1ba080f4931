// Package analyses orchestrates the match pipeline: skill extraction,
// sectioning, role detection, gap analysis, seven-factor scoring,
// classification and suggestions.
package analyses

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-matcher/internal/analyses/suggestions"
	"resume-matcher/internal/scoring"
	"resume-matcher/internal/sections"
	"resume-matcher/internal/shared/metrics"
	"resume-matcher/internal/shared/telemetry"
	"resume-matcher/internal/similarity"
	"resume-matcher/internal/skills"
)

// Service runs analyses. It holds no per-request state; the only shared data
// are the package-level read-only vocabulary and threshold tables, so a single
// Service is safe under concurrent handlers.
type Service struct{}

// NewService constructs a Service.
func NewService() *Service {
	return &Service{}
}

// Analyze scores resumeText against jobText and explains the gap. It never
// fails: empty or malformed text flows through the defined neutral defaults.
func (s *Service) Analyze(resumeText, jobText string) Result {
	startedAt := time.Now().UTC()
	metrics.IncMatchStarted()

	resumeSkills := skills.Extract(resumeText)
	jobSkills := skills.Extract(jobText)
	secs := sections.Split(resumeText)

	gap := skills.Gap(resumeSkills, jobSkills)
	role := skills.DetectRole(jobSkills)
	critical := skills.CriticalMissing(gap.Missing, role)
	level := sections.DetectLevel(secs)
	domainScore := sections.DomainRelevance(secs, jobText)

	breakdown := scoring.Score(scoring.Input{
		Role:            role,
		Level:           level,
		ResumeText:      resumeText,
		Sections:        secs,
		ResumeSkills:    resumeSkills,
		JobSkills:       jobSkills,
		Matched:         gap.Matched,
		Missing:         gap.Missing,
		Bonus:           gap.Bonus,
		DomainRelevance: domainScore,
	})
	classification := scoring.Classify(breakdown.WeightedTotal, len(critical))

	result := Result{
		AnalysisID:            uuid.NewString(),
		ResumeSkills:          resumeSkills,
		JobSkills:             jobSkills,
		MatchedSkills:         gap.Matched,
		MissingSkills:         gap.Missing,
		BonusSkills:           gap.Bonus,
		DetectedRole:          string(role),
		ExperienceLevel:       string(level),
		CriticalMissingSkills: critical,
		MatchClassification:   classification,
		SkillMatchPercentage:  percentage(len(gap.Matched), len(jobSkills)),
		BonusPercentage:       percentage(len(gap.Bonus), len(resumeSkills)),
		ScoreBreakdown:        breakdown,
		FinalScore:            breakdown.WeightedTotal,
		TextSimilarity:        similarity.Cosine(strings.Join(resumeSkills, " "), strings.Join(jobSkills, " ")),
		Suggestions: suggestions.Generate(suggestions.Input{
			Missing:         gap.Missing,
			ResumeSkills:    resumeSkills,
			Bonus:           gap.Bonus,
			FinalScore:      breakdown.WeightedTotal,
			MatchedCount:    len(gap.Matched),
			JobSkillCount:   len(jobSkills),
			Role:            role,
			CriticalMissing: critical,
		}),
	}

	completedAt := time.Now().UTC()
	metrics.IncMatchCompleted()
	metrics.ObserveMatchDurationMs(float64(completedAt.Sub(startedAt).Microseconds()) / 1000.0)
	metrics.ObserveMatchScore(result.FinalScore)
	telemetry.Info("analysis.completed", map[string]any{
		"analysis_id":    result.AnalysisID,
		"detected_role":  result.DetectedRole,
		"level":          result.ExperienceLevel,
		"final_score":    result.FinalScore,
		"classification": result.MatchClassification,
		"job_skills":     len(jobSkills),
		"matched":        len(gap.Matched),
		"missing":        len(gap.Missing),
	})

	return result
}

// percentage is 0 when the denominator is zero; division against an empty
// set is never an error here.
func percentage(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
