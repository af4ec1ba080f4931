package analyses

import (
	"resume-matcher/internal/analyses/suggestions"
	"resume-matcher/internal/scoring"
)

// Result is the full analysis payload returned to the client. Skill slices
// are canonical, deduplicated and sorted.
type Result struct {
	AnalysisID            string                  `json:"analysis_id"`
	ResumeSkills          []string                `json:"resume_skills"`
	JobSkills             []string                `json:"job_skills"`
	MatchedSkills         []string                `json:"matched_skills"`
	MissingSkills         []string                `json:"missing_skills"`
	BonusSkills           []string                `json:"bonus_skills"`
	DetectedRole          string                  `json:"detected_role"`
	ExperienceLevel       string                  `json:"experience_level"`
	CriticalMissingSkills []string                `json:"critical_missing_skills"`
	MatchClassification   string                  `json:"match_classification"`
	SkillMatchPercentage  int                     `json:"skill_match_percentage"`
	BonusPercentage       int                     `json:"bonus_percentage"`
	ScoreBreakdown        scoring.Breakdown       `json:"score_breakdown_7_factor"`
	FinalScore            float64                 `json:"final_score"`
	TextSimilarity        float64                 `json:"text_similarity"`
	Suggestions           suggestions.Suggestions `json:"suggestions"`
}
