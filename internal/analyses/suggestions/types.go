package suggestions

import "resume-matcher/internal/skills"

// Input is the gap-analysis data the generator works from.
type Input struct {
	Missing         []string
	ResumeSkills    []string
	Bonus           []string
	FinalScore      float64
	MatchedCount    int
	JobSkillCount   int
	Role            skills.Role
	CriticalMissing []string
}

// LearningProject groups missing skills into a concrete project idea.
type LearningProject struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
	Idea     string   `json:"idea"`
}

// Suggestions is the structured explanation returned with every analysis.
type Suggestions struct {
	OverallAssessment   string            `json:"overall_assessment"`
	LearningProjects    []LearningProject `json:"learning_projects"`
	RoleRecommendations []string          `json:"role_recommendations"`
	ResumePositioning   []string          `json:"resume_positioning"`
	Encouragement       string            `json:"encouragement"`
}
