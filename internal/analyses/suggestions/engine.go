// Package suggestions turns a gap analysis and score into grouped, role-aware
// textual recommendations. Everything here is a pure function over fixed
// lookup tables; identical input always yields identical output.
package suggestions

import "fmt"

// Generate builds the structured suggestion object for one analysis.
func Generate(in Input) Suggestions {
	return Suggestions{
		OverallAssessment:   buildAssessment(in),
		LearningProjects:    buildLearningProjects(in.Missing),
		RoleRecommendations: buildRoleRecommendations(in.Role, in.CriticalMissing),
		ResumePositioning:   buildPositioning(in),
		Encouragement:       buildEncouragement(in.FinalScore),
	}
}

func buildAssessment(in Input) string {
	coverage := fmt.Sprintf("%d of %d required skills", in.MatchedCount, in.JobSkillCount)
	switch {
	case in.FinalScore >= 85:
		return fmt.Sprintf("Excellent fit: you cover %s and the resume reads like the role. Apply with confidence.", coverage)
	case in.FinalScore >= 75:
		return fmt.Sprintf("Strong fit: you cover %s. A small amount of targeted polish would make this a standout application.", coverage)
	case in.FinalScore >= 60:
		return fmt.Sprintf("Reasonable fit: you cover %s, but the gaps below are what a reviewer will notice first.", coverage)
	default:
		return fmt.Sprintf("Early fit: you currently cover %s. Treat the projects below as a roadmap before applying.", coverage)
	}
}

func buildEncouragement(finalScore float64) string {
	switch {
	case finalScore >= 75:
		return "You are close. Tighten the details and send it."
	case finalScore >= 60:
		return "A focused week on the gaps above moves you into strong-match territory."
	case finalScore >= 40:
		return "The foundation is there; each project you finish closes a visible gap."
	default:
		return "Everyone starts here. Pick one project from the list and build it this month."
	}
}
