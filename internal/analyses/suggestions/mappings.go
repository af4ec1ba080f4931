package suggestions

import (
	"fmt"
	"strings"

	"resume-matcher/internal/skills"
)

// Skill buckets for learning-project grouping. A skill not in any bucket
// falls into the foundation group.
var (
	frontendBucket = []string{"javascript", "react", "html", "css", "node"}
	backendBucket  = []string{"python", "java", "flask", "django", "apis"}
	databaseBucket = []string{"sql", "mysql", "database"}
	mlBucket       = []string{"machine learning", "data structures", "algorithms"}
)

var projectIdeas = map[string]string{
	"frontend":   "Build a responsive single-page app with real data and deploy it.",
	"backend":    "Build a REST service with validation, error handling and tests.",
	"full-stack": "Build one end-to-end app: API backend plus a browser frontend, deployed together.",
	"database":   "Design a relational schema for a real dataset and expose reports over it.",
	"ml":         "Train, evaluate and write up a model on a public dataset.",
	"foundation": "Add these to an existing project and document how you used them.",
}

// roleAdvice holds fixed strategic lines per role archetype.
var roleAdvice = map[skills.Role][]string{
	skills.RoleFrontend: {
		"Lead with shipped UI work: link live pages or screenshots, not just repos.",
		"Show comfort with the browser: responsive layout, accessibility, performance.",
	},
	skills.RoleBackend: {
		"Lead with services you built: endpoints, data models, and what ran in production.",
		"Quantify scale or reliability wherever you can, even for side projects.",
	},
	skills.RoleFullStack: {
		"Present one project that spans the stack rather than separate frontend and backend pieces.",
		"Call out which layers you owned end to end.",
	},
	skills.RoleML: {
		"Walk through one modeling project in depth: data, features, evaluation, outcome.",
		"Show the engineering around the model, not just the notebook.",
	},
}

func bucketMissing(missing []string) (frontend, backend, database, ml, rest []string) {
	for _, skill := range missing {
		switch {
		case containsString(frontendBucket, skill):
			frontend = append(frontend, skill)
		case containsString(backendBucket, skill):
			backend = append(backend, skill)
		case containsString(databaseBucket, skill):
			database = append(database, skill)
		case containsString(mlBucket, skill):
			ml = append(ml, skill)
		default:
			rest = append(rest, skill)
		}
	}
	return
}

func buildLearningProjects(missing []string) []LearningProject {
	frontend, backend, database, ml, rest := bucketMissing(missing)

	out := make([]LearningProject, 0, 4)
	if len(frontend) > 0 && len(backend) > 0 {
		// Both sides of the stack are missing: one combined project beats two
		// disconnected ones.
		combined := append(append([]string{}, frontend...), backend...)
		out = append(out, LearningProject{Category: "full-stack", Skills: combined, Idea: projectIdeas["full-stack"]})
	} else if len(frontend) > 0 {
		out = append(out, LearningProject{Category: "frontend", Skills: frontend, Idea: projectIdeas["frontend"]})
	} else if len(backend) > 0 {
		out = append(out, LearningProject{Category: "backend", Skills: backend, Idea: projectIdeas["backend"]})
	}
	if len(database) > 0 {
		out = append(out, LearningProject{Category: "database", Skills: database, Idea: projectIdeas["database"]})
	}
	if len(ml) > 0 {
		out = append(out, LearningProject{Category: "ml", Skills: ml, Idea: projectIdeas["ml"]})
	}
	if len(rest) > 0 {
		out = append(out, LearningProject{Category: "foundation", Skills: rest, Idea: projectIdeas["foundation"]})
	}
	return out
}

func buildRoleRecommendations(role skills.Role, criticalMissing []string) []string {
	out := append([]string{}, roleAdvice[role]...)
	if len(criticalMissing) > 0 {
		out = append(out, fmt.Sprintf(
			"Close the core gaps first for a %s role: %s.",
			role, strings.Join(criticalMissing, ", ")))
	}
	return out
}

func buildPositioning(in Input) []string {
	out := make([]string, 0, 3)
	if in.MatchedCount > 0 {
		out = append(out, fmt.Sprintf(
			"Put your %d matching skills in the first third of the resume, using the job description's own wording.",
			in.MatchedCount))
	} else {
		out = append(out, "Rework the skills section so the job description's terms appear verbatim where you genuinely have them.")
	}
	switch {
	case len(in.Bonus) > 6:
		out = append(out, "Trim the skill list: a long tail of unrelated skills buries the relevant ones.")
	case len(in.Bonus) > 0:
		out = append(out, fmt.Sprintf(
			"Keep the extra skills (%s) but position them after the required ones.",
			strings.Join(in.Bonus, ", ")))
	}
	out = append(out, "Move skills out of lists and into project bullets that start with what you built.")
	return out
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
