package skills

// Role is a coarse job-category label used to weight relevance and critical
// skill checks.
type Role string

const (
	RoleFrontend  Role = "frontend"
	RoleBackend   Role = "backend"
	RoleFullStack Role = "full-stack"
	RoleML        Role = "ml"
)

// roleSkills associates each role with its full skill list.
var roleSkills = map[Role][]string{
	RoleFrontend:  {"javascript", "react", "html", "css"},
	RoleBackend:   {"python", "java", "flask", "django", "sql", "database", "apis"},
	RoleFullStack: {"javascript", "react", "python", "flask", "sql", "html", "css"},
	RoleML:        {"python", "machine learning", "nlp", "data structures", "algorithms"},
}

// coreSkills is the stricter must-have subset per role.
var coreSkills = map[Role][]string{
	RoleFrontend:  {"javascript", "html", "css"},
	RoleBackend:   {"python", "sql"},
	RoleFullStack: {"javascript", "python", "sql"},
	RoleML:        {"python", "machine learning"},
}

// rolePriority breaks overlap-count ties deterministically. Frontend wins over
// backend, backend over ml.
var rolePriority = []Role{RoleFrontend, RoleBackend, RoleML}

// DetectRole maps a job's skill set to a role archetype by core-skill overlap.
// A job with at least two frontend and two backend overlaps is full-stack, as
// is a job with no overlap at all.
func DetectRole(jobSkills []string) Role {
	jobSet := toSet(jobSkills)

	overlap := func(role Role) int {
		count := 0
		for _, skill := range roleSkills[role] {
			if _, ok := jobSet[skill]; ok {
				count++
			}
		}
		return count
	}

	frontend := overlap(RoleFrontend)
	backend := overlap(RoleBackend)
	if frontend >= 2 && backend >= 2 {
		return RoleFullStack
	}

	best := Role("")
	bestCount := 0
	for _, role := range rolePriority {
		if count := overlap(role); count > bestCount {
			best = role
			bestCount = count
		}
	}
	if bestCount == 0 {
		return RoleFullStack
	}
	return best
}

// CoreSkills returns the role's must-have skill list.
func CoreSkills(role Role) []string {
	return coreSkills[role]
}

// RoleSkills returns the role's full associated skill list.
func RoleSkills(role Role) []string {
	return roleSkills[role]
}

// CriticalMissing filters missing skills down to the role's core list.
func CriticalMissing(missing []string, role Role) []string {
	core := toSet(coreSkills[role])
	out := make([]string, 0, len(missing))
	for _, skill := range missing {
		if _, ok := core[skill]; ok {
			out = append(out, skill)
		}
	}
	return out
}

// IsCore reports whether skill is on the role's core list.
func IsCore(skill string, role Role) bool {
	for _, core := range coreSkills[role] {
		if core == skill {
			return true
		}
	}
	return false
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
