package sections

import "strings"

// domainKeywords lists the five fixed domains and their indicator terms.
var domainKeywords = map[string][]string{
	"web":    {"frontend", "backend", "react", "nodejs", "express", "api", "rest", "http"},
	"data":   {"data", "sql", "database", "analytics", "visualization", "etl", "pipeline"},
	"ml":     {"machine learning", "neural", "tensorflow", "sklearn", "prediction", "training"},
	"mobile": {"mobile", "ios", "android", "flutter", "react native"},
	"devops": {"docker", "kubernetes", "ci/cd", "jenkins", "deployment", "infrastructure"},
}

// DomainRelevance compares domain keyword coverage between the resume and the
// job description. Each keyword counts once per side regardless of how often
// it appears; counts are summed over all domains, not per-domain best match.
// A job with no domain signal returns a neutral 50.
func DomainRelevance(s Sections, jobText string) float64 {
	resumeText := strings.ToLower(s.Joined())
	jdText := strings.ToLower(jobText)

	resumeMatches := 0
	jdMatches := 0
	for _, keywords := range domainKeywords {
		for _, kw := range keywords {
			if strings.Contains(resumeText, kw) {
				resumeMatches++
			}
			if strings.Contains(jdText, kw) {
				jdMatches++
			}
		}
	}

	if jdMatches == 0 {
		return 50
	}
	relevance := float64(resumeMatches) / float64(jdMatches) * 100
	if relevance > 100 {
		return 100
	}
	return relevance
}
