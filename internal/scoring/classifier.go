package scoring

// Classification labels, ordered strongest first.
const (
	ClassStrongMatch     = "Strong Match"
	ClassModerateMatch   = "Moderate Match"
	ClassDevelopingMatch = "Developing Match"
	ClassEarlyStage      = "Early Stage"
)

// Classify maps a final score and the count of critical missing skills to a
// match label. Branches are evaluated top-down; the first hit wins, so a 70
// score with two critical gaps falls through the ≥65-and-≤1-critical branch
// into the plain ≥50 band.
func Classify(finalScore float64, criticalMissing int) string {
	switch {
	case finalScore >= 85:
		return ClassStrongMatch
	case finalScore >= 75 && criticalMissing == 0:
		return ClassStrongMatch
	case finalScore >= 65 && criticalMissing <= 1:
		return ClassModerateMatch
	case finalScore >= 50:
		return ClassModerateMatch
	case finalScore >= 35:
		return ClassDevelopingMatch
	default:
		return ClassEarlyStage
	}
}
