package analyses

import (
	"testing"
)

func TestAnalyzeStrongBackendMatch(t *testing.T) {
	svc := NewService()
	result := svc.Analyze(
		"Python, SQL, built a Flask REST API",
		"Looking for Python and SQL developer with Flask experience",
	)

	if len(result.MissingSkills) != 0 {
		t.Fatalf("expected no missing skills, got %v", result.MissingSkills)
	}
	if result.DetectedRole != "backend" {
		t.Fatalf("expected backend role, got %q", result.DetectedRole)
	}
	if result.MatchClassification != "Strong Match" {
		t.Fatalf("expected Strong Match, got %q (score %v)", result.MatchClassification, result.FinalScore)
	}
	if result.FinalScore < 75 {
		t.Fatalf("expected final score >= 75, got %v", result.FinalScore)
	}
	if result.SkillMatchPercentage != 100 {
		t.Fatalf("expected 100%% skill match, got %d", result.SkillMatchPercentage)
	}
	if result.AnalysisID == "" {
		t.Fatalf("expected an analysis id")
	}
	if result.TextSimilarity <= 0 {
		t.Fatalf("expected positive text similarity, got %v", result.TextSimilarity)
	}
}

func TestAnalyzeEmptyInputsNeverFail(t *testing.T) {
	svc := NewService()
	result := svc.Analyze("", "")

	if result.DetectedRole != "full-stack" {
		t.Fatalf("no job skills should default to full-stack, got %q", result.DetectedRole)
	}
	if result.ExperienceLevel != "junior" {
		t.Fatalf("empty resume should default to junior, got %q", result.ExperienceLevel)
	}
	if result.SkillMatchPercentage != 0 || result.BonusPercentage != 0 {
		t.Fatalf("percentages over empty sets must be 0: %d, %d", result.SkillMatchPercentage, result.BonusPercentage)
	}
	if result.TextSimilarity != 0 {
		t.Fatalf("empty texts should have zero similarity, got %v", result.TextSimilarity)
	}
	if result.FinalScore < 0 || result.FinalScore > 100 {
		t.Fatalf("final score out of range: %v", result.FinalScore)
	}
}

func TestAnalyzeDeterministicApartFromID(t *testing.T) {
	svc := NewService()
	resume := "Skills: JavaScript, React, HTML, CSS\nProjects: built a dashboard"
	job := "Frontend developer: JavaScript, React, CSS"

	first := svc.Analyze(resume, job)
	second := svc.Analyze(resume, job)

	if first.FinalScore != second.FinalScore {
		t.Fatalf("scores differ: %v vs %v", first.FinalScore, second.FinalScore)
	}
	if first.MatchClassification != second.MatchClassification {
		t.Fatalf("classifications differ: %q vs %q", first.MatchClassification, second.MatchClassification)
	}
	if first.AnalysisID == second.AnalysisID {
		t.Fatalf("analysis ids should be unique per run")
	}
}

func TestPercentageZeroDenominator(t *testing.T) {
	if got := percentage(3, 0); got != 0 {
		t.Fatalf("expected 0 for zero denominator, got %d", got)
	}
	if got := percentage(1, 2); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}
