package sections

import "testing"

func TestDomainRelevanceNeutralWhenJobHasNoSignal(t *testing.T) {
	s := Sections{Other: "docker kubernetes sql"}
	if got := DomainRelevance(s, "we need a friendly person"); got != 50 {
		t.Fatalf("expected neutral 50, got %v", got)
	}
}

func TestDomainRelevanceFullCoverage(t *testing.T) {
	s := Sections{Other: "react rest api backend"}
	got := DomainRelevance(s, "react backend")
	if got != 100 {
		t.Fatalf("resume covering all job keywords should score 100, got %v", got)
	}
}

func TestDomainRelevancePartialCoverage(t *testing.T) {
	s := Sections{Other: "docker"}
	got := DomainRelevance(s, "docker kubernetes")
	if got != 50 {
		t.Fatalf("one of two keywords should score 50, got %v", got)
	}
}

func TestDomainRelevanceCapsAt100(t *testing.T) {
	s := Sections{Other: "docker kubernetes jenkins sql database analytics"}
	got := DomainRelevance(s, "docker")
	if got != 100 {
		t.Fatalf("expected cap at 100, got %v", got)
	}
}

func TestDomainRelevanceKeywordCountsOncePerSide(t *testing.T) {
	s := Sections{Other: "docker docker docker"}
	got := DomainRelevance(s, "docker kubernetes")
	if got != 50 {
		t.Fatalf("repeats must not inflate coverage, got %v", got)
	}
}
