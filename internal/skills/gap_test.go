package skills

import (
	"reflect"
	"testing"
)

func TestGapPartitionsSkillSets(t *testing.T) {
	got := Gap(
		[]string{"python", "git", "flask"},
		[]string{"python", "sql", "flask"},
	)
	if want := []string{"flask", "python"}; !reflect.DeepEqual(got.Matched, want) {
		t.Fatalf("Matched = %v, want %v", got.Matched, want)
	}
	if want := []string{"sql"}; !reflect.DeepEqual(got.Missing, want) {
		t.Fatalf("Missing = %v, want %v", got.Missing, want)
	}
	if want := []string{"git"}; !reflect.DeepEqual(got.Bonus, want) {
		t.Fatalf("Bonus = %v, want %v", got.Bonus, want)
	}
}

func TestGapEmptySides(t *testing.T) {
	got := Gap(nil, []string{"python"})
	if len(got.Matched) != 0 || len(got.Bonus) != 0 {
		t.Fatalf("empty resume should have no matched or bonus: %+v", got)
	}
	if want := []string{"python"}; !reflect.DeepEqual(got.Missing, want) {
		t.Fatalf("Missing = %v, want %v", got.Missing, want)
	}

	got = Gap([]string{"python"}, nil)
	if len(got.Matched) != 0 || len(got.Missing) != 0 {
		t.Fatalf("empty job should have no matched or missing: %+v", got)
	}
	if want := []string{"python"}; !reflect.DeepEqual(got.Bonus, want) {
		t.Fatalf("Bonus = %v, want %v", got.Bonus, want)
	}
}
