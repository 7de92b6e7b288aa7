package filter_test

import (
	"testing"

	"innacri/internal/domain"
	"innacri/internal/filter"
)

func approved(crimeType string, severity int) domain.Alert {
	return domain.Alert{Type: crimeType, Severity: severity, Status: domain.AlertApproved}
}

func TestState_EmptySetsMatchEveryApprovedAlert(t *testing.T) {
	t.Parallel()

	s := filter.New()

	for _, ct := range domain.CrimeTypes {
		for sev := 1; sev <= 5; sev++ {
			if !s.Matches(approved(ct.ID, sev)) {
				t.Fatalf("empty filter must match approved alert type=%s severity=%d", ct.ID, sev)
			}
		}
	}
}

func TestState_NonApprovedNeverMatches(t *testing.T) {
	t.Parallel()

	s := filter.New()

	for _, status := range []domain.AlertStatus{domain.AlertPending, domain.AlertRejected} {
		a := approved("robo", 3)
		a.Status = status
		if s.Matches(a) {
			t.Fatalf("alert with status %q must never match", status)
		}
	}
}

func TestState_TypeSetRestrictsToMembers(t *testing.T) {
	t.Parallel()

	s := filter.New()
	s.SetType("robo", true)
	s.SetType("asalto", true)

	if !s.Matches(approved("robo", 1)) || !s.Matches(approved("asalto", 5)) {
		t.Fatal("members of the type set must match")
	}
	if s.Matches(approved("estafa", 3)) {
		t.Fatal("non-members of the type set must not match")
	}
}

func TestState_SeveritySetRestrictsToMembers(t *testing.T) {
	t.Parallel()

	s := filter.NewWithSelection(nil, []int{4, 5})

	visible := make([]int, 0, 4)
	for _, sev := range []int{1, 3, 4, 5} {
		if s.Matches(approved("robo", sev)) {
			visible = append(visible, sev)
		}
	}

	if len(visible) != 2 || visible[0] != 4 || visible[1] != 5 {
		t.Fatalf("severity filter {4,5} yielded %v, want [4 5]", visible)
	}
}

func TestState_ToggleOffRemovesMember(t *testing.T) {
	t.Parallel()

	s := filter.New()
	s.SetSeverity(2, true)
	s.SetSeverity(2, false)

	// Back to an empty set: match everything again.
	if !s.Matches(approved("robo", 5)) {
		t.Fatal("removing the only member must restore match-all behavior")
	}
}

func TestState_ClearResetsBothSets(t *testing.T) {
	t.Parallel()

	s := filter.NewWithSelection([]string{"robo"}, []int{1})
	s.Clear()

	if !s.Matches(approved("estafa", 4)) {
		t.Fatal("Clear must reset both sets to match-all")
	}
}

func TestState_BothSetsMustMatch(t *testing.T) {
	t.Parallel()

	s := filter.NewWithSelection([]string{"robo"}, []int{4})

	if !s.Matches(approved("robo", 4)) {
		t.Fatal("alert matching both sets must pass")
	}
	if s.Matches(approved("robo", 3)) {
		t.Fatal("alert failing the severity set must not pass")
	}
	if s.Matches(approved("asalto", 4)) {
		t.Fatal("alert failing the type set must not pass")
	}
}
