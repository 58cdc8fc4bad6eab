package goals

import (
	"testing"

	"github.com/theirongolddev/goalchaser/internal/model"
	"github.com/theirongolddev/goalchaser/internal/store"
)

func TestPartitionIsExhaustiveAndDisjoint(t *testing.T) {
	all := []model.Goal{
		{ID: "a", Days: 3},
		{ID: "b", Days: 0},
		{ID: "c", Days: 1},
		{ID: "d", Days: 0},
	}

	active := Active(all)
	completed := Completed(all)
	if len(active)+len(completed) != len(all) {
		t.Fatalf("partition sizes %d+%d != %d", len(active), len(completed), len(all))
	}
	if active[0].ID != "a" || active[1].ID != "c" {
		t.Fatalf("active order = %+v", active)
	}
	if completed[0].ID != "b" || completed[1].ID != "d" {
		t.Fatalf("completed order = %+v", completed)
	}

	s := Summarize(all)
	want := model.Summary{Total: 4, Active: 2, Completed: 2, Remaining: 3}
	if s != want {
		t.Fatalf("Summarize = %+v, want %+v", s, want)
	}
}

func TestSummaryRemainingNeverNegative(t *testing.T) {
	all := make([]model.Goal, MaxActive+2)
	for i := range all {
		all[i] = model.Goal{Days: 1}
	}
	if got := Summarize(all).Remaining; got != 0 {
		t.Fatalf("Remaining = %d, want 0", got)
	}
}

func TestViewsReflectLatestState(t *testing.T) {
	s, _ := newTestStore(t, store.NewMemory(), noon)
	id := mustAdd(t, s, "Read", 1)

	if len(s.Active()) != 1 || len(s.Completed()) != 0 {
		t.Fatal("new goal not in active view")
	}
	s.Tap(id)
	if len(s.Active()) != 0 || len(s.Completed()) != 1 {
		t.Fatal("completed goal not moved on the next read")
	}
	if sum := s.Summary(); sum.Completed != 1 || sum.Remaining != MaxActive {
		t.Fatalf("Summary = %+v", sum)
	}
}
