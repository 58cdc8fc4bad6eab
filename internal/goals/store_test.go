package goals

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/goalchaser/internal/model"
	"github.com/theirongolddev/goalchaser/internal/store"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T, kv store.KV, start time.Time) (*Store, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: start}
	s := Open(kv, WithClock(clock.Now), WithLogger(quietLogger()))
	return s, clock
}

func mustAdd(t *testing.T, s *Store, title string, days int) string {
	t.Helper()
	id, err := s.Add(NewGoal{Title: title, Days: days})
	if err != nil {
		t.Fatalf("Add(%q, %d): %v", title, days, err)
	}
	return id
}

var noon = time.Date(2025, 4, 19, 12, 0, 0, 0, time.Local)

func TestAddAppearsInActive(t *testing.T) {
	s, _ := newTestStore(t, store.NewMemory(), noon)

	for n := 0; n < MaxActive; n++ {
		title := fmt.Sprintf("Goal %d", n)
		id := mustAdd(t, s, title, n+1)

		active := s.Active()
		if len(active) != n+1 {
			t.Fatalf("active len = %d, want %d", len(active), n+1)
		}
		last := active[len(active)-1]
		if last.ID != id || last.Title != title || last.Days != n+1 {
			t.Fatalf("new goal = %+v", last)
		}
		if last.Color != model.DefaultColor {
			t.Fatalf("Color = %q, want default", last.Color)
		}
	}
}

func TestAddTrimsTitleAndKeepsColor(t *testing.T) {
	s, _ := newTestStore(t, store.NewMemory(), noon)

	id, err := s.Add(NewGoal{Title: "  Read  ", Days: 3, Color: model.ColorOrange})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	g, ok := s.Get(id)
	if !ok {
		t.Fatal("goal not found after Add")
	}
	if g.Title != "Read" || g.Color != model.ColorOrange {
		t.Fatalf("goal = %+v", g)
	}
}

func TestAddAcceptsTargetsBeyondPickerRange(t *testing.T) {
	s, _ := newTestStore(t, store.NewMemory(), noon)

	id := mustAdd(t, s, "Read", MaxDays+9)
	if g, _ := s.Get(id); g.Days != MaxDays+9 {
		t.Fatalf("days = %d, want %d", g.Days, MaxDays+9)
	}
}

func TestAddRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   NewGoal
		want error
	}{
		{"empty title", NewGoal{Title: "", Days: 7}, ErrBlankTitle},
		{"whitespace title", NewGoal{Title: " \t\n", Days: 7}, ErrBlankTitle},
		{"zero days", NewGoal{Title: "Read", Days: 0}, ErrInvalidDays},
		{"negative days", NewGoal{Title: "Read", Days: -3}, ErrInvalidDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := store.NewMemory()
			s, _ := newTestStore(t, kv, noon)

			_, err := s.Add(tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Add err = %v, want %v", err, tt.want)
			}
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Add err %T is not a ValidationError", err)
			}
			if len(s.Goals()) != 0 {
				t.Fatalf("store changed after rejected Add: %+v", s.Goals())
			}
			if v, _ := kv.Get(store.GoalsKey); v != nil {
				t.Fatalf("rejected Add persisted %s", v)
			}
		})
	}
}

func TestAddRejectsSixthActiveGoal(t *testing.T) {
	s, _ := newTestStore(t, store.NewMemory(), noon)
	for i := 0; i < MaxActive; i++ {
		mustAdd(t, s, fmt.Sprintf("g%d", i), 3)
	}
	before := s.Goals()

	_, err := s.Add(NewGoal{Title: "one more", Days: 3})
	if !errors.Is(err, ErrLimitReached) {
		t.Fatalf("Add err = %v, want ErrLimitReached", err)
	}
	if got := s.Goals(); len(got) != len(before) {
		t.Fatalf("store has %d goals, want %d", len(got), len(before))
	}
}

func TestAddAllowedAfterGoalCompletes(t *testing.T) {
	s, _ := newTestStore(t, store.NewMemory(), noon)
	first := mustAdd(t, s, "short", 1)
	for i := 1; i < MaxActive; i++ {
		mustAdd(t, s, fmt.Sprintf("g%d", i), 3)
	}

	if res := s.Tap(first); !res.Completed {
		t.Fatalf("Tap = %+v, want completed", res)
	}
	if _, err := s.Add(NewGoal{Title: "replacement", Days: 2}); err != nil {
		t.Fatalf("Add after completion: %v", err)
	}
	if got := len(s.Active()); got != MaxActive {
		t.Fatalf("active = %d, want %d", got, MaxActive)
	}
}

func TestTapSameDayIsNoop(t *testing.T) {
	s, clock := newTestStore(t, store.NewMemory(), noon)
	id := mustAdd(t, s, "Read", 3)

	first := s.Tap(id)
	if !first.Tapped || first.Goal.Days != 2 {
		t.Fatalf("first Tap = %+v", first)
	}

	clock.Advance(3 * time.Hour)
	second := s.Tap(id)
	if second.Tapped || second.Denied != DenyTappedToday {
		t.Fatalf("second Tap = %+v, want denied today", second)
	}
	g, _ := s.Get(id)
	if g.Days != 2 {
		t.Fatalf("Days = %d after same-day tap, want 2", g.Days)
	}
	if !g.LastTapped.Equal(noon) {
		t.Fatalf("LastTapped = %v, want %v", g.LastTapped, noon)
	}
}

func TestTapNextDayDecrementsAndStamps(t *testing.T) {
	lateNight := time.Date(2025, 4, 19, 23, 59, 0, 0, time.Local)
	s, clock := newTestStore(t, store.NewMemory(), lateNight)
	id := mustAdd(t, s, "Read", 5)

	if res := s.Tap(id); !res.Tapped {
		t.Fatalf("first Tap = %+v", res)
	}

	clock.Advance(2 * time.Minute) // 00:01 the next day
	res := s.Tap(id)
	if !res.Tapped {
		t.Fatalf("Tap after midnight = %+v, want tapped", res)
	}
	if res.Goal.Days != 3 {
		t.Fatalf("Days = %d, want 3", res.Goal.Days)
	}
	if !res.Goal.LastTapped.Equal(clock.Now()) {
		t.Fatalf("LastTapped = %v, want %v", res.Goal.LastTapped, clock.Now())
	}
}

func TestListenerMayRegisterListeners(t *testing.T) {
	s, _ := newTestStore(t, store.NewMemory(), noon)
	a := mustAdd(t, s, "A", 1)
	b := mustAdd(t, s, "B", 1)

	var late, outer int
	s.OnCompleted(func(model.CompletedEvent) {
		outer++
		s.OnCompleted(func(model.CompletedEvent) { late++ })
	})

	s.Tap(a)
	if outer != 1 || late != 0 {
		t.Fatalf("after first completion outer=%d late=%d, want 1 0", outer, late)
	}
	s.Tap(b)
	if outer != 2 || late != 1 {
		t.Fatalf("after second completion outer=%d late=%d, want 2 1", outer, late)
	}
}

func TestTapCompletesAndFiresEventOnce(t *testing.T) {
	s, clock := newTestStore(t, store.NewMemory(), noon)
	id := mustAdd(t, s, "Read", 1)

	var events []model.CompletedEvent
	s.OnCompleted(func(ev model.CompletedEvent) { events = append(events, ev) })

	first := s.Tap(id)
	if !first.Tapped || !first.Completed || first.Goal.Days != 0 {
		t.Fatalf("first Tap = %+v", first)
	}
	if len(events) != 1 || events[0].Title != "Read" || events[0].ID != id {
		t.Fatalf("events = %+v", events)
	}
	if len(s.Active()) != 0 {
		t.Fatalf("completed goal still active: %+v", s.Active())
	}
	if c := s.Completed(); len(c) != 1 || c[0].ID != id {
		t.Fatalf("completed = %+v", c)
	}

	second := s.Tap(id)
	if second.Tapped || second.Denied != DenyCompleted {
		t.Fatalf("second Tap = %+v, want denied completed", second)
	}

	// A completed goal stays at zero even once the calendar gate reopens.
	clock.Advance(48 * time.Hour)
	third := s.Tap(id)
	if third.Tapped || third.Goal.Days != 0 {
		t.Fatalf("Tap days later = %+v", third)
	}
	if len(events) != 1 {
		t.Fatalf("event fired %d times, want 1", len(events))
	}
}

func TestTapUnknownID(t *testing.T) {
	s, _ := newTestStore(t, store.NewMemory(), noon)
	if res := s.Tap("missing"); res.Tapped || res.Denied != DenyNotFound {
		t.Fatalf("Tap(missing) = %+v", res)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	s, _ := newTestStore(t, store.NewMemory(), noon)
	keep := mustAdd(t, s, "keep", 3)
	drop := mustAdd(t, s, "drop", 3)

	if !s.Remove(drop) {
		t.Fatal("Remove existing returned false")
	}
	if s.Remove(drop) {
		t.Fatal("second Remove returned true")
	}
	if s.Remove("never-existed") {
		t.Fatal("Remove unknown returned true")
	}
	all := s.Goals()
	if len(all) != 1 || all[0].ID != keep {
		t.Fatalf("goals = %+v", all)
	}
}

func TestRemoveCompletedGoal(t *testing.T) {
	s, _ := newTestStore(t, store.NewMemory(), noon)
	id := mustAdd(t, s, "done soon", 1)
	s.Tap(id)

	if !s.Remove(id) {
		t.Fatal("Remove completed returned false")
	}
	if len(s.Completed()) != 0 {
		t.Fatalf("completed = %+v", s.Completed())
	}
}

func TestMutationsPersistAndReload(t *testing.T) {
	kv := store.NewMemory()
	s, _ := newTestStore(t, kv, noon)
	a := mustAdd(t, s, "A", 2)
	b := mustAdd(t, s, "B", 4)
	s.Tap(a)
	s.Remove(b)

	reloaded, _ := newTestStore(t, kv, noon)
	all := reloaded.Goals()
	if len(all) != 1 {
		t.Fatalf("reloaded %d goals, want 1", len(all))
	}
	if all[0].ID != a || all[0].Days != 1 || all[0].LastTapped == nil {
		t.Fatalf("reloaded goal = %+v", all[0])
	}
	if reloaded.Tappable(a) {
		t.Fatal("goal tapped today is tappable after reload")
	}
}

func TestLoadFallsBackToEmpty(t *testing.T) {
	tests := []struct {
		name string
		kv   store.KV
	}{
		{"missing key", store.NewMemory()},
		{"corrupt blob", func() store.KV {
			m := store.NewMemory()
			_ = m.Set(store.GoalsKey, []byte("{not json"))
			return m
		}()},
		{"read error", failingKV{getErr: errors.New("disk gone")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestStore(t, tt.kv, noon)
			if n := len(s.Goals()); n != 0 {
				t.Fatalf("loaded %d goals, want 0", n)
			}
		})
	}
}

func TestLoadLegacyBlob(t *testing.T) {
	kv := store.NewMemory()
	_ = kv.Set(store.GoalsKey, []byte(`[{"id":"A1","title":"Read","days":4,"isDone":false}]`))

	s, _ := newTestStore(t, kv, noon)
	g, ok := s.Get("A1")
	if !ok {
		t.Fatal("legacy goal not loaded")
	}
	if g.Color != model.DefaultColor || g.LastTapped != nil {
		t.Fatalf("legacy goal = %+v", g)
	}
	if !s.Tappable("A1") {
		t.Fatal("never-tapped legacy goal not tappable")
	}
}

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	kv := failingKV{setErr: errors.New("read-only")}
	s, _ := newTestStore(t, kv, noon)

	id := mustAdd(t, s, "Read", 2)
	if res := s.Tap(id); !res.Tapped {
		t.Fatalf("Tap = %+v", res)
	}
	if err := s.Save(); err == nil {
		t.Fatal("Save returned nil with failing KV")
	}
	g, _ := s.Get(id)
	if g.Days != 1 {
		t.Fatalf("Days = %d, want 1", g.Days)
	}
}

func TestGoalsReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t, store.NewMemory(), noon)
	id := mustAdd(t, s, "Read", 2)
	s.Tap(id)

	snap := s.Goals()
	snap[0].Days = 99
	*snap[0].LastTapped = time.Time{}

	g, _ := s.Get(id)
	if g.Days != 1 || g.LastTapped.IsZero() {
		t.Fatalf("store mutated through snapshot: %+v", g)
	}
}

func TestResolve(t *testing.T) {
	s, _ := newTestStore(t, store.NewMemory(), noon)
	a := mustAdd(t, s, "A", 2)
	b := mustAdd(t, s, "B", 2)

	got, err := s.Resolve("2")
	if err != nil || got.ID != b {
		t.Fatalf("Resolve(2) = %+v, %v", got, err)
	}
	got, err = s.Resolve(strings.ToUpper(a))
	if err != nil || got.ID != a {
		t.Fatalf("Resolve(upper id) = %+v, %v", got, err)
	}
	got, err = s.Resolve(a[:8])
	if err != nil || got.ID != a {
		t.Fatalf("Resolve(prefix) = %+v, %v", got, err)
	}
	if _, err := s.Resolve("zzzz"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Resolve(unknown) err = %v", err)
	}
	if _, err := s.Resolve(""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Resolve(empty) err = %v", err)
	}
}

func TestResolveOutOfRangeIndexIsNotAPrefix(t *testing.T) {
	kv := store.NewMemory()
	_ = kv.Set(store.GoalsKey, []byte(`[
		{"id":"7f00aa","title":"x","days":1},
		{"id":"1234ab","title":"y","days":1}
	]`))
	s, _ := newTestStore(t, kv, noon)

	tests := []struct {
		ref    string
		wantID string
	}{
		{"1", "7f00aa"},
		{"2", "1234ab"},
		{"7", ""},
		{"12", ""},
		{"7f0", ""},
		{"7f00", "7f00aa"},
		{"1234", "1234ab"},
	}
	for _, tt := range tests {
		got, err := s.Resolve(tt.ref)
		if tt.wantID == "" {
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("Resolve(%q) = %+v, %v; want ErrNotFound", tt.ref, got, err)
			}
			continue
		}
		if err != nil || got.ID != tt.wantID {
			t.Errorf("Resolve(%q) = %+v, %v; want %s", tt.ref, got, err, tt.wantID)
		}
	}
}

func TestResolveAmbiguousPrefix(t *testing.T) {
	kv := store.NewMemory()
	_ = kv.Set(store.GoalsKey, []byte(`[
		{"id":"abc-1","title":"x","days":1},
		{"id":"abc-2","title":"y","days":1}
	]`))
	s, _ := newTestStore(t, kv, noon)

	_, err := s.Resolve("abc-")
	var amb AmbiguousError
	if !errors.As(err, &amb) || amb.Matches != 2 {
		t.Fatalf("Resolve(abc-) err = %v", err)
	}
}

type failingKV struct {
	getErr error
	setErr error
}

func (f failingKV) Get(string) ([]byte, error) { return nil, f.getErr }

func (f failingKV) Set(string, []byte) error { return f.setErr }
