// Package goals owns the goal list: adding, daily taps, removal and the
// derived active/completed views.
package goals

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/theirongolddev/goalchaser/internal/model"
	"github.com/theirongolddev/goalchaser/internal/store"
)

const (
	// MaxActive is how many goals may be active at once.
	MaxActive = 5
	// MaxDays is the largest target the day pickers offer. The store accepts
	// any positive target.
	MaxDays = 31
	// DefaultDays is the target preselected in forms.
	DefaultDays = 7
	// MinPrefix is the shortest ID prefix Resolve matches on.
	MinPrefix = 4
)

// NewGoal is the input to Store.Add.
type NewGoal struct {
	Title string
	Days  int
	Color model.Color
}

// DenyReason says why a tap did nothing.
type DenyReason int

const (
	DenyNone DenyReason = iota
	DenyNotFound
	DenyCompleted
	DenyTappedToday
)

func (r DenyReason) String() string {
	switch r {
	case DenyNotFound:
		return "not found"
	case DenyCompleted:
		return "already completed"
	case DenyTappedToday:
		return "already tapped today"
	default:
		return ""
	}
}

// TapResult reports the outcome of Store.Tap.
type TapResult struct {
	Goal      model.Goal
	Tapped    bool
	Completed bool
	Denied    DenyReason
}

// Store is the ordered goal list. Every mutation is followed by a write of
// the whole list to the KV port.
type Store struct {
	kv  store.KV
	key string
	now func() time.Time
	log *slog.Logger

	mu        sync.Mutex
	goals     []model.Goal
	listeners []func(model.CompletedEvent)
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used for persistence warnings.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// New returns an empty store backed by kv. Call Load to restore saved goals.
func New(kv store.KV, opts ...Option) *Store {
	s := &Store{
		kv:  kv,
		key: store.GoalsKey,
		now: time.Now,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open returns a store with previously saved goals loaded.
func Open(kv store.KV, opts ...Option) *Store {
	s := New(kv, opts...)
	s.Load()
	return s
}

// Load replaces the in-memory list with the persisted one. Missing or
// unreadable data leaves the store empty.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.goals = nil
	data, err := s.kv.Get(s.key)
	if err != nil {
		s.log.Warn("reading goals failed, starting empty", "key", s.key, "err", err)
		return
	}
	if data == nil {
		s.log.Debug("no saved goals", "key", s.key)
		return
	}

	goals, err := store.DecodeGoals(data)
	if err != nil {
		s.log.Warn("decoding goals failed, starting empty", "key", s.key, "err", err)
		return
	}
	s.goals = goals
	s.log.Debug("goals loaded", "count", len(goals))
}

// Save writes the whole list to the KV port.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	data, err := store.EncodeGoals(s.goals)
	if err != nil {
		return err
	}
	return s.kv.Set(s.key, data)
}

// persistLocked is the write that ends every mutation. Failures are logged
// and otherwise ignored; the in-memory list stays authoritative.
func (s *Store) persistLocked() {
	if err := s.saveLocked(); err != nil {
		s.log.Warn("saving goals failed", "key", s.key, "err", err)
	}
}

// OnCompleted registers fn to be called each time a goal reaches zero days.
func (s *Store) OnCompleted(fn func(model.CompletedEvent)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Add appends a new goal and returns its ID.
func (s *Store) Add(in NewGoal) (string, error) {
	title := strings.TrimSpace(in.Title)

	s.mu.Lock()
	defer s.mu.Unlock()

	if countActive(s.goals) >= MaxActive {
		return "", ValidationError{Reason: ErrLimitReached}
	}
	if title == "" {
		return "", ValidationError{Reason: ErrBlankTitle}
	}
	if in.Days < 1 {
		return "", ValidationError{Reason: ErrInvalidDays}
	}

	color := in.Color
	if !color.IsValid() {
		color = model.DefaultColor
	}

	g := model.Goal{
		ID:    uuid.NewString(),
		Title: title,
		Days:  in.Days,
		Color: color,
	}
	s.goals = append(s.goals, g)
	s.persistLocked()
	s.log.Info("goal added", "id", g.ID, "title", g.Title, "days", g.Days)
	return g.ID, nil
}

// Tap records today's progress on the goal. It does nothing when the goal
// is unknown, already completed, or was tapped earlier today.
func (s *Store) Tap(id string) TapResult {
	s.mu.Lock()

	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return TapResult{Denied: DenyNotFound}
	}
	g := &s.goals[i]
	if g.Days <= 0 {
		res := TapResult{Goal: g.Clone(), Denied: DenyCompleted}
		s.mu.Unlock()
		return res
	}
	now := s.now()
	if !CanTap(g.LastTapped, now) {
		res := TapResult{Goal: g.Clone(), Denied: DenyTappedToday}
		s.mu.Unlock()
		return res
	}

	g.Days--
	g.LastTapped = &now
	res := TapResult{Goal: g.Clone(), Tapped: true, Completed: g.Days == 0}
	s.persistLocked()
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	s.log.Info("goal tapped", "id", id, "days_left", res.Goal.Days)
	if res.Completed {
		ev := model.CompletedEvent{ID: res.Goal.ID, Title: res.Goal.Title}
		for _, fn := range listeners {
			fn(ev)
		}
	}
	return res
}

// Remove deletes the goal if present and reports whether it was.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.goals = append(s.goals[:i], s.goals[i+1:]...)
	s.persistLocked()
	s.log.Info("goal removed", "id", id)
	return true
}

// Goals returns a copy of the full list in store order.
func (s *Store) Goals() []model.Goal {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Goal, len(s.goals))
	for i, g := range s.goals {
		out[i] = g.Clone()
	}
	return out
}

// Get returns the goal with the given ID.
func (s *Store) Get(id string) (model.Goal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return model.Goal{}, false
	}
	return s.goals[i].Clone(), true
}

// Active returns the goals with days left, recomputed on every call.
func (s *Store) Active() []model.Goal {
	return Active(s.Goals())
}

// Completed returns the goals with no days left, recomputed on every call.
func (s *Store) Completed() []model.Goal {
	return Completed(s.Goals())
}

// Summary counts the current goals.
func (s *Store) Summary() model.Summary {
	return Summarize(s.Goals())
}

// Now returns the store's current time.
func (s *Store) Now() time.Time {
	return s.now()
}

// Tappable reports whether Tap on id would record progress right now.
func (s *Store) Tappable(id string) bool {
	g, ok := s.Get(id)
	if !ok || g.Days <= 0 {
		return false
	}
	return CanTap(g.LastTapped, s.now())
}

// Resolve finds a goal from user input: a 1-based position in the active
// list, a full ID, or an unambiguous ID prefix of at least MinPrefix
// characters. IDs match case-insensitively.
func (s *Store) Resolve(ref string) (model.Goal, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return model.Goal{}, ErrNotFound
	}
	all := s.Goals()

	if n, err := strconv.Atoi(ref); err == nil {
		active := Active(all)
		if n >= 1 && n <= len(active) {
			return active[n-1], nil
		}
		if len(ref) < MinPrefix {
			return model.Goal{}, ErrNotFound
		}
	}

	var matches []model.Goal
	for _, g := range all {
		if strings.EqualFold(g.ID, ref) {
			return g, nil
		}
		if len(ref) >= MinPrefix && len(ref) <= len(g.ID) && strings.EqualFold(g.ID[:len(ref)], ref) {
			matches = append(matches, g)
		}
	}
	switch len(matches) {
	case 0:
		return model.Goal{}, ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return model.Goal{}, AmbiguousError{Ref: ref, Matches: len(matches)}
	}
}

func (s *Store) indexLocked(id string) int {
	for i := range s.goals {
		if s.goals[i].ID == id {
			return i
		}
	}
	return -1
}

func countActive(goals []model.Goal) int {
	n := 0
	for _, g := range goals {
		if g.Active() {
			n++
		}
	}
	return n
}
