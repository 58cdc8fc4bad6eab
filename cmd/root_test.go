package cmd

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/goalchaser/internal/goals"
)

func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("GOALCHASER_DB", "")
	t.Setenv("GOALCHASER_LOG_FILE", "")

	oldDB, oldEph, oldQuiet := flagDB, flagEphemeral, flagQuiet
	t.Cleanup(func() { flagDB, flagEphemeral, flagQuiet = oldDB, oldEph, oldQuiet })
	flagQuiet = true
}

func TestSessionPersistsToDatabase(t *testing.T) {
	isolate(t)
	flagDB = filepath.Join(t.TempDir(), "goals.db")

	s, err := openSession(nil)
	if err != nil {
		t.Fatalf("openSession: %v", err)
	}
	if _, err := s.goals.Add(goals.NewGoal{Title: "Read", Days: 3}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	s.close()

	s, err = openSession(nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.close()

	got := s.goals.Goals()
	if len(got) != 1 || got[0].Title != "Read" || got[0].Days != 3 {
		t.Fatalf("reloaded goals = %+v", got)
	}
	if s.cfg.General.DefaultDays != goals.DefaultDays {
		t.Fatalf("default days = %d, want %d", s.cfg.General.DefaultDays, goals.DefaultDays)
	}
}

func TestEphemeralSessionForgets(t *testing.T) {
	isolate(t)
	flagEphemeral = true

	s, err := openSession(nil)
	if err != nil {
		t.Fatalf("openSession: %v", err)
	}
	if _, err := s.goals.Add(goals.NewGoal{Title: "Read", Days: 3}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	s.close()

	s, err = openSession(nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.close()
	if n := len(s.goals.Goals()); n != 0 {
		t.Fatalf("ephemeral session kept %d goals", n)
	}
}

func TestAddRejectsDaysOutsidePicker(t *testing.T) {
	isolate(t)
	flagDB = filepath.Join(t.TempDir(), "goals.db")
	oldDays := flagAddDays
	t.Cleanup(func() { flagAddDays = oldDays })

	for _, days := range []int{-1, goals.MaxDays + 1} {
		flagAddDays = days
		if err := runAdd(addCmd, []string{"Read"}); !errors.Is(err, goals.ErrInvalidDays) {
			t.Fatalf("add -d %d err = %v, want ErrInvalidDays", days, err)
		}
	}

	s, err := openSession(nil)
	if err != nil {
		t.Fatalf("openSession: %v", err)
	}
	defer s.close()
	if n := len(s.goals.Goals()); n != 0 {
		t.Fatalf("rejected adds stored %d goals", n)
	}
}

func TestIndent(t *testing.T) {
	if got := indent("a\nb", "  "); got != "  a\n  b" {
		t.Fatalf("indent = %q", got)
	}
	if indent("", "  ") != "" {
		t.Fatal("indent of empty string should stay empty")
	}
}
