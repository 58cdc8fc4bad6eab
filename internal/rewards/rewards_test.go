package rewards

import (
	"math/rand/v2"
	"strings"
	"testing"
)

func TestDefaultCatalogueLoads(t *testing.T) {
	c := Default()
	if len(c.Messages) == 0 {
		t.Fatal("embedded catalogue is empty")
	}
	for i, m := range c.Messages {
		if strings.TrimSpace(m) == "" {
			t.Fatalf("message %d is blank", i)
		}
	}
}

func TestPickIsDeterministicWithSeed(t *testing.T) {
	c := Catalogue{Messages: []string{"a", "b", "c"}}
	first := c.Pick(rand.New(rand.NewPCG(1, 2)))
	second := c.Pick(rand.New(rand.NewPCG(1, 2)))
	if first != second {
		t.Fatalf("same seed picked %q and %q", first, second)
	}
	if !strings.Contains("abc", first) {
		t.Fatalf("Pick = %q, not from catalogue", first)
	}
}

func TestPickFallsBackWhenEmpty(t *testing.T) {
	if got := (Catalogue{}).Pick(nil); got != FallbackMessage {
		t.Fatalf("Pick on empty = %q, want %q", got, FallbackMessage)
	}
}

func TestParseDropsBlankMessages(t *testing.T) {
	c, err := Parse([]byte(`{"messages":["  ", "keep me", ""]}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(c.Messages) != 1 || c.Messages[0] != "keep me" {
		t.Fatalf("Messages = %q", c.Messages)
	}
	if _, err := Parse([]byte("nope")); err == nil {
		t.Fatal("Parse accepted invalid JSON")
	}
}

func TestCompletionMessageMentionsTitle(t *testing.T) {
	heading, body := CompletionMessage("Read")
	if heading == "" {
		t.Fatal("empty heading")
	}
	if !strings.Contains(body, "Read") {
		t.Fatalf("body %q does not mention title", body)
	}
}
