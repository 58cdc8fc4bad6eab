// Package rewards holds the celebratory text shown when goals complete and
// the "secret reward" encouragement messages.
package rewards

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"
)

// FallbackMessage is shown when the catalogue is empty.
const FallbackMessage = "You're amazing!"

//go:embed messages.json
var defaultCatalogue []byte

// Catalogue is the set of encouragement messages.
type Catalogue struct {
	Messages []string `json:"messages"`
}

// Default returns the catalogue embedded in the binary.
func Default() Catalogue {
	c, err := Parse(defaultCatalogue)
	if err != nil {
		return Catalogue{}
	}
	return c
}

// Parse decodes a catalogue and drops blank messages.
func Parse(data []byte) (Catalogue, error) {
	var c Catalogue
	if err := json.Unmarshal(data, &c); err != nil {
		return Catalogue{}, fmt.Errorf("parsing reward messages: %w", err)
	}
	kept := c.Messages[:0]
	for _, m := range c.Messages {
		if m = strings.TrimSpace(m); m != "" {
			kept = append(kept, m)
		}
	}
	c.Messages = kept
	return c, nil
}

// Pick returns a random message using rng, or a package-level source if nil.
func (c Catalogue) Pick(rng *rand.Rand) string {
	if len(c.Messages) == 0 {
		return FallbackMessage
	}
	if rng == nil {
		return c.Messages[rand.IntN(len(c.Messages))]
	}
	return c.Messages[rng.IntN(len(c.Messages))]
}

// CompletionMessage is the one-time notification for a finished goal.
func CompletionMessage(title string) (heading, body string) {
	heading = "🎉 Congratulations on Achieving Your Goal! 🎉"
	body = fmt.Sprintf("You successfully completed the goal: %s\nYour effort and persistence are truly impressive.", title)
	return heading, body
}

// SecretRewardHeading titles the secret reward message.
const SecretRewardHeading = "✨ Look at YOU!!! ✨"
