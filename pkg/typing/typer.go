// Package typing implements the typewriter headline as a resumable state
// machine. A driver calls Tick and waits the returned delay before calling
// it again; the machine itself never touches a clock.
package typing

import (
	"time"
	"unicode/utf8"
)

// DefaultPhrases are cycled when no content file overrides them.
var DefaultPhrases = []string{
	"AI/ML Engineering Student",
	"Data Analytics Intern",
	"Full-Stack Developer",
	"Problem Solver",
	"Tech Enthusiast",
}

// Timing holds the delays between ticks.
type Timing struct {
	Type  time.Duration // per character while typing
	Erase time.Duration // per character while erasing
	Hold  time.Duration // pause on a fully typed phrase
	Next  time.Duration // pause on an empty line before the next phrase
}

// DefaultTiming matches the classic typewriter pacing.
var DefaultTiming = Timing{
	Type:  100 * time.Millisecond,
	Erase: 50 * time.Millisecond,
	Hold:  2 * time.Second,
	Next:  500 * time.Millisecond,
}

// Typer holds the phrase list, the phrase and character indices and the
// deleting flag.
type Typer struct {
	phrases  [][]rune
	timing   Timing
	phrase   int
	chars    int
	deleting bool
}

// New creates a Typer. Empty phrases are dropped; with nothing left the
// Typer renders an empty string forever.
func New(phrases []string, timing Timing) *Typer {
	t := &Typer{timing: timing}
	for _, p := range phrases {
		if utf8.RuneCountInString(p) > 0 {
			t.phrases = append(t.phrases, []rune(p))
		}
	}
	return t
}

// Text returns the currently rendered substring.
func (t *Typer) Text() string {
	if len(t.phrases) == 0 {
		return ""
	}
	return string(t.phrases[t.phrase][:t.chars])
}

// Phrase returns the index of the current phrase.
func (t *Typer) Phrase() int {
	return t.phrase
}

// Deleting reports whether the machine is erasing.
func (t *Typer) Deleting() bool {
	return t.deleting
}

// Reset returns to the start of the current phrase in typing mode.
func (t *Typer) Reset() {
	t.chars = 0
	t.deleting = false
}

// Tick advances one step and returns the rendered text plus the delay
// before the next tick.
//
// Typing lengthens the text by one character per tick; on reaching full
// length the machine holds, then erases one character per tick; on reaching
// empty it advances to the next phrase (wrapping) and types again.
func (t *Typer) Tick() (string, time.Duration) {
	if len(t.phrases) == 0 {
		return "", t.timing.Hold
	}
	full := len(t.phrases[t.phrase])

	if !t.deleting {
		if t.chars < full {
			t.chars++
			if t.chars == full {
				t.deleting = true
				return t.Text(), t.timing.Hold
			}
			return t.Text(), t.timing.Type
		}
		t.deleting = true
	}

	if t.chars > 0 {
		t.chars--
		if t.chars == 0 {
			t.phrase = (t.phrase + 1) % len(t.phrases)
			t.deleting = false
			return t.Text(), t.timing.Next
		}
		return t.Text(), t.timing.Erase
	}

	t.phrase = (t.phrase + 1) % len(t.phrases)
	t.deleting = false
	return t.Text(), t.timing.Next
}
