// Package press converts raw button down/up timestamps into classified
// actions based on hold duration.
package press

import (
	"fmt"
	"time"
)

// Class is the hold-duration tier of a completed press.
type Class int

const (
	Short Class = iota
	Long
	VeryLong
)

// String returns the string representation of the class.
func (c Class) String() string {
	switch c {
	case Short:
		return "short"
	case Long:
		return "long"
	case VeryLong:
		return "very-long"
	default:
		return "unknown"
	}
}

// Action is a completed, classified button press.
type Action struct {
	Code  uint16
	Class Class
}

// Classifier tracks unmatched down timestamps per key code and classifies
// presses on release. The switch key has three tiers (short, long,
// very-long); every other key only two (short, long).
type Classifier struct {
	switchCode uint16
	long       time.Duration
	longer     time.Duration
	down       map[uint16]time.Time
}

// New creates a Classifier. The long threshold must be below the very-long one.
func New(switchCode uint16, long, longer time.Duration) (*Classifier, error) {
	if long <= 0 || longer <= long {
		return nil, fmt.Errorf("press: thresholds must satisfy 0 < long (%s) < longer (%s)", long, longer)
	}
	return &Classifier{
		switchCode: switchCode,
		long:       long,
		longer:     longer,
		down:       make(map[uint16]time.Time),
	}, nil
}

// Down records a key-down timestamp. A stale unmatched timestamp for the
// same code is overwritten, which covers a previously missed release.
func (c *Classifier) Down(code uint16, at time.Time) {
	c.down[code] = at
}

// Up matches a key-up against its recorded down and classifies the press.
// A release with no recorded down is reported as unmatched and ignored.
func (c *Classifier) Up(code uint16, at time.Time) (Action, bool) {
	pressed, ok := c.down[code]
	if !ok {
		return Action{}, false
	}
	delete(c.down, code)

	held := at.Sub(pressed)
	return Action{Code: code, Class: c.classify(code, held)}, true
}

func (c *Classifier) classify(code uint16, held time.Duration) Class {
	if code == c.switchCode && held >= c.longer {
		return VeryLong
	}
	if held >= c.long {
		return Long
	}
	return Short
}
