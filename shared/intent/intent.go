// Package intent holds the per-tick semantic input set. A Set is a value: it is
// rebuilt every tick by the input mapper and never mutated once handed to the
// simulation.
package intent

import (
	"fmt"
	"strings"
)

// Action is a single semantic intent.
type Action uint8

const (
	MoveLeft Action = iota
	MoveRight
	MoveUp
	MoveDown
	Attack
	ResetLevel
	actionCount // Must be last
)

var actionNames = [actionCount]string{
	MoveLeft:   "MoveLeft",
	MoveRight:  "MoveRight",
	MoveUp:     "MoveUp",
	MoveDown:   "MoveDown",
	Attack:     "Attack",
	ResetLevel: "ResetLevel",
}

func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// ParseAction maps an action name, as printed by String, back to the action.
// Case is ignored.
func ParseAction(name string) (Action, error) {
	for a := Action(0); a < actionCount; a++ {
		if strings.EqualFold(actionNames[a], name) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Set is an immutable bitset of actions. The zero value is the empty set.
type Set uint8

// Of builds a set from the given actions. Repeats collapse.
func Of(actions ...Action) Set {
	var s Set
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

// With returns a copy of s that also contains a.
func (s Set) With(a Action) Set {
	if a >= actionCount {
		return s
	}
	return s | 1<<a
}

// Has reports whether a is in the set.
func (s Set) Has(a Action) bool {
	return a < actionCount && s&(1<<a) != 0
}

func (s Set) Empty() bool {
	return s == 0
}

func (s Set) String() string {
	var names []string
	for a := Action(0); a < actionCount; a++ {
		if s.Has(a) {
			names = append(names, a.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}
