package game

import (
	"slices"

	"github.com/jwebster45206/star-drifter/pkg/encounter"
	"github.com/jwebster45206/star-drifter/pkg/navigation"
	"github.com/jwebster45206/star-drifter/pkg/resolution"
)

// Key is a number key, 1 through 9.
type Key int

const (
	MaxChoiceKey = Key(3)
	MaxTravelKey = Key(9)
)

// Input holds the keys pressed since the previous cycle.
type Input struct {
	Pressed []Key
}

// Press returns an Input with the given keys pressed.
func Press(keys ...Key) Input {
	return Input{Pressed: keys}
}

func (in Input) pressed(k Key) bool {
	return slices.Contains(in.Pressed, k)
}

// CycleResult reports what a cycle did.
type CycleResult struct {
	ChoiceAttempted bool
	Outcome         encounter.Outcome // set when a choice resolved
	ChoiceErr       error

	TravelAttempted bool
	Arrival         navigation.Arrival
	TravelErr       error
}

// RunCycle runs one frame: encounter choices first, then navigation, then the
// consumed-key marker is cleared. A key used for a choice is never also read
// as a travel command in the same cycle.
func (s *Session) RunCycle(in Input) CycleResult {
	var res CycleResult

	s.handleChoice(in, &res)
	s.handleNavigation(in, &res)
	s.consumed = s.consumed[:0]

	return res
}

func (s *Session) handleChoice(in Input, res *CycleResult) {
	if s.machine.State() != resolution.Active {
		return
	}
	for k := Key(1); k <= MaxChoiceKey; k++ {
		if !in.pressed(k) {
			continue
		}
		s.consumed = append(s.consumed, k)
		res.ChoiceAttempted = true
		res.Outcome, res.ChoiceErr = s.AttemptChoice(int(k) - 1)
		return
	}
}

func (s *Session) handleNavigation(in Input, res *CycleResult) {
	if s.machine.State() != resolution.Idle {
		return
	}
	for i, target := range s.Destinations() {
		k := Key(i + 1)
		if k > MaxTravelKey {
			return
		}
		if slices.Contains(s.consumed, k) || !in.pressed(k) {
			continue
		}
		res.TravelAttempted = true
		res.Arrival, res.TravelErr = s.AttemptTravel(target)
		return
	}
}
