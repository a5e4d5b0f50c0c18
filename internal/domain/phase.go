package domain

// Phase represents the current phase of a game session
type Phase string

const (
	PhaseWaiting    Phase = "waiting"    // Waiting for players to join
	PhaseStory      Phase = "story"      // Players reading the scenario and their item
	PhaseSubmit     Phase = "submit"     // Players writing their actions
	PhaseResolution Phase = "resolution" // Showing the combined resolution
	PhaseVote       Phase = "vote"       // Players voting who to leave behind
	PhaseResult     Phase = "result"     // Showing who was eliminated
	PhaseWinner     Phase = "winner"     // One survivor remains
	PhaseDraw       Phase = "draw"       // Nobody survived
	PhaseEnded      Phase = "ended"      // Aborted early (too few players left)
)

// String returns the string representation of the phase
func (p Phase) String() string {
	return string(p)
}

// Terminal reports whether the phase permits no further transitions
func (p Phase) Terminal() bool {
	return p == PhaseWinner || p == PhaseDraw || p == PhaseEnded
}

// CanTransitionTo checks if a transition from current phase to target phase is valid
func (p Phase) CanTransitionTo(target Phase) bool {
	if target == PhaseEnded {
		// Abnormal termination is reachable from any in-game phase
		return !p.Terminal() && p != PhaseWaiting
	}

	validTransitions := map[Phase][]Phase{
		PhaseWaiting:    {PhaseStory},
		PhaseStory:      {PhaseSubmit},
		PhaseSubmit:     {PhaseResolution},
		PhaseResolution: {PhaseVote},
		PhaseVote:       {PhaseResult},
		PhaseResult:     {PhaseStory, PhaseWinner, PhaseDraw},
	}

	allowed, ok := validTransitions[p]
	if !ok {
		return false
	}

	for _, phase := range allowed {
		if phase == target {
			return true
		}
	}
	return false
}
