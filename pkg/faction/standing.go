package faction

// Standing is the player's reputation with each faction, adjusted by
// encounter outcomes. It is separate from the inter-faction Relations table,
// which stays fixed for the whole session.
type Standing struct {
	scores map[Faction]int
}

// NewStanding returns a ledger where every faction starts at zero.
func NewStanding() *Standing {
	return &Standing{scores: make(map[Faction]int)}
}

// Adjust adds delta to the faction's score and returns the new score.
func (s *Standing) Adjust(f Faction, delta int) int {
	s.scores[f] += delta
	return s.scores[f]
}

// Get returns the raw score for f.
func (s *Standing) Get(f Faction) int {
	return s.scores[f]
}

// Level maps the score onto a RelationLevel, saturating at Hostile and Allied.
func (s *Standing) Level(f Faction) RelationLevel {
	return LevelFromModifier(s.Get(f))
}

// Snapshot returns a copy of all non-zero scores.
func (s *Standing) Snapshot() map[Faction]int {
	out := make(map[Faction]int, len(s.scores))
	for f, v := range s.scores {
		if v != 0 {
			out[f] = v
		}
	}
	return out
}
