package crew

import "fmt"

// Roster is the ship's crew.
type Roster struct {
	members []*Member
}

// NewRoster returns a roster holding the given members.
func NewRoster(members ...*Member) *Roster {
	return &Roster{members: members}
}

// DefaultRoster returns a roster with only the starting captain.
func DefaultRoster() (*Roster, error) {
	captain, err := NewMemberFromSpec(CaptainSpec())
	if err != nil {
		return nil, fmt.Errorf("failed to build captain: %w", err)
	}
	return NewRoster(captain), nil
}

// Add appends a member.
func (r *Roster) Add(m *Member) {
	r.members = append(r.members, m)
}

// Len returns the number of crew members.
func (r *Roster) Len() int {
	return len(r.members)
}

// Members returns the crew in joining order.
func (r *Roster) Members() []*Member {
	out := make([]*Member, len(r.members))
	copy(out, r.members)
	return out
}

// Names returns the crew names in joining order.
func (r *Roster) Names() []string {
	names := make([]string, len(r.members))
	for i, m := range r.members {
		names[i] = m.Name()
	}
	return names
}

// SkillLevel returns the highest level any member has in skill.
func (r *Roster) SkillLevel(skill string) int {
	if r == nil {
		return 0
	}
	best := 0
	for _, m := range r.members {
		best = max(best, m.Skill(skill))
	}
	return best
}
