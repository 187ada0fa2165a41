package types

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeName trims and case-folds a voter or candidate name. Every lookup
// goes through it, otherwise eligibility checks silently fail.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// DisplayName renders a normalized name for humans ("amrit dash" -> "Amrit Dash").
// A Caser keeps state, so each call gets its own.
func DisplayName(name string) string {
	return cases.Title(language.English).String(name)
}

// String implements fmt.Stringer. The credential is never printed.
func (v Voter) String() string {
	return fmt.Sprintf("voter(%s)", v.Name)
}

// String implements fmt.Stringer.
func (c Candidate) String() string {
	return fmt.Sprintf("%s: %d votes", DisplayName(c.Name), c.Votes)
}

// String implements fmt.Stringer.
func (b Ballot) String() string {
	return fmt.Sprintf("%s voted for %s", DisplayName(b.Voter), DisplayName(b.Candidate))
}

// String implements fmt.Stringer.
func (s VoterStatus) String() string {
	switch s {
	case StatusEligible:
		return "eligible"
	case StatusVoted:
		return "voted"
	default:
		return "unregistered"
	}
}

// MarshalYAML implements yaml.Marshaler so snapshots carry readable states.
func (s VoterStatus) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// NoVotes tells whether the ledger is empty. In that case Winners must not be
// presented as a real result.
func (r Results) NoVotes() bool {
	return r.BallotsCast == 0
}

// IsTie tells whether more than one candidate shares the highest count.
func (r Results) IsTie() bool {
	return len(r.Winners) > 1
}

// Participation returns the share of registered voters who voted, in percent.
func (r Results) Participation() float64 {
	if r.Voters == 0 {
		return 0
	}
	return float64(r.BallotsCast) / float64(r.Voters) * 100
}

// IsWinner tells whether the candidate is among the winners.
func (r Results) IsWinner(name string) bool {
	for _, w := range r.Winners {
		if w == name {
			return true
		}
	}
	return false
}
