package impl

import (
	"time"

	"github.com/UnnaturalLog5/ballotbox/election"
	"github.com/UnnaturalLog5/ballotbox/election/impl/attempts"
	"github.com/UnnaturalLog5/ballotbox/election/impl/registry"
	"github.com/UnnaturalLog5/ballotbox/election/impl/tally"
	"github.com/UnnaturalLog5/ballotbox/types"
)

// NewEngine creates a new election engine over the configured registry.
func NewEngine(conf election.Configuration) election.Engine {
	if conf.Registry == nil {
		conf.Registry = registry.New()
	}
	if conf.Clock == nil {
		conf.Clock = election.ClockFunc(time.Now)
	}

	return &engine{
		conf:     conf,
		registry: conf.Registry,
		attempts: attempts.New(conf.MaxAuthAttempts, conf.LockoutDuration, conf.Clock.Now),
	}
}

// engine implements election.Engine
//
// It is the only writer of the registry. Tally and accessors only read it.
type engine struct {
	conf     election.Configuration
	registry election.Registry
	attempts attempts.Limiter
}

// IsEligible implements election.Voting
func (e *engine) IsEligible(name string) bool {
	return e.registry.IsEligible(name)
}

// HasVoted implements election.Voting
func (e *engine) HasVoted(name string) bool {
	return e.registry.HasVoted(name)
}

// Status implements election.Voting
func (e *engine) Status(name string) types.VoterStatus {
	switch {
	case e.registry.IsEligible(name):
		return types.StatusEligible
	case e.registry.HasVoted(name):
		return types.StatusVoted
	default:
		return types.StatusUnregistered
	}
}

// MaxVotes implements election.Results
func (e *engine) MaxVotes() uint {
	return tally.MaxVotes(e.registry.Candidates())
}

// Winners implements election.Results
func (e *engine) Winners() ([]string, uint) {
	return tally.Winners(e.registry.Candidates())
}

// Results implements election.Results
func (e *engine) Results() types.Results {
	return tally.Compute(e.registry.Candidates(), len(e.registry.Ledger()), len(e.registry.Voters()))
}

// AllCandidates implements election.Results
func (e *engine) AllCandidates() []types.Candidate {
	return e.registry.Candidates()
}

// AllVoters implements election.Results
func (e *engine) AllVoters() []types.VoterEntry {
	voters := e.registry.Voters()

	entries := make([]types.VoterEntry, 0, len(voters))
	for _, v := range voters {
		entries = append(entries, types.VoterEntry{
			Name:   v.Name,
			Status: e.Status(v.Name),
		})
	}

	return entries
}

// LedgerEntries implements election.Results
func (e *engine) LedgerEntries() []types.Ballot {
	return e.registry.Ledger()
}

// EligibleRemaining implements election.Results
func (e *engine) EligibleRemaining() []string {
	return e.registry.Eligible()
}
