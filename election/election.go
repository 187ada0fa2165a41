package election

import (
	"time"

	"github.com/UnnaturalLog5/ballotbox/types"
)

// Engine is the single-election voting coordinator.
type Engine interface {
	Voting
	Administration
	Results
}

// Voting is the voting protocol: eligibility, authentication and casting.
type Voting interface {
	IsEligible(name string) bool

	HasVoted(name string) bool

	Status(name string) types.VoterStatus

	// Authenticate checks the credential of an eligible voter. It never
	// mutates the registry.
	Authenticate(name, credential string) error

	// CastVote authenticates the voter, validates the candidate and, if
	// confirmed, records the ballot in one step.
	CastVote(voter, credential, candidate string, confirmed bool) (types.Receipt, error)

	// RunSession drives the voting loop until no eligible voter is left or
	// the driver confirms an early end.
	RunSession(driver SessionDriver) (types.SessionSummary, error)
}

// Administration holds the mutations that are gated behind the admin
// credential in the shell.
type Administration interface {
	RegisterVoter(name, credential string) (types.Voter, error)

	// RemoveVoter needs confirmed=true if the voter already voted.
	RemoveVoter(name string, confirmed bool) (types.Removal, error)

	RegisterCandidate(name string) (types.Candidate, error)

	// RemoveCandidate needs confirmed=true if the candidate has votes.
	RemoveCandidate(name string, confirmed bool) (types.Removal, error)

	// Reset clears every voter, candidate and ballot.
	Reset() error
}

// Results are the read-only views used by the tally and the report.
type Results interface {
	MaxVotes() uint

	// Winners returns every candidate with the highest count, in
	// registration order, and that count.
	Winners() ([]string, uint)

	Results() types.Results

	AllCandidates() []types.Candidate

	AllVoters() []types.VoterEntry

	LedgerEntries() []types.Ballot

	EligibleRemaining() []string
}

// Registry owns the credential directory, the eligible set, the candidates
// and the ledger. Names passed in are normalized by the registry.
type Registry interface {
	RegisterVoter(name, credential string) (types.Voter, error)
	RemoveVoter(name string, confirmed bool) (types.Removal, error)
	RegisterCandidate(name string) (types.Candidate, error)
	RemoveCandidate(name string, confirmed bool) (types.Removal, error)

	// RecordBallot increments the candidate count, appends the ballot to the
	// ledger and removes the voter from the eligible set, all at once.
	RecordBallot(ballot types.Ballot) (remaining int, err error)

	// Voter returns the directory entry, false if not found
	Voter(name string) (types.Voter, bool)
	Candidate(name string) (types.Candidate, bool)

	IsEligible(name string) bool
	HasVoted(name string) bool

	Voters() []types.Voter
	Candidates() []types.Candidate
	Ledger() []types.Ballot
	Eligible() []string

	Reset()
}

// Clock gives the current time
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to a Clock
type ClockFunc func() time.Time

// Now implements Clock
func (f ClockFunc) Now() time.Time {
	return f()
}

// Authorizer is the admin capability check run before every gated
// mutation.
type Authorizer interface {
	Authorize() error
}

// AuthorizerFunc adapts a function to an Authorizer
type AuthorizerFunc func() error

// Authorize implements Authorizer
func (f AuthorizerFunc) Authorize() error {
	return f()
}

// Configuration is given to NewEngine.
type Configuration struct {
	// Registry defaults to an empty in-memory registry
	Registry Registry

	// MaxAuthAttempts is the number of consecutive failed authentications
	// after which a voter is locked out. 0 means unlimited.
	MaxAuthAttempts int

	// LockoutDuration is how long a locked out voter has to wait. 0 means
	// the lock only goes away when the voter is removed or the election is
	// reset.
	LockoutDuration time.Duration

	// Clock defaults to time.Now
	Clock Clock
}
