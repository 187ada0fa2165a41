package types

import "time"

// --- Election Types ---

// Voter is an entry of the credential directory. Name is always stored in its
// normalized form.
type Voter struct {
	Name       string
	Credential string
}

// Candidate is a registered candidate with its running vote count.
type Candidate struct {
	Name  string
	Votes uint
}

// Ballot is a ledger entry: which candidate a voter chose.
type Ballot struct {
	ID        string
	Voter     string
	Candidate string
	CastAt    time.Time
}

// Receipt is returned to the caller of a successful vote.
type Receipt struct {
	BallotID  string
	Voter     string
	Candidate string
	// number of eligible voters left after this ballot
	Remaining int
}

// Removal describes the side effects of removing a voter or a candidate.
type Removal struct {
	Name string
	// set when a voter who already voted was removed
	RevokedBallot *Ballot
	// voters put back into the eligible set by a candidate removal
	Reinstated []string
}

// VoterStatus is the protocol state of a voter name.
type VoterStatus int

// Voter states
const (
	StatusUnregistered VoterStatus = iota
	StatusEligible
	StatusVoted
)

// VoterEntry is the read-only view of a voter, without its credential.
type VoterEntry struct {
	Name   string      `yaml:"name"`
	Status VoterStatus `yaml:"status"`
}

// Results is a tally of the current registry state.
type Results struct {
	Candidates  []Candidate
	MaxVotes    uint
	Winners     []string
	BallotsCast int
	Voters      int
}

// SessionSummary is returned once a voting session is over.
type SessionSummary struct {
	BallotsCast int
	EndedEarly  bool
	Remaining   int
}
