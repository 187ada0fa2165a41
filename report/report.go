// Package report exports the state of an election as a human readable report
// or as YAML.
package report

import (
	"time"

	"github.com/UnnaturalLog5/ballotbox/election"
	"github.com/UnnaturalLog5/ballotbox/types"
	"github.com/rs/xid"
)

// Verdict of an election
const (
	VerdictNoVotes = "no-votes"
	VerdictWinner  = "winner"
	VerdictTie     = "tie"
)

// Snapshot is a point in time copy of the registry, ledger and tally.
type Snapshot struct {
	ID      string    `yaml:"id"`
	TakenAt time.Time `yaml:"takenAt"`

	Candidates []CandidateLine    `yaml:"candidates"`
	Ballots    []BallotLine       `yaml:"ballots"`
	Voters     []types.VoterEntry `yaml:"voters"`
	Eligible   []string           `yaml:"eligible"`

	RegisteredVoters int      `yaml:"registeredVoters"`
	BallotsCast      int      `yaml:"ballotsCast"`
	Participation    float64  `yaml:"participation"`
	MaxVotes         uint     `yaml:"maxVotes"`
	Winners          []string `yaml:"winners"`
	Verdict          string   `yaml:"verdict"`
}

// CandidateLine is a row of the tally
type CandidateLine struct {
	Name   string `yaml:"name"`
	Votes  uint   `yaml:"votes"`
	Winner bool   `yaml:"winner"`
}

// BallotLine is a row of the voting record
type BallotLine struct {
	ID        string    `yaml:"id"`
	Voter     string    `yaml:"voter"`
	Candidate string    `yaml:"candidate"`
	CastAt    time.Time `yaml:"castAt"`
}

// Take builds a snapshot from the read-only accessors of an election.
func Take(r election.Results, now time.Time) Snapshot {
	results := r.Results()

	snapshot := Snapshot{
		ID:               xid.New().String(),
		TakenAt:          now,
		Candidates:       make([]CandidateLine, 0, len(results.Candidates)),
		Ballots:          make([]BallotLine, 0),
		Voters:           r.AllVoters(),
		Eligible:         r.EligibleRemaining(),
		RegisteredVoters: results.Voters,
		BallotsCast:      results.BallotsCast,
		Participation:    results.Participation(),
		MaxVotes:         results.MaxVotes,
		Winners:          results.Winners,
	}

	for _, c := range results.Candidates {
		snapshot.Candidates = append(snapshot.Candidates, CandidateLine{
			Name:  c.Name,
			Votes: c.Votes,
			// a 0 vote candidate is never marked
			Winner: c.Votes > 0 && c.Votes == results.MaxVotes,
		})
	}

	for _, b := range r.LedgerEntries() {
		snapshot.Ballots = append(snapshot.Ballots, BallotLine{
			ID:        b.ID,
			Voter:     b.Voter,
			Candidate: b.Candidate,
			CastAt:    b.CastAt,
		})
	}

	switch {
	case results.NoVotes():
		snapshot.Verdict = VerdictNoVotes
		snapshot.Winners = []string{}
	case results.IsTie():
		snapshot.Verdict = VerdictTie
	default:
		snapshot.Verdict = VerdictWinner
	}

	return snapshot
}
