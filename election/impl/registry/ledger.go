package registry

import (
	"github.com/UnnaturalLog5/ballotbox/election"
	"github.com/UnnaturalLog5/ballotbox/types"
	"golang.org/x/xerrors"
)

// RecordBallot implements election.Registry
func (r *registry) RecordBallot(ballot types.Ballot) (int, error) {
	ballot.Voter = types.NormalizeName(ballot.Voter)
	ballot.Candidate = types.NormalizeName(ballot.Candidate)

	r.Lock()
	defer r.Unlock()

	if _, ok := r.eligible[ballot.Voter]; !ok {
		return len(r.eligible), xerrors.Errorf("voter %q: %w", ballot.Voter, election.ErrNotEligible)
	}

	if _, ok := r.counts[ballot.Candidate]; !ok {
		return len(r.eligible), xerrors.Errorf("candidate %q: %w", ballot.Candidate, election.ErrUnknownCandidate)
	}

	r.counts[ballot.Candidate]++
	r.ledger = append(r.ledger, ballot)
	delete(r.eligible, ballot.Voter)

	return len(r.eligible), nil
}

// ballotIndex returns the ledger position of the voter's ballot, -1 if the
// voter has not voted. The lock must be held.
func (r *registry) ballotIndex(voter string) int {
	for i, ballot := range r.ledger {
		if ballot.Voter == voter {
			return i
		}
	}
	return -1
}
