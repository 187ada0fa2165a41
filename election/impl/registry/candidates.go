package registry

import (
	"github.com/UnnaturalLog5/ballotbox/election"
	"github.com/UnnaturalLog5/ballotbox/types"
	"golang.org/x/xerrors"
)

// RegisterCandidate implements election.Registry
func (r *registry) RegisterCandidate(name string) (types.Candidate, error) {
	name = types.NormalizeName(name)
	if name == "" {
		return types.Candidate{}, xerrors.Errorf("candidate name is empty: %w", election.ErrInvalidInput)
	}

	r.Lock()
	defer r.Unlock()

	if _, exists := r.counts[name]; exists {
		return types.Candidate{}, xerrors.Errorf("candidate %q: %w", name, election.ErrDuplicateCandidate)
	}

	r.candidateOrder = append(r.candidateOrder, name)
	r.counts[name] = 0

	return types.Candidate{Name: name}, nil
}

// RemoveCandidate implements election.Registry. Ballots for the candidate are
// dropped and their voters become eligible again with their old credential.
func (r *registry) RemoveCandidate(name string, confirmed bool) (types.Removal, error) {
	name = types.NormalizeName(name)
	if name == "" {
		return types.Removal{}, xerrors.Errorf("candidate name is empty: %w", election.ErrInvalidInput)
	}

	r.Lock()
	defer r.Unlock()

	count, exists := r.counts[name]
	if !exists {
		return types.Removal{}, xerrors.Errorf("candidate %q: %w", name, election.ErrUnknownCandidate)
	}

	if count > 0 && !confirmed {
		return types.Removal{}, xerrors.Errorf("candidate %q has %d votes: %w", name, count, election.ErrDestructiveChangeDeclined)
	}

	removal := types.Removal{Name: name, Reinstated: make([]string, 0)}

	kept := make([]types.Ballot, 0, len(r.ledger))
	for _, ballot := range r.ledger {
		if ballot.Candidate != name {
			kept = append(kept, ballot)
			continue
		}

		// a ballot always belongs to a registered voter, removing a voter
		// removes its ballot
		if _, ok := r.directory[ballot.Voter]; ok {
			r.eligible[ballot.Voter] = struct{}{}
			removal.Reinstated = append(removal.Reinstated, ballot.Voter)
		}
	}
	r.ledger = kept

	delete(r.counts, name)
	r.candidateOrder = remove(r.candidateOrder, name)

	return removal, nil
}
