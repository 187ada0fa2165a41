package registry

import (
	"strings"

	"github.com/UnnaturalLog5/ballotbox/election"
	"github.com/UnnaturalLog5/ballotbox/types"
	"golang.org/x/xerrors"
)

// RegisterVoter implements election.Registry
func (r *registry) RegisterVoter(name, credential string) (types.Voter, error) {
	name = types.NormalizeName(name)

	if name == "" {
		return types.Voter{}, xerrors.Errorf("voter name is empty: %w", election.ErrInvalidInput)
	}
	if strings.TrimSpace(credential) == "" {
		return types.Voter{}, xerrors.Errorf("credential of %q is empty: %w", name, election.ErrInvalidInput)
	}

	r.Lock()
	defer r.Unlock()

	if _, exists := r.directory[name]; exists {
		return types.Voter{}, xerrors.Errorf("voter %q: %w", name, election.ErrDuplicateVoter)
	}

	voter := types.Voter{Name: name, Credential: credential}

	r.voterOrder = append(r.voterOrder, name)
	r.directory[name] = voter
	r.eligible[name] = struct{}{}

	return voter, nil
}

// RemoveVoter implements election.Registry
func (r *registry) RemoveVoter(name string, confirmed bool) (types.Removal, error) {
	name = types.NormalizeName(name)
	if name == "" {
		return types.Removal{}, xerrors.Errorf("voter name is empty: %w", election.ErrInvalidInput)
	}

	r.Lock()
	defer r.Unlock()

	if _, exists := r.directory[name]; !exists {
		return types.Removal{}, xerrors.Errorf("voter %q: %w", name, election.ErrUnknownVoter)
	}

	removal := types.Removal{Name: name}

	idx := r.ballotIndex(name)
	if idx >= 0 {
		if !confirmed {
			return types.Removal{}, xerrors.Errorf("voter %q already voted: %w", name, election.ErrDestructiveChangeDeclined)
		}

		ballot := r.ledger[idx]
		if r.counts[ballot.Candidate] > 0 {
			r.counts[ballot.Candidate]--
		}
		r.ledger = append(r.ledger[:idx], r.ledger[idx+1:]...)
		removal.RevokedBallot = &ballot
	}

	delete(r.eligible, name)
	delete(r.directory, name)
	r.voterOrder = remove(r.voterOrder, name)

	return removal, nil
}
