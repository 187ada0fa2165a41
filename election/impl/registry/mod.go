package registry

import (
	"sync"

	"github.com/UnnaturalLog5/ballotbox/election"
	"github.com/UnnaturalLog5/ballotbox/types"
)

// New returns an empty in-memory registry.
func New() election.Registry {
	r := &registry{}
	r.reset()
	return r
}

// registry implements election.Registry.
//
// Each exported method holds the lock for its whole duration, so cascading
// removals and ballot commits are never observed half done.
type registry struct {
	sync.RWMutex

	// credential directory, in registration order
	voterOrder []string
	directory  map[string]types.Voter

	eligible map[string]struct{}

	// candidates, in registration order
	candidateOrder []string
	counts         map[string]uint

	// ballots, in cast order
	ledger []types.Ballot
}

func (r *registry) reset() {
	r.voterOrder = make([]string, 0)
	r.directory = make(map[string]types.Voter)
	r.eligible = make(map[string]struct{})
	r.candidateOrder = make([]string, 0)
	r.counts = make(map[string]uint)
	r.ledger = make([]types.Ballot, 0)
}

// Reset implements election.Registry
func (r *registry) Reset() {
	r.Lock()
	defer r.Unlock()

	r.reset()
}

// Voter implements election.Registry
func (r *registry) Voter(name string) (types.Voter, bool) {
	r.RLock()
	defer r.RUnlock()

	v, ok := r.directory[types.NormalizeName(name)]
	return v, ok
}

// Candidate implements election.Registry
func (r *registry) Candidate(name string) (types.Candidate, bool) {
	r.RLock()
	defer r.RUnlock()

	name = types.NormalizeName(name)
	count, ok := r.counts[name]
	if !ok {
		return types.Candidate{}, false
	}

	return types.Candidate{Name: name, Votes: count}, true
}

// IsEligible implements election.Registry
func (r *registry) IsEligible(name string) bool {
	r.RLock()
	defer r.RUnlock()

	_, ok := r.eligible[types.NormalizeName(name)]
	return ok
}

// HasVoted implements election.Registry
func (r *registry) HasVoted(name string) bool {
	r.RLock()
	defer r.RUnlock()

	return r.ballotIndex(types.NormalizeName(name)) >= 0
}

// Voters implements election.Registry
func (r *registry) Voters() []types.Voter {
	r.RLock()
	defer r.RUnlock()

	voters := make([]types.Voter, 0, len(r.voterOrder))
	for _, name := range r.voterOrder {
		voters = append(voters, r.directory[name])
	}

	return voters
}

// Candidates implements election.Registry
func (r *registry) Candidates() []types.Candidate {
	r.RLock()
	defer r.RUnlock()

	candidates := make([]types.Candidate, 0, len(r.candidateOrder))
	for _, name := range r.candidateOrder {
		candidates = append(candidates, types.Candidate{Name: name, Votes: r.counts[name]})
	}

	return candidates
}

// Ledger implements election.Registry
func (r *registry) Ledger() []types.Ballot {
	r.RLock()
	defer r.RUnlock()

	ledger := make([]types.Ballot, len(r.ledger))
	copy(ledger, r.ledger)

	return ledger
}

// Eligible implements election.Registry. Voters are listed in registration
// order, including the ones reinstated after a candidate removal.
func (r *registry) Eligible() []string {
	r.RLock()
	defer r.RUnlock()

	eligible := make([]string, 0, len(r.eligible))
	for _, name := range r.voterOrder {
		if _, ok := r.eligible[name]; ok {
			eligible = append(eligible, name)
		}
	}

	return eligible
}

// remove drops the first occurrence of elem from arr
func remove[T comparable](arr []T, elem T) []T {
	for i, s := range arr {
		if s == elem {
			return append(arr[:i], arr[i+1:]...)
		}
	}
	return arr
}
