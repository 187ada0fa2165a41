package impl

import (
	"github.com/UnnaturalLog5/ballotbox/election"
	"github.com/UnnaturalLog5/ballotbox/types"
	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"
)

// NewGuarded wraps admin so that every mutation first has to pass the
// authorizer.
func NewGuarded(admin election.Administration, authorizer election.Authorizer) election.Administration {
	return &guarded{
		admin:      admin,
		authorizer: authorizer,
	}
}

// guarded implements election.Administration
type guarded struct {
	admin      election.Administration
	authorizer election.Authorizer
}

func (g *guarded) authorize(op string) error {
	err := g.authorizer.Authorize()
	if err != nil {
		log.Warn().Str("operation", op).Msg("admin operation denied")

		if election.ReasonOf(err) == election.ReasonAccessDenied {
			return err
		}
		return xerrors.Errorf("%s: %v: %w", op, err, election.ErrAccessDenied)
	}

	return nil
}

// RegisterVoter implements election.Administration
func (g *guarded) RegisterVoter(name, credential string) (types.Voter, error) {
	err := g.authorize("register voter")
	if err != nil {
		return types.Voter{}, err
	}

	return g.admin.RegisterVoter(name, credential)
}

// RemoveVoter implements election.Administration
func (g *guarded) RemoveVoter(name string, confirmed bool) (types.Removal, error) {
	err := g.authorize("remove voter")
	if err != nil {
		return types.Removal{}, err
	}

	return g.admin.RemoveVoter(name, confirmed)
}

// RegisterCandidate implements election.Administration
func (g *guarded) RegisterCandidate(name string) (types.Candidate, error) {
	err := g.authorize("register candidate")
	if err != nil {
		return types.Candidate{}, err
	}

	return g.admin.RegisterCandidate(name)
}

// RemoveCandidate implements election.Administration
func (g *guarded) RemoveCandidate(name string, confirmed bool) (types.Removal, error) {
	err := g.authorize("remove candidate")
	if err != nil {
		return types.Removal{}, err
	}

	return g.admin.RemoveCandidate(name, confirmed)
}

// Reset implements election.Administration
func (g *guarded) Reset() error {
	err := g.authorize("reset")
	if err != nil {
		return err
	}

	return g.admin.Reset()
}
