package impl

import (
	"github.com/UnnaturalLog5/ballotbox/election"
	"github.com/UnnaturalLog5/ballotbox/types"
	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"
)

// RunSession implements election.Voting
func (e *engine) RunSession(driver election.SessionDriver) (types.SessionSummary, error) {
	summary := types.SessionSummary{}

	if len(e.registry.Voters()) == 0 {
		return summary, xerrors.Errorf("cannot start voting: %w", election.ErrNoVoters)
	}
	if len(e.registry.Candidates()) == 0 {
		return summary, xerrors.Errorf("cannot start voting: %w", election.ErrNoCandidates)
	}

	log.Info().Int("eligible", len(e.registry.Eligible())).Msg("voting session started")

	for len(e.registry.Eligible()) > 0 {
		name, end, err := driver.NextVoter()
		if err != nil {
			return e.finish(summary), xerrors.Errorf("failed to read voter: %w", err)
		}

		if end {
			stop, err := driver.ConfirmEnd()
			if err != nil {
				return e.finish(summary), xerrors.Errorf("failed to confirm end: %w", err)
			}
			if stop {
				summary.EndedEarly = true
				break
			}

			log.Info().Msg("early end declined, voting continues")
			continue
		}

		receipt, err := e.turn(driver, name)
		if err != nil && election.ReasonOf(err) == election.ReasonInternal {
			return e.finish(summary), err
		}
		if err == nil {
			summary.BallotsCast++
		}

		driver.Outcome(types.NormalizeName(name), receipt, err)
	}

	summary = e.finish(summary)

	log.Info().
		Int("ballots", summary.BallotsCast).
		Int("remaining", summary.Remaining).
		Bool("endedEarly", summary.EndedEarly).
		Msg("voting session over")

	return summary, nil
}

// turn runs the protocol for one voter. Errors carrying a reason are
// reported to the driver, other errors abort the session.
func (e *engine) turn(driver election.SessionDriver, name string) (types.Receipt, error) {
	name = types.NormalizeName(name)

	if name == "" {
		return types.Receipt{}, xerrors.Errorf("voter name is empty: %w", election.ErrInvalidInput)
	}

	if !e.registry.IsEligible(name) {
		if e.registry.HasVoted(name) {
			return types.Receipt{}, xerrors.Errorf("voter %q already voted: %w", name, election.ErrNotEligible)
		}
		return types.Receipt{}, xerrors.Errorf("voter %q: %w", name, election.ErrUnknownVoter)
	}

	credential, err := driver.Credential(name)
	if err != nil {
		return types.Receipt{}, xerrors.Errorf("failed to read credential: %w", err)
	}

	err = e.Authenticate(name, credential)
	if err != nil {
		return types.Receipt{}, err
	}

	candidate, err := driver.ChooseCandidate(name, e.registry.Candidates())
	if err != nil {
		return types.Receipt{}, xerrors.Errorf("failed to read candidate: %w", err)
	}

	confirmed, err := driver.ConfirmVote(name, types.NormalizeName(candidate))
	if err != nil {
		return types.Receipt{}, xerrors.Errorf("failed to confirm vote: %w", err)
	}

	return e.CastVote(name, credential, candidate, confirmed)
}

func (e *engine) finish(summary types.SessionSummary) types.SessionSummary {
	summary.Remaining = len(e.registry.Eligible())
	return summary
}
