package impl

import (
	"github.com/UnnaturalLog5/ballotbox/election"
	"github.com/UnnaturalLog5/ballotbox/types"
	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"
)

// Authenticate implements election.Voting
func (e *engine) Authenticate(name, credential string) error {
	name = types.NormalizeName(name)
	if name == "" {
		return xerrors.Errorf("voter name is empty: %w", election.ErrInvalidInput)
	}

	// eligibility is checked before the credential
	if !e.registry.IsEligible(name) {
		log.Warn().Str("voter", name).Msg("authentication of a non eligible voter")
		return xerrors.Errorf("voter %q: %w", name, election.ErrNotEligible)
	}

	if e.attempts.Locked(name) {
		log.Warn().Str("voter", name).Msg("authentication refused, voter is locked out")
		return xerrors.Errorf("voter %q: %w", name, election.ErrLockedOut)
	}

	voter, ok := e.registry.Voter(name)
	if !ok || voter.Credential != credential {
		left := e.attempts.Fail(name)
		log.Warn().Str("voter", name).Int("attemptsLeft", left).Msg("authentication failed")
		return xerrors.Errorf("voter %q: %w", name, election.ErrAuthenticationFailed)
	}

	e.attempts.Reset(name)

	log.Info().Str("voter", name).Msg("voter authenticated")
	return nil
}

// CastVote implements election.Voting
func (e *engine) CastVote(voterName, credential, candidateName string, confirmed bool) (types.Receipt, error) {
	voterName = types.NormalizeName(voterName)
	candidateName = types.NormalizeName(candidateName)

	err := e.Authenticate(voterName, credential)
	if err != nil {
		return types.Receipt{}, err
	}

	if candidateName == "" {
		return types.Receipt{}, xerrors.Errorf("candidate name is empty: %w", election.ErrInvalidInput)
	}

	_, ok := e.registry.Candidate(candidateName)
	if !ok {
		log.Warn().Str("voter", voterName).Str("candidate", candidateName).Msg("vote for an unknown candidate")
		return types.Receipt{}, xerrors.Errorf("candidate %q: %w", candidateName, election.ErrUnknownCandidate)
	}

	if !confirmed {
		log.Info().Str("voter", voterName).Msg("vote not confirmed")
		return types.Receipt{}, xerrors.Errorf("vote of %q: %w", voterName, election.ErrVoteDeclined)
	}

	ballot := types.Ballot{
		ID:        xid.New().String(),
		Voter:     voterName,
		Candidate: candidateName,
		CastAt:    e.conf.Clock.Now(),
	}

	remaining, err := e.registry.RecordBallot(ballot)
	if err != nil {
		return types.Receipt{}, xerrors.Errorf("failed to record ballot: %w", err)
	}

	log.Info().
		Str("voter", voterName).
		Str("candidate", candidateName).
		Str("ballotID", ballot.ID).
		Int("remaining", remaining).
		Msg("vote recorded")

	return types.Receipt{
		BallotID:  ballot.ID,
		Voter:     voterName,
		Candidate: candidateName,
		Remaining: remaining,
	}, nil
}
