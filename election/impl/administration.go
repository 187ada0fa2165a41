package impl

import (
	"github.com/UnnaturalLog5/ballotbox/types"
	"github.com/rs/zerolog/log"
)

// RegisterVoter implements election.Administration
func (e *engine) RegisterVoter(name, credential string) (types.Voter, error) {
	voter, err := e.registry.RegisterVoter(name, credential)
	if err != nil {
		log.Warn().Err(err).Msg("voter registration rejected")
		return types.Voter{}, err
	}

	// a name can come back after a removal
	e.attempts.Reset(voter.Name)

	log.Info().Str("voter", voter.Name).Msg("voter registered")
	return voter, nil
}

// RemoveVoter implements election.Administration
func (e *engine) RemoveVoter(name string, confirmed bool) (types.Removal, error) {
	removal, err := e.registry.RemoveVoter(name, confirmed)
	if err != nil {
		log.Warn().Err(err).Msg("voter removal rejected")
		return types.Removal{}, err
	}

	e.attempts.Reset(removal.Name)

	event := log.Info().Str("voter", removal.Name)
	if removal.RevokedBallot != nil {
		event = event.Str("revokedVoteFor", removal.RevokedBallot.Candidate)
	}
	event.Msg("voter removed")

	return removal, nil
}

// RegisterCandidate implements election.Administration
func (e *engine) RegisterCandidate(name string) (types.Candidate, error) {
	candidate, err := e.registry.RegisterCandidate(name)
	if err != nil {
		log.Warn().Err(err).Msg("candidate registration rejected")
		return types.Candidate{}, err
	}

	log.Info().Str("candidate", candidate.Name).Msg("candidate registered")
	return candidate, nil
}

// RemoveCandidate implements election.Administration
func (e *engine) RemoveCandidate(name string, confirmed bool) (types.Removal, error) {
	removal, err := e.registry.RemoveCandidate(name, confirmed)
	if err != nil {
		log.Warn().Err(err).Msg("candidate removal rejected")
		return types.Removal{}, err
	}

	log.Info().
		Str("candidate", removal.Name).
		Strs("reinstated", removal.Reinstated).
		Msg("candidate removed")

	return removal, nil
}

// Reset implements election.Administration
func (e *engine) Reset() error {
	e.registry.Reset()
	e.attempts.Clear()

	log.Info().Msg("election reset")
	return nil
}
