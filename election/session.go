package election

import "github.com/UnnaturalLog5/ballotbox/types"

// SessionDriver is the interactive side of a voting session. The engine
// calls it to get the next input and to report what happened.
type SessionDriver interface {
	// NextVoter returns the name of the next voter, or end=true if the
	// operator asked to stop voting.
	NextVoter() (name string, end bool, err error)

	// ConfirmEnd asks whether an early end should really stop the session.
	ConfirmEnd() (bool, error)

	Credential(voter string) (string, error)

	ChooseCandidate(voter string, candidates []types.Candidate) (string, error)

	ConfirmVote(voter, candidate string) (bool, error)

	// Outcome reports the result of a turn. err is nil on success.
	Outcome(voter string, receipt types.Receipt, err error)
}
