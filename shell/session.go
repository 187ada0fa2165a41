package shell

import (
	"fmt"

	"github.com/UnnaturalLog5/ballotbox/election"
	"github.com/UnnaturalLog5/ballotbox/types"
	"golang.org/x/xerrors"
)

// endCommand stops the voting loop when typed instead of a name
const endCommand = "end"

// driver implements election.SessionDriver on top of the shell prompts
type driver struct {
	shell *Shell
}

// NextVoter implements election.SessionDriver
func (d *driver) NextVoter() (string, bool, error) {
	name, err := d.shell.prompt.Input(`Enter your name to cast your vote (or type "END" to stop voting):`)
	if IsInterrupt(err) {
		return "", true, nil
	}
	if err != nil {
		return "", false, err
	}

	if types.NormalizeName(name) == endCommand {
		return "", true, nil
	}

	return name, false, nil
}

// ConfirmEnd implements election.SessionDriver
func (d *driver) ConfirmEnd() (bool, error) {
	stop, err := d.shell.prompt.Confirm("End voting and declare results?")
	if IsInterrupt(err) {
		stop, err = false, nil
	}
	if err != nil {
		return false, err
	}

	if !stop {
		d.shell.printf("Continuing with voting.\n")
	}

	return stop, nil
}

// Credential implements election.SessionDriver
func (d *driver) Credential(voter string) (string, error) {
	credential, err := d.shell.prompt.Password(fmt.Sprintf("%s, enter your credential:", types.DisplayName(voter)))
	return credential, cancelTurn(err)
}

// ChooseCandidate implements election.SessionDriver
func (d *driver) ChooseCandidate(voter string, candidates []types.Candidate) (string, error) {
	options := make([]string, 0, len(candidates))
	names := make(map[string]string, len(candidates))

	for _, c := range candidates {
		display := types.DisplayName(c.Name)
		options = append(options, display)
		names[display] = c.Name
	}

	choice, err := d.shell.prompt.Select("Choose the candidate you wish to vote for:", options)
	if err != nil {
		return "", cancelTurn(err)
	}

	name, ok := names[choice]
	if !ok {
		// let the engine reject it
		return choice, nil
	}

	return name, nil
}

// ConfirmVote implements election.SessionDriver
func (d *driver) ConfirmVote(voter, candidate string) (bool, error) {
	confirmed, err := d.shell.prompt.Confirm(fmt.Sprintf("You chose %s. Confirm vote?", types.DisplayName(candidate)))
	return confirmed, cancelTurn(err)
}

// cancelTurn turns a Ctrl-C during a voter's turn into a declined vote, so
// only that turn is dropped and voting goes on.
func cancelTurn(err error) error {
	if IsInterrupt(err) {
		return xerrors.Errorf("turn interrupted: %w", election.ErrVoteDeclined)
	}
	return err
}

// Outcome implements election.SessionDriver
func (d *driver) Outcome(voter string, receipt types.Receipt, err error) {
	if err == nil {
		d.shell.printf("Thank you, %s. Your vote for %s has been recorded (ballot %s).\n",
			types.DisplayName(receipt.Voter), types.DisplayName(receipt.Candidate), receipt.BallotID)
		if receipt.Remaining > 0 {
			d.shell.printf("%d voters remaining.\n", receipt.Remaining)
		}
		return
	}

	d.shell.printf("%s\n", describe(voter, err))
}

// describe turns a failed operation into a message for the operator
func describe(name string, err error) string {
	display := types.DisplayName(name)

	switch election.ReasonOf(err) {
	case election.ReasonInvalidInput:
		return "The input cannot be empty."
	case election.ReasonUnknownVoter:
		return fmt.Sprintf("%s is not a registered voter.", display)
	case election.ReasonNotEligible:
		return fmt.Sprintf("%s has already voted.", display)
	case election.ReasonAuthenticationFailed:
		return "Authentication failed. Your vote was not recorded."
	case election.ReasonLockedOut:
		return fmt.Sprintf("Too many failed attempts, %s is locked out.", display)
	case election.ReasonUnknownCandidate:
		return "That candidate is not registered."
	case election.ReasonVoteDeclined:
		return "Vote cancelled."
	case election.ReasonDuplicateVoter:
		return fmt.Sprintf("%s is already registered.", display)
	case election.ReasonDuplicateCandidate:
		return fmt.Sprintf("%s is already a candidate.", display)
	case election.ReasonDestructiveChangeDeclined:
		return "Removal cancelled."
	case election.ReasonAccessDenied:
		return "Access denied. Admin authentication required."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
