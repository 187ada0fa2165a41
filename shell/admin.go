package shell

import (
	"fmt"
	"strings"

	"github.com/UnnaturalLog5/ballotbox/types"
	"golang.org/x/xerrors"
)

// Admin menu entries
const (
	adminAddCandidate    = "Add candidate"
	adminRemoveCandidate = "Remove candidate"
	adminAddVoter        = "Add voter"
	adminRemoveVoter     = "Remove voter"
	adminReset           = "Reset to initial roster"
	adminBack            = "Back to main menu"
)

var adminMenu = []string{adminAddCandidate, adminRemoveCandidate, adminAddVoter, adminRemoveVoter, adminReset, adminBack}

// AdminMenu authenticates the admin and runs the admin menu. Each mutation
// asks for the admin credential again.
func (s *Shell) AdminMenu() error {
	if s.authorizeAdmin() != nil {
		return nil
	}

	for {
		choice, err := s.prompt.Select("Admin menu", adminMenu)
		if IsInterrupt(err) {
			return nil
		}
		if err != nil {
			return xerrors.Errorf("failed to read admin choice: %w", err)
		}

		switch choice {
		case adminAddCandidate:
			err = s.addCandidate()
		case adminRemoveCandidate:
			err = s.removeCandidate()
		case adminAddVoter:
			err = s.addVoter()
		case adminRemoveVoter:
			err = s.removeVoter()
		case adminReset:
			err = s.reset()
		case adminBack:
			return nil
		}

		if IsInterrupt(err) {
			continue
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) addCandidate() error {
	s.showCandidates()

	name, err := s.prompt.Input("Name of the new candidate:")
	if err != nil {
		return err
	}

	candidate, err := s.admin.RegisterCandidate(name)
	if err != nil {
		s.printf("%s\n", describe(name, err))
		return nil
	}

	s.printf("%s has been added as a candidate.\n", types.DisplayName(candidate.Name))
	return nil
}

func (s *Shell) removeCandidate() error {
	for _, c := range s.engine.AllCandidates() {
		s.printf("%s\n", c)
	}

	name, err := s.prompt.Input("Name of the candidate to remove:")
	if err != nil {
		return err
	}

	confirmed := false
	if c, ok := s.candidate(name); ok && c.Votes > 0 {
		confirmed, err = s.prompt.Confirm(fmt.Sprintf(
			"WARNING: %s has %d votes. Removing will affect election results and let those voters vote again. Continue?",
			types.DisplayName(c.Name), c.Votes))
		if err != nil {
			return err
		}
	}

	removal, err := s.admin.RemoveCandidate(name, confirmed)
	if err != nil {
		s.printf("%s\n", describe(name, err))
		return nil
	}

	s.printf("%s has been removed from the candidates list.\n", types.DisplayName(removal.Name))
	if len(removal.Reinstated) > 0 {
		display := make([]string, 0, len(removal.Reinstated))
		for _, v := range removal.Reinstated {
			display = append(display, types.DisplayName(v))
		}
		s.printf("These voters can vote again: %s\n", strings.Join(display, ", "))
	}

	return nil
}

func (s *Shell) addVoter() error {
	name, err := s.prompt.Input("Name of the new voter:")
	if err != nil {
		return err
	}

	credential, err := s.prompt.Input("Credential of the new voter:")
	if err != nil {
		return err
	}

	voter, err := s.admin.RegisterVoter(name, credential)
	if err != nil {
		s.printf("%s\n", describe(name, err))
		return nil
	}

	s.printf("%s has been added as a voter.\n", types.DisplayName(voter.Name))
	return nil
}

func (s *Shell) removeVoter() error {
	s.showVoters()

	name, err := s.prompt.Input("Name of the voter to remove:")
	if err != nil {
		return err
	}

	confirmed := false
	if s.engine.HasVoted(name) {
		confirmed, err = s.prompt.Confirm(fmt.Sprintf(
			"WARNING: %s has already voted. Removing will affect election results. Continue?",
			types.DisplayName(types.NormalizeName(name))))
		if err != nil {
			return err
		}
	}

	removal, err := s.admin.RemoveVoter(name, confirmed)
	if err != nil {
		s.printf("%s\n", describe(name, err))
		return nil
	}

	s.printf("%s has been removed from the voter registry.\n", types.DisplayName(removal.Name))
	if removal.RevokedBallot != nil {
		s.printf("Their vote for %s was withdrawn.\n", types.DisplayName(removal.RevokedBallot.Candidate))
	}

	return nil
}

func (s *Shell) reset() error {
	ok, err := s.prompt.Confirm("Reset the election to the initial roster? Every vote will be lost.")
	if err != nil || !ok {
		return err
	}

	err = s.admin.Reset()
	if err != nil {
		s.printf("%s\n", describe("", err))
		return nil
	}

	err = s.conf.Roster.Apply(s.engine)
	if err != nil {
		s.printf("Could not load the roster: %v\n", err)
		return nil
	}

	s.printf("The election has been reset.\n")
	return nil
}

func (s *Shell) candidate(name string) (types.Candidate, bool) {
	name = types.NormalizeName(name)

	for _, c := range s.engine.AllCandidates() {
		if c.Name == name {
			return c, true
		}
	}

	return types.Candidate{}, false
}
