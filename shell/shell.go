// Package shell is the interactive text interface of the election. It only
// collects input and renders results, every rule lives in the engine.
package shell

import (
	"fmt"
	"io"
	"time"

	"github.com/UnnaturalLog5/ballotbox/election"
	"github.com/UnnaturalLog5/ballotbox/election/impl"
	"github.com/UnnaturalLog5/ballotbox/report"
	"github.com/UnnaturalLog5/ballotbox/roster"
	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"
)

// Main menu entries
const (
	menuStart     = "Start election"
	menuAdmin     = "Admin menu"
	menuVoters    = "View registered voters"
	menuCandidate = "View candidates"
	menuResults   = "View current results"
	menuSave      = "Save election state"
	menuExit      = "Exit"
)

var mainMenu = []string{menuStart, menuAdmin, menuVoters, menuCandidate, menuResults, menuSave, menuExit}

// AdminChecker verifies the admin username and password
type AdminChecker interface {
	Check(username, password string) error
}

// Config holds the shell settings
type Config struct {
	// Roster is what the election is reset to from the admin menu
	Roster roster.Roster

	// StateFile receives the state report on "Save election state"
	StateFile string

	// ResultsFile receives the final report when an election ends. Empty
	// disables it.
	ResultsFile string

	// Format of the saved reports, report.FormatText or report.FormatYAML
	Format string

	Now func() time.Time
}

// Shell is the menu driven front end of an election.
type Shell struct {
	engine election.Engine
	admin  election.Administration
	gate   AdminChecker
	prompt Prompter
	out    io.Writer
	conf   Config
}

// New returns a shell over engine. Admin operations go through gate.
func New(engine election.Engine, gate AdminChecker, prompt Prompter, out io.Writer, conf Config) *Shell {
	if conf.Now == nil {
		conf.Now = time.Now
	}
	if conf.StateFile == "" {
		conf.StateFile = "election_state.txt"
	}

	s := &Shell{
		engine: engine,
		gate:   gate,
		prompt: prompt,
		out:    out,
		conf:   conf,
	}
	s.admin = impl.NewGuarded(engine, election.AuthorizerFunc(s.authorizeAdmin))

	return s
}

// Run shows the main menu until the operator exits.
func (s *Shell) Run() error {
	for {
		choice, err := s.prompt.Select("Main menu", mainMenu)
		if IsInterrupt(err) {
			return nil
		}
		if err != nil {
			return xerrors.Errorf("failed to read menu choice: %w", err)
		}

		switch choice {
		case menuStart:
			err = s.RunElection()
		case menuAdmin:
			err = s.AdminMenu()
		case menuVoters:
			s.showVoters()
		case menuCandidate:
			s.showCandidates()
		case menuResults:
			s.showResults()
		case menuSave:
			s.saveState()
		case menuExit:
			s.printf("Thank you for using the election system.\n")
			return nil
		default:
			s.printf("Invalid choice.\n")
		}

		if err != nil {
			return err
		}
	}
}

// RunElection runs one voting session and presents the results.
func (s *Shell) RunElection() error {
	s.printf("\nWelcome to the election.\n")

	summary, err := s.engine.RunSession(&driver{shell: s})
	switch election.ReasonOf(err) {
	case election.ReasonNone:
	case election.ReasonNoVoters:
		s.printf("No voters are registered. Add voters before starting the election.\n")
		return nil
	case election.ReasonNoCandidates:
		s.printf("No candidates are registered. Add candidates before starting the election.\n")
		return nil
	default:
		if !IsInterrupt(err) {
			return xerrors.Errorf("voting session failed: %w", err)
		}
		// ending needs an explicit yes, an aborted session declares nothing
		s.printf("\nVoting interrupted, no results were declared.\n")
		return nil
	}

	if summary.EndedEarly {
		s.printf("\nVoting ended early, %d voters did not vote.\n", summary.Remaining)
	} else if summary.Remaining == 0 {
		s.printf("\nAll registered voters have voted.\n")
	}

	s.showResults()
	s.showHistory()

	if s.conf.ResultsFile != "" {
		snapshot := report.Take(s.engine, s.conf.Now())
		err := report.Save(s.conf.ResultsFile, snapshot, report.KindFinal, s.conf.Format)
		if err != nil {
			log.Err(err).Msg("failed to save final results")
			s.printf("Could not save the final results: %v\n", err)
		} else {
			s.printf("Final results saved to %s\n", s.conf.ResultsFile)
		}
	}

	return nil
}

func (s *Shell) saveState() {
	snapshot := report.Take(s.engine, s.conf.Now())

	err := report.Save(s.conf.StateFile, snapshot, report.KindState, s.conf.Format)
	if err != nil {
		log.Err(err).Msg("failed to save election state")
		s.printf("Could not save the election state: %v\n", err)
		return
	}

	s.printf("Election state saved to %s\n", s.conf.StateFile)
}

// authorizeAdmin asks for the admin credential
func (s *Shell) authorizeAdmin() error {
	s.printf("\nAdmin authentication required\n")

	username, err := s.prompt.Input("Admin username:")
	if err != nil {
		return xerrors.Errorf("failed to read admin username: %w", err)
	}

	password, err := s.prompt.Password("Admin password:")
	if err != nil {
		return xerrors.Errorf("failed to read admin password: %w", err)
	}

	err = s.gate.Check(username, password)
	if err != nil {
		s.printf("Admin authentication failed.\n")
		return err
	}

	return nil
}

func (s *Shell) printf(format string, a ...interface{}) {
	fmt.Fprintf(s.out, format, a...)
}
