package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/UnnaturalLog5/ballotbox/election"
	"github.com/UnnaturalLog5/ballotbox/election/impl"
	"github.com/UnnaturalLog5/ballotbox/roster"
	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

// answer is a scripted reply. Exactly one of the fields is used, depending
// on the prompt.
type answer struct {
	text string
	yes  bool
	err  error
}

// fakePrompter implements Prompter by replaying answers
type fakePrompter struct {
	t       *testing.T
	answers []answer
	asked   []string
}

func (p *fakePrompter) next(message string) answer {
	p.asked = append(p.asked, message)

	if len(p.answers) == 0 {
		return answer{err: xerrors.New("no more answers")}
	}

	a := p.answers[0]
	p.answers = p.answers[1:]
	return a
}

func (p *fakePrompter) Input(message string) (string, error) {
	a := p.next(message)
	return a.text, a.err
}

func (p *fakePrompter) Password(message string) (string, error) {
	a := p.next(message)
	return a.text, a.err
}

func (p *fakePrompter) Select(message string, options []string) (string, error) {
	a := p.next(message)
	if a.err == nil {
		require.Contains(p.t, options, a.text)
	}
	return a.text, a.err
}

func (p *fakePrompter) Confirm(message string) (bool, error) {
	a := p.next(message)
	return a.yes, a.err
}

func say(text string) answer { return answer{text: text} }

func yes() answer { return answer{yes: true} }

func no() answer { return answer{yes: false} }

// fakeGate accepts admin/12
type fakeGate struct{}

func (fakeGate) Check(username, password string) error {
	if username == "admin" && password == "12" {
		return nil
	}
	return xerrors.Errorf("bad admin: %w", election.ErrAccessDenied)
}

var testRoster = roster.Roster{
	Voters: []roster.Voter{
		{Name: "amrit dash", Credential: "eamdasr"},
		{Name: "tanweer khan", Credential: "ektahna"},
	},
	Candidates: []string{"python", "java"},
}

func newTestShell(t *testing.T, answers ...answer) (*Shell, election.Engine, *fakePrompter, *bytes.Buffer) {
	engine := impl.NewEngine(election.Configuration{})
	require.NoError(t, testRoster.Apply(engine))

	prompter := &fakePrompter{t: t, answers: answers}
	out := new(bytes.Buffer)

	dir := t.TempDir()
	sh := New(engine, fakeGate{}, prompter, out, Config{
		Roster:      testRoster,
		StateFile:   filepath.Join(dir, "state.txt"),
		ResultsFile: filepath.Join(dir, "results.txt"),
		Format:      "text",
		Now:         func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) },
	})

	return sh, engine, prompter, out
}

func Test_Shell_Election(t *testing.T) {
	sh, engine, prompter, out := newTestShell(t,
		say("Amrit Dash"), say("eamdasr"), say("Python"), yes(),
		say("amrit dash"),
		say("nobody"),
		say("tanweer khan"), say("bad"),
		say("tanweer khan"), say("ektahna"), say("Java"), no(),
		say("tanweer khan"), say("ektahna"), say("Python"), yes(),
	)

	require.NoError(t, sh.RunElection())
	require.Empty(t, prompter.answers)

	require.Equal(t, uint(2), engine.MaxVotes())

	text := out.String()
	require.Contains(t, text, "Your vote for Python has been recorded")
	require.Contains(t, text, "Amrit Dash has already voted.")
	require.Contains(t, text, "Nobody is not a registered voter.")
	require.Contains(t, text, "Authentication failed.")
	require.Contains(t, text, "Vote cancelled.")
	require.Contains(t, text, "All registered voters have voted.")
	require.Contains(t, text, "Winner: Python with 2 votes")
	require.Contains(t, text, "Tanweer Khan voted for Python")

	content, err := os.ReadFile(sh.conf.ResultsFile)
	require.NoError(t, err)
	require.Contains(t, string(content), "WINNER: Python with 2 votes")
}

func Test_Shell_EarlyEnd(t *testing.T) {
	sh, engine, _, out := newTestShell(t,
		say("END"), no(),
		say("amrit dash"), say("eamdasr"), say("Java"), yes(),
		say("end"), yes(),
	)

	require.NoError(t, sh.RunElection())

	require.True(t, engine.IsEligible("tanweer khan"))

	text := out.String()
	require.Contains(t, text, "Continuing with voting.")
	require.Contains(t, text, "Voting ended early, 1 voters did not vote.")
	require.Contains(t, text, "Winner: Java with 1 votes")
}

func Test_Shell_EndWithoutVotes(t *testing.T) {
	sh, _, _, out := newTestShell(t,
		answer{err: terminal.InterruptErr}, yes(),
	)

	require.NoError(t, sh.RunElection())
	require.Contains(t, out.String(), "No votes have been cast.")
	require.NotContains(t, out.String(), "Winner")
}

func Test_Shell_InterruptAtEndConfirmationResumes(t *testing.T) {
	interrupt := answer{err: terminal.InterruptErr}

	sh, engine, _, out := newTestShell(t,
		say("amrit dash"), say("eamdasr"), say("Java"), yes(),
		interrupt, interrupt,
	)

	// the script runs dry at the next name prompt
	err := sh.RunElection()
	require.Error(t, err)

	require.Len(t, engine.LedgerEntries(), 1)

	text := out.String()
	require.Contains(t, text, "Continuing with voting.")
	require.NotContains(t, text, "Voting ended early")
	require.NotContains(t, text, "Winner")
	require.NoFileExists(t, sh.conf.ResultsFile)
}

func Test_Shell_InterruptDuringTurnCancelsIt(t *testing.T) {
	interrupt := answer{err: terminal.InterruptErr}

	sh, engine, prompter, out := newTestShell(t,
		say("amrit dash"), interrupt,
		say("amrit dash"), say("eamdasr"), say("Python"), yes(),
		say("tanweer khan"), say("ektahna"), interrupt,
		say("tanweer khan"), say("ektahna"), say("Java"), interrupt,
		say("tanweer khan"), say("ektahna"), say("Java"), yes(),
	)

	require.NoError(t, sh.RunElection())
	require.Empty(t, prompter.answers)

	require.Len(t, engine.LedgerEntries(), 2)
	require.Empty(t, engine.EligibleRemaining())

	text := out.String()
	require.Equal(t, 3, strings.Count(text, "Vote cancelled."))
	require.Contains(t, text, "All registered voters have voted.")
	require.FileExists(t, sh.conf.ResultsFile)
}

func Test_Shell_NoCandidates(t *testing.T) {
	sh, engine, _, out := newTestShell(t)

	_, err := engine.RemoveCandidate("python", false)
	require.NoError(t, err)
	_, err = engine.RemoveCandidate("java", false)
	require.NoError(t, err)

	require.NoError(t, sh.RunElection())
	require.Contains(t, out.String(), "No candidates are registered.")
}

func Test_Shell_AdminAddAndRemove(t *testing.T) {
	sh, engine, _, out := newTestShell(t,
		// enter admin menu
		say("admin"), say("12"),
		// add candidate, then authorize
		say(adminAddCandidate), say("Rust"), say("admin"), say("12"),
		// add voter with a wrong admin password
		say(adminAddVoter), say("Ada"), say("lovelace"), say("admin"), say("nope"),
		// add voter
		say(adminAddVoter), say("Ada"), say("lovelace"), say("admin"), say("12"),
		// remove a voter who did not vote, no confirmation
		say(adminRemoveVoter), say("tanweer khan"), say("admin"), say("12"),
		say(adminBack),
	)

	require.NoError(t, sh.AdminMenu())

	require.Len(t, engine.AllCandidates(), 3)
	require.True(t, engine.IsEligible("ada"))
	require.False(t, engine.IsEligible("tanweer khan"))

	text := out.String()
	require.Contains(t, text, "Rust has been added as a candidate.")
	require.Contains(t, text, "Access denied. Admin authentication required.")
	require.Contains(t, text, "Ada has been added as a voter.")
	require.Contains(t, text, "Tanweer Khan has been removed from the voter registry.")
}

func Test_Shell_AdminRemoveCandidateWithVotes(t *testing.T) {
	sh, engine, _, out := newTestShell(t,
		say("admin"), say("12"),
		// declined
		say(adminRemoveCandidate), say("python"), no(), say("admin"), say("12"),
		// confirmed
		say(adminRemoveCandidate), say("python"), yes(), say("admin"), say("12"),
		say(adminBack),
	)

	_, err := engine.CastVote("amrit dash", "eamdasr", "python", true)
	require.NoError(t, err)

	require.NoError(t, sh.AdminMenu())

	require.True(t, engine.IsEligible("amrit dash"))
	require.Len(t, engine.AllCandidates(), 1)

	text := out.String()
	require.Contains(t, text, "Removal cancelled.")
	require.Contains(t, text, "These voters can vote again: Amrit Dash")
}

func Test_Shell_AdminRemoveVoterWhoVoted(t *testing.T) {
	sh, engine, _, out := newTestShell(t,
		say("admin"), say("12"),
		say(adminRemoveVoter), say("Amrit Dash"), yes(), say("admin"), say("12"),
		say(adminBack),
	)

	_, err := engine.CastVote("amrit dash", "eamdasr", "java", true)
	require.NoError(t, err)

	require.NoError(t, sh.AdminMenu())

	require.Equal(t, uint(0), engine.MaxVotes())
	require.Contains(t, out.String(), "Their vote for Java was withdrawn.")
}

func Test_Shell_AdminReset(t *testing.T) {
	sh, engine, _, out := newTestShell(t,
		say("admin"), say("12"),
		say(adminReset), yes(), say("admin"), say("12"),
		say(adminBack),
	)

	_, err := engine.CastVote("amrit dash", "eamdasr", "java", true)
	require.NoError(t, err)
	_, err = engine.RegisterCandidate("rust")
	require.NoError(t, err)

	require.NoError(t, sh.AdminMenu())

	require.Empty(t, engine.LedgerEntries())
	require.Len(t, engine.AllCandidates(), 2)
	require.Equal(t, []string{"amrit dash", "tanweer khan"}, engine.EligibleRemaining())
	require.Contains(t, out.String(), "The election has been reset.")
}

func Test_Shell_AdminResetDenied(t *testing.T) {
	sh, engine, _, out := newTestShell(t,
		say("admin"), say("12"),
		say(adminReset), yes(), say("admin"), say("wrong"),
		say(adminBack),
	)

	_, err := engine.CastVote("amrit dash", "eamdasr", "java", true)
	require.NoError(t, err)

	require.NoError(t, sh.AdminMenu())

	require.Len(t, engine.LedgerEntries(), 1)
	require.NotContains(t, out.String(), "The election has been reset.")
	require.Contains(t, out.String(), "Access denied. Admin authentication required.")
}

func Test_Shell_AdminDenied(t *testing.T) {
	sh, _, prompter, out := newTestShell(t, say("root"), say("12"))

	require.NoError(t, sh.AdminMenu())
	require.Len(t, prompter.asked, 2)
	require.Contains(t, out.String(), "Admin authentication failed.")
}

func Test_Shell_MainMenu(t *testing.T) {
	sh, _, _, out := newTestShell(t,
		say(menuVoters),
		say(menuCandidate),
		say(menuResults),
		say(menuSave),
		say(menuExit),
	)

	require.NoError(t, sh.Run())

	text := out.String()
	require.Contains(t, text, "1. Amrit Dash (not voted yet)")
	require.Contains(t, text, "2. Java")
	require.Contains(t, text, "No votes have been cast.")
	require.Contains(t, text, "Election state saved to")

	content, err := os.ReadFile(sh.conf.StateFile)
	require.NoError(t, err)
	require.Contains(t, string(content), "Election State as of 2024-01-01 12:00:00")
}

func Test_Shell_MainMenuInterrupt(t *testing.T) {
	sh, _, _, _ := newTestShell(t, answer{err: terminal.InterruptErr})

	require.NoError(t, sh.Run())
}

func Test_Shell_PromptFailure(t *testing.T) {
	sh, _, _, _ := newTestShell(t)

	err := sh.Run()
	require.Error(t, err)
}
