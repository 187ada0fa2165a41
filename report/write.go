package report

import (
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/UnnaturalLog5/ballotbox/types"
	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// Formats accepted by Save
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Kinds of report accepted by Save
const (
	KindState = "state"
	KindFinal = "final"
)

const timeLayout = "2006-01-02 15:04:05"

var funcs = template.FuncMap{
	"title":  types.DisplayName,
	"repeat": strings.Repeat,
	"when":   func(s Snapshot) string { return s.TakenAt.Format(timeLayout) },
}

const stateTemplate = `Election State as of {{when .}}
{{repeat "=" 50}}

Current Vote Counts:
-----------------
{{range .Candidates}}{{title .Name}}: {{.Votes}} votes
{{end}}
Voters who have cast their votes:
-----------------------------
{{range .Ballots}}{{title .Voter}} voted for {{title .Candidate}}
{{else}}No votes have been cast yet.
{{end}}
Eligible voters who have not yet voted:
-----------------------------------
{{range .Eligible}}{{title .}}
{{else}}All registered voters have cast their votes.
{{end}}
{{repeat "=" 50}}
`

const finalTemplate = `ELECTION FINAL RESULTS - {{when .}}
{{repeat "=" 50}}

Total registered voters: {{.RegisteredVoters}}
Total votes cast: {{.BallotsCast}}
Voter participation rate: {{printf "%.1f" .Participation}}%

FINAL VOTE TALLY
{{repeat "-" 20}}
{{range .Candidates}}{{title .Name}}: {{.Votes}} votes{{if .Winner}} (winner){{end}}
{{end}}
{{if eq .Verdict "no-votes"}}No votes were cast in this election.
{{else if eq .Verdict "tie"}}TIE RESULT: The following candidates tied with {{.MaxVotes}} votes each:
{{range .Winners}}- {{title .}}
{{end}}{{else}}WINNER: {{title (index .Winners 0)}} with {{.MaxVotes}} votes
{{end}}
COMPLETE VOTING RECORD
{{repeat "-" 25}}
{{range .Ballots}}{{title .Voter}} voted for {{title .Candidate}}
{{end}}{{if .Eligible}}
VOTERS WHO DID NOT PARTICIPATE
{{repeat "-" 30}}
{{range .Eligible}}{{title .}}
{{end}}{{end}}
{{repeat "=" 50}}
End of Election Results
`

var (
	stateTmpl = template.Must(template.New("state").Funcs(funcs).Parse(stateTemplate))
	finalTmpl = template.Must(template.New("final").Funcs(funcs).Parse(finalTemplate))
)

// WriteState writes the in-progress state report.
func WriteState(w io.Writer, s Snapshot) error {
	err := stateTmpl.Execute(w, s)
	if err != nil {
		return xerrors.Errorf("failed to write state report: %w", err)
	}
	return nil
}

// WriteFinal writes the final results report.
func WriteFinal(w io.Writer, s Snapshot) error {
	err := finalTmpl.Execute(w, s)
	if err != nil {
		return xerrors.Errorf("failed to write final report: %w", err)
	}
	return nil
}

// WriteYAML dumps the snapshot as YAML.
func WriteYAML(w io.Writer, s Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	err := enc.Encode(s)
	if err != nil {
		return xerrors.Errorf("failed to encode snapshot: %w", err)
	}

	return enc.Close()
}

// Write renders the snapshot in the given kind and format.
func Write(w io.Writer, s Snapshot, kind, format string) error {
	switch format {
	case FormatYAML:
		return WriteYAML(w, s)
	case FormatText, "":
	default:
		return xerrors.Errorf("unknown report format %q", format)
	}

	switch kind {
	case KindState:
		return WriteState(w, s)
	case KindFinal:
		return WriteFinal(w, s)
	default:
		return xerrors.Errorf("unknown report kind %q", kind)
	}
}

// Save writes the report to path, replacing any previous file. Failures are
// returned to the caller, nothing is retried.
func Save(path string, s Snapshot, kind, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return xerrors.Errorf("failed to create report: %w", err)
	}

	err = Write(f, s, kind, format)
	if err != nil {
		f.Close()
		return err
	}

	err = f.Close()
	if err != nil {
		return xerrors.Errorf("failed to close report: %w", err)
	}

	log.Info().Str("path", path).Str("kind", kind).Str("snapshot", s.ID).Msg("report saved")
	return nil
}
