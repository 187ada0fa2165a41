// Package roster loads the voters and candidates an election starts with.
package roster

import (
	"bytes"
	_ "embed"
	"io"
	"os"

	"github.com/UnnaturalLog5/ballotbox/election"
	"github.com/UnnaturalLog5/ballotbox/election/impl"
	"github.com/rs/zerolog/log"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultRoster []byte

// Voter is a roster entry
type Voter struct {
	Name       string `yaml:"name"`
	Credential string `yaml:"credential"`
}

// Roster is the initial population of an election
type Roster struct {
	Voters     []Voter  `yaml:"voters"`
	Candidates []string `yaml:"candidates"`
}

// Default returns the embedded roster
func Default() (Roster, error) {
	return Parse(bytes.NewReader(defaultRoster))
}

// Load reads a roster from a YAML file. An empty path returns the default
// roster.
func Load(path string) (Roster, error) {
	if path == "" {
		return Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return Roster{}, xerrors.Errorf("failed to open roster: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes a YAML roster. Unknown fields are rejected.
func Parse(r io.Reader) (Roster, error) {
	roster := Roster{}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	err := dec.Decode(&roster)
	if err != nil && err != io.EOF {
		return Roster{}, xerrors.Errorf("failed to decode roster: %w", err)
	}

	return roster, nil
}

// Apply registers every voter and candidate of the roster. It stops at the
// first rejected entry.
func (r Roster) Apply(admin election.Administration) error {
	for _, v := range r.Voters {
		_, err := admin.RegisterVoter(v.Name, v.Credential)
		if err != nil {
			return xerrors.Errorf("failed to seed voter: %w", err)
		}
	}

	for _, c := range r.Candidates {
		_, err := admin.RegisterCandidate(c)
		if err != nil {
			return xerrors.Errorf("failed to seed candidate: %w", err)
		}
	}

	log.Info().
		Int("voters", len(r.Voters)).
		Int("candidates", len(r.Candidates)).
		Msg("roster loaded")

	return nil
}

// Validate applies the roster to a scratch engine and reports the first
// problem.
func (r Roster) Validate() error {
	return r.Apply(impl.NewEngine(election.Configuration{}))
}
