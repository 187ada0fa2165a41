package main

import (
	"fmt"
	"io"
	"os"

	"github.com/UnnaturalLog5/ballotbox/election"
	"github.com/UnnaturalLog5/ballotbox/election/impl"
	"github.com/UnnaturalLog5/ballotbox/election/impl/admingate"
	"github.com/UnnaturalLog5/ballotbox/roster"
	"github.com/UnnaturalLog5/ballotbox/shell"
	"github.com/UnnaturalLog5/ballotbox/types"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"
)

func main() {
	loadEnvFile()

	err := newApp().Run(os.Args)
	if err != nil {
		log.Err(err).Msg("ballotbox failed")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "ballotbox",
		Usage:     "run a single plurality election from the terminal",
		Flags:     globalFlags,
		Action:    menuAction,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Commands: []*cli.Command{
			{
				Name:   "menu",
				Usage:  "interactive menu with election, admin and report screens (default)",
				Action: menuAction,
			},
			{
				Name:   "vote",
				Usage:  "start voting right away and print the results when it ends",
				Action: voteAction,
			},
			{
				Name:      "roster",
				Usage:     "check a roster file and list its content",
				ArgsUsage: "[roster.yaml]",
				Action:    rosterAction,
			},
			{
				Name:      "hash-password",
				Usage:     "print the bcrypt hash of a password for --admin-password-hash",
				ArgsUsage: "<password>",
				Action:    hashPasswordAction,
			},
		},
	}
}

// setup resolves the configuration and builds a seeded engine and its shell
func setup(c *cli.Context) (*shell.Shell, io.Closer, error) {
	conf := configFromContext(c)

	err := conf.Validate()
	if err != nil {
		return nil, nil, err
	}

	closer, err := setupLogging(conf, c.App.ErrWriter)
	if err != nil {
		return nil, nil, err
	}

	r, err := roster.Load(conf.Roster)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}

	engine := impl.NewEngine(conf.Election())

	err = r.Apply(engine)
	if err != nil {
		closer.Close()
		return nil, nil, err
	}

	gate, err := conf.Gate()
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	if !gate.Enabled() {
		log.Warn().Msg("no admin password configured, the admin menu is locked")
	}

	prompter := shell.NewSurveyPrompter(os.Stdin, os.Stdout, c.App.ErrWriter)

	sh := shell.New(engine, gate, prompter, c.App.Writer, shell.Config{
		Roster:      r,
		StateFile:   conf.StateFile,
		ResultsFile: conf.ResultsFile,
		Format:      conf.Format,
	})

	return sh, closer, nil
}

func menuAction(c *cli.Context) error {
	sh, closer, err := setup(c)
	if err != nil {
		return err
	}
	defer closer.Close()

	return sh.Run()
}

func voteAction(c *cli.Context) error {
	sh, closer, err := setup(c)
	if err != nil {
		return err
	}
	defer closer.Close()

	return sh.RunElection()
}

func rosterAction(c *cli.Context) error {
	closer, err := setupLogging(configFromContext(c), c.App.ErrWriter)
	if err != nil {
		return err
	}
	defer closer.Close()

	path := c.Args().First()
	if path == "" {
		path = c.String(flagRoster)
	}

	r, err := roster.Load(path)
	if err != nil {
		return err
	}

	err = r.Validate()
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid roster: %v (%s)", err, election.ReasonOf(err)), 1)
	}

	fmt.Fprintf(c.App.Writer, "%d voters:\n", len(r.Voters))
	for _, v := range r.Voters {
		fmt.Fprintf(c.App.Writer, "  %s\n", types.DisplayName(types.NormalizeName(v.Name)))
	}

	fmt.Fprintf(c.App.Writer, "%d candidates:\n", len(r.Candidates))
	for _, name := range r.Candidates {
		fmt.Fprintf(c.App.Writer, "  %s\n", types.DisplayName(types.NormalizeName(name)))
	}

	return nil
}

func hashPasswordAction(c *cli.Context) error {
	password := c.Args().First()
	if password == "" {
		return xerrors.New("a password is required")
	}

	hash, err := admingate.HashPassword(password, 0)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, hash)
	return nil
}
