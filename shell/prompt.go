package shell

import (
	"errors"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Prompter asks the operator for input. Every answer is an untyped string or
// a yes/no, validation is up to the election engine.
type Prompter interface {
	Input(message string) (string, error)
	Password(message string) (string, error)
	Select(message string, options []string) (string, error)
	Confirm(message string) (bool, error)
}

// NewSurveyPrompter returns a Prompter reading from a terminal.
func NewSurveyPrompter(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) Prompter {
	return &surveyPrompter{
		opts: []survey.AskOpt{survey.WithStdio(in, out, errOut)},
	}
}

// surveyPrompter implements Prompter
type surveyPrompter struct {
	opts []survey.AskOpt
}

// Input implements Prompter
func (p *surveyPrompter) Input(message string) (string, error) {
	answer := ""
	err := survey.AskOne(&survey.Input{Message: message}, &answer, p.opts...)
	return answer, err
}

// Password implements Prompter
func (p *surveyPrompter) Password(message string) (string, error) {
	answer := ""
	err := survey.AskOne(&survey.Password{Message: message}, &answer, p.opts...)
	return answer, err
}

// Select implements Prompter
func (p *surveyPrompter) Select(message string, options []string) (string, error) {
	answer := ""
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: 10,
	}
	err := survey.AskOne(prompt, &answer, p.opts...)
	return answer, err
}

// Confirm implements Prompter
func (p *surveyPrompter) Confirm(message string) (bool, error) {
	answer := false
	err := survey.AskOne(&survey.Confirm{Message: message}, &answer, p.opts...)
	return answer, err
}

// IsInterrupt tells whether the operator pressed Ctrl-C during a prompt.
func IsInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr)
}
