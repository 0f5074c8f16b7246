package prompt

import (
	"errors"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// SurveyPrompter renders prompts on an interactive terminal.
type SurveyPrompter struct {
	input        terminal.FileReader
	output       terminal.FileWriter
	errorsOutput io.Writer
}

// NewSurveyPrompter binds survey prompts to the provided terminal streams.
func NewSurveyPrompter(input terminal.FileReader, output terminal.FileWriter, errorsOutput io.Writer) *SurveyPrompter {
	return &SurveyPrompter{input: input, output: output, errorsOutput: errorsOutput}
}

// Confirm asks the prompt as free text so that only y or Y confirms.
func (prompter *SurveyPrompter) Confirm(prompt string) (bool, error) {
	response, askError := prompter.Ask(prompt)
	if askError != nil {
		return false, askError
	}
	return IsAffirmative(response), nil
}

// Ask renders an input prompt and returns the trimmed answer.
func (prompter *SurveyPrompter) Ask(prompt string) (string, error) {
	question := &survey.Input{Message: strings.TrimSpace(prompt)}

	var answer string
	askError := survey.AskOne(question, &answer, survey.WithStdio(prompter.input, prompter.output, prompter.errorsOutput))
	if errors.Is(askError, terminal.InterruptErr) {
		return "", ErrPromptInterrupted
	}
	if askError != nil {
		return "", askError
	}
	return strings.TrimSpace(answer), nil
}
