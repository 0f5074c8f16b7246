package prompt

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

const affirmativeResponseConstant = "y"

// ErrPromptInterrupted indicates the operator aborted a prompt with Ctrl+C.
var ErrPromptInterrupted = errors.New("prompt interrupted")

// Prompter asks the operator for confirmations and answers.
type Prompter interface {
	Confirm(prompt string) (bool, error)
	Ask(prompt string) (string, error)
}

// IOPrompter reads responses line by line from an io.Reader.
type IOPrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewIOPrompter constructs a prompter from the provided reader and writer.
func NewIOPrompter(input io.Reader, output io.Writer) *IOPrompter {
	return &IOPrompter{reader: bufio.NewReader(input), writer: output}
}

// Confirm writes the prompt and accepts only y or Y as affirmative.
func (prompter *IOPrompter) Confirm(prompt string) (bool, error) {
	response, readError := prompter.Ask(prompt)
	if readError != nil {
		return false, readError
	}
	return IsAffirmative(response), nil
}

// Ask writes the prompt and returns the trimmed line that follows. End of input yields an empty answer.
func (prompter *IOPrompter) Ask(prompt string) (string, error) {
	if prompter.writer != nil {
		if _, writeError := io.WriteString(prompter.writer, prompt); writeError != nil {
			return "", writeError
		}
	}

	response, readError := prompter.reader.ReadString('\n')
	if readError != nil && !errors.Is(readError, io.EOF) {
		return "", readError
	}
	return strings.TrimSpace(response), nil
}

// IsAffirmative reports whether response is a single y or Y.
func IsAffirmative(response string) bool {
	return strings.EqualFold(strings.TrimSpace(response), affirmativeResponseConstant)
}
