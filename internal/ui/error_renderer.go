package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/temirov/git-workflow/internal/workflow"
)

const (
	errorPrefixConstant       = "-----> ERROR:"
	errorLineTemplateConstant = "%s %s\n"
	hintLineTemplateConstant  = "       %s\n"
)

// ErrorRenderer prints failed verbs as a prefixed error line followed by the remediation hint, when one exists.
type ErrorRenderer struct {
	output io.Writer
	styles Styles
}

// NewErrorRenderer constructs a renderer writing to output.
func NewErrorRenderer(output io.Writer) *ErrorRenderer {
	if output == nil {
		output = io.Discard
	}
	return &ErrorRenderer{output: output, styles: NewStyles(output)}
}

// Render writes err and its hint.
func (renderer *ErrorRenderer) Render(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(renderer.output, errorLineTemplateConstant, renderer.styles.Error.Render(errorPrefixConstant), strings.TrimSpace(err.Error()))
	if hint := workflow.HintFor(err); len(hint) > 0 {
		fmt.Fprintf(renderer.output, hintLineTemplateConstant, renderer.styles.Hint.Render(hint))
	}
}
