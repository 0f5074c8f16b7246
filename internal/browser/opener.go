package browser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/temirov/git-workflow/internal/execshell"
)

const (
	addressRequiredMessageConstant    = "browser address must be provided"
	executorMissingMessageConstant    = "browser opener requires a command executor"
	manualOpenTemplateConstant        = "Open this URL in your browser: %s\n"
	copiedToClipboardMessageConstant  = "The URL was copied to the clipboard.\n"
	openingTemplateConstant           = "Opening %s\n"
	launchFailedLogMessageConstant    = "browser launcher failed"
	clipboardFailedLogMessageConstant = "clipboard unavailable"
	logFieldAddressConstant           = "address"
)

// ErrAddressRequired indicates Open was called with an empty address.
var ErrAddressRequired = errors.New(addressRequiredMessageConstant)

// ErrExecutorNotConfigured indicates the opener was asked to launch a browser without an executor.
var ErrExecutorNotConfigured = errors.New(executorMissingMessageConstant)

// CommandExecutor runs the platform launcher.
type CommandExecutor interface {
	Execute(executionContext context.Context, command execshell.ShellCommand) (execshell.ExecutionResult, error)
}

// ClipboardWriter stores text on the system clipboard.
type ClipboardWriter func(text string) error

// Options configures an Opener.
type Options struct {
	// LaunchBrowser disables the platform launcher when false; the URL is then only printed and copied.
	LaunchBrowser   bool
	ClipboardWriter ClipboardWriter
}

// Opener hands compare URLs to the operator.
type Opener struct {
	logger          *zap.Logger
	executor        CommandExecutor
	output          io.Writer
	launchBrowser   bool
	clipboardWriter ClipboardWriter
}

// NewOpener constructs an Opener writing fallback instructions to output.
func NewOpener(logger *zap.Logger, executor CommandExecutor, output io.Writer, options Options) (*Opener, error) {
	if executor == nil && options.LaunchBrowser {
		return nil, ErrExecutorNotConfigured
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if output == nil {
		output = io.Discard
	}
	clipboardWriter := options.ClipboardWriter
	if clipboardWriter == nil {
		clipboardWriter = clipboard.WriteAll
	}
	return &Opener{
		logger:          logger,
		executor:        executor,
		output:          output,
		launchBrowser:   options.LaunchBrowser,
		clipboardWriter: clipboardWriter,
	}, nil
}

// Open launches the default browser on address. A launcher failure is not an error:
// the URL is printed for the operator and copied to the clipboard instead.
func (opener *Opener) Open(executionContext context.Context, address string) error {
	trimmedAddress := strings.TrimSpace(address)
	if len(trimmedAddress) == 0 {
		return ErrAddressRequired
	}

	if opener.launchBrowser {
		if _, writeError := fmt.Fprintf(opener.output, openingTemplateConstant, trimmedAddress); writeError != nil {
			return writeError
		}
		_, launchError := opener.executor.Execute(executionContext, launcherCommand(trimmedAddress))
		if launchError == nil {
			return nil
		}
		opener.logger.Warn(launchFailedLogMessageConstant, zap.String(logFieldAddressConstant, trimmedAddress), zap.Error(launchError))
	}

	return opener.printFallback(trimmedAddress)
}

func (opener *Opener) printFallback(address string) error {
	if _, writeError := fmt.Fprintf(opener.output, manualOpenTemplateConstant, address); writeError != nil {
		return writeError
	}
	if clipboardError := opener.clipboardWriter(address); clipboardError != nil {
		opener.logger.Debug(clipboardFailedLogMessageConstant, zap.Error(clipboardError))
		return nil
	}
	_, writeError := io.WriteString(opener.output, copiedToClipboardMessageConstant)
	return writeError
}
