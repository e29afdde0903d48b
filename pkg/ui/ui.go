// Package ui renders command results for people and for scripts.
// It supports terminal (rich), text (plain) and JSON output formats.
package ui

import (
	"io"

	"github.com/arthur-debert/dots/pkg/commands"
	"github.com/arthur-debert/dots/pkg/errors"
	"github.com/arthur-debert/dots/pkg/ui/json"
	"github.com/arthur-debert/dots/pkg/ui/terminal"
	"github.com/arthur-debert/dots/pkg/ui/text"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders the outcome of a dispatched command
	RenderResult(result *commands.Result) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format, resolving FormatAuto against output
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch Resolve(format, output) {
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
