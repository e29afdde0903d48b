// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dots/pkg/commands"
	"github.com/arthur-debert/dots/pkg/linker"
)

// Renderer writes one line per entry in the classic dots format:
//
//	ok   .vimrc
//	/home/u/.bashrc -> /home/u/dotfiles/.bashrc
//	/home/u/.zshrc unlinked
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders a command result as plain text
func (r *Renderer) RenderResult(result *commands.Result) error {
	if result == nil {
		return nil
	}

	for _, entry := range result.Entries {
		if _, err := fmt.Fprintln(r.output, entry.String()); err != nil {
			return err
		}
	}

	if result.Link != nil {
		for _, item := range result.Link.Items {
			if _, err := fmt.Fprintln(r.output, itemLine(result.Link, item)); err != nil {
				return err
			}
		}
	}

	return nil
}

func itemLine(res *linker.Result, item linker.Item) string {
	var line string
	switch {
	case !item.Success:
		return fmt.Sprintf("failed: %s", item.Error)
	case res.Action == linker.ActionUnlink:
		line = fmt.Sprintf("%s unlinked", item.Path)
	default:
		line = fmt.Sprintf("%s -> %s", item.Path, item.Source)
	}
	if res.DryRun {
		line += " (dry run)"
	}
	return line
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
