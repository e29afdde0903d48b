// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/dots/pkg/backend"
	"github.com/arthur-debert/dots/pkg/commands"
	"github.com/arthur-debert/dots/pkg/linker"
	"github.com/arthur-debert/dots/pkg/types"
	"github.com/arthur-debert/dots/pkg/ui/styles"
)

// Renderer draws status badges and styled paths
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders a command result with rich terminal formatting
func (r *Renderer) RenderResult(result *commands.Result) error {
	if result == nil {
		return nil
	}

	var b strings.Builder

	if result.Entries != nil {
		b.WriteString(r.header(result.Context))
		b.WriteString("\n")
		for _, entry := range result.Entries {
			b.WriteString(entryLine(entry))
			b.WriteString("\n")
		}
		b.WriteString(styles.Render("Summary", entrySummary(result.Entries)))
		b.WriteString("\n")
	}

	if result.Link != nil {
		for _, item := range result.Link.Items {
			b.WriteString(itemLine(result.Link, item))
			b.WriteString("\n")
		}
		b.WriteString(styles.Render("Summary", linkSummary(result.Link)))
		b.WriteString("\n")
	}

	if result.Sync != nil {
		for _, step := range result.Sync.Steps {
			b.WriteString(stepLine(step))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

func (r *Renderer) header(rc types.RepositoryContext) string {
	return styles.Render("Header",
		fmt.Sprintf("%s → %s", rc.Root, rc.TargetDir))
}

func entryLine(e types.Entry) string {
	line := statusBadge(e.Status) + " " + styles.Render("FilePath", e.Name)
	if e.Status == types.StatusLinked && !e.PointsToSource() {
		dest := e.LinkDest
		if dest == "" {
			dest = "?"
		}
		line += " " + styles.Render("Muted", "→ "+dest)
	}
	return line
}

func itemLine(res *linker.Result, item linker.Item) string {
	if !item.Success {
		return outcomeBadge(badgeFailed) + " " + styles.Render("Error", item.Error)
	}

	kind := badgeDone
	if res.DryRun {
		kind = badgeDryRun
	}

	if res.Action == linker.ActionUnlink {
		return outcomeBadge(kind) + " " + styles.Render("FilePath", item.Path) + " " + styles.Render("Muted", "unlinked")
	}
	return outcomeBadge(kind) + " " + styles.Render("FilePath", item.Path) + " " + styles.Render("Muted", "→ "+item.Source)
}

func stepLine(step backend.StepResult) string {
	if step.Success {
		return outcomeBadge(badgeDone) + " " + step.Step.CommandLine()
	}
	return outcomeBadge(badgeFailed) + " " + styles.Render("Error", step.Step.CommandLine())
}

func entrySummary(entries []types.Entry) string {
	return fmt.Sprintf("%d linked, %d missing, %d conflicts",
		len(types.FilterByStatus(entries, types.StatusLinked)),
		len(types.FilterByStatus(entries, types.StatusMissing)),
		len(types.FilterByStatus(entries, types.StatusConflict)))
}

func linkSummary(res *linker.Result) string {
	verb := "linked"
	if res.Action == linker.ActionUnlink {
		verb = "unlinked"
	}
	s := fmt.Sprintf("%d %s, %d failed", len(res.Succeeded()), verb, len(res.Items)-len(res.Succeeded()))
	if res.DryRun {
		s += " " + styles.Render("DryRun", "(dry run, nothing changed)")
	}
	return s
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, styles.Render("Error", "Error:")+" "+err.Error())
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
