package terminal

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/dots/pkg/types"
)

// Badge kinds for results that are not entry statuses
const (
	badgeDone   = "done"
	badgeFailed = "failed"
	badgeDryRun = "dry"
)

// statusStyle returns the pterm style for an entry status
func statusStyle(status types.Status) *pterm.Style {
	switch status {
	case types.StatusLinked:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgBlack)
	case types.StatusConflict:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	case types.StatusMissing:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

func outcomeStyle(kind string) *pterm.Style {
	switch kind {
	case badgeDone:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgBlack)
	case badgeFailed:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	}
}

// badge pads label to a fixed width so columns line up
func badge(style *pterm.Style, label string) string {
	return style.Sprint(fmt.Sprintf(" %-6s ", label))
}

func statusBadge(status types.Status) string {
	return badge(statusStyle(status), string(status))
}

func outcomeBadge(kind string) string {
	return badge(outcomeStyle(kind), kind)
}
