package ui

import (
	"github.com/fatih/color"

	"github.com/Tanuja-Kamble/Singularium-Assignment-task-analyzer/internal/scoring"
)

// Sprint color functions for building styled strings.
var (
	Bold        = color.New(color.Bold).SprintFunc()
	Dim         = color.New(color.Faint).SprintFunc()
	Cyan        = color.New(color.FgCyan).SprintFunc()
	Green       = color.New(color.FgGreen).SprintFunc()
	Red         = color.New(color.FgRed).SprintFunc()
	Yellow      = color.New(color.FgYellow).SprintFunc()
	Magenta     = color.New(color.FgMagenta).SprintFunc()
	BoldCyan    = color.New(color.Bold, color.FgCyan).SprintFunc()
	BoldGreen   = color.New(color.Bold, color.FgGreen).SprintFunc()
	BoldRed     = color.New(color.Bold, color.FgRed).SprintFunc()
	BoldYellow  = color.New(color.Bold, color.FgYellow).SprintFunc()
	BoldMagenta = color.New(color.Bold, color.FgMagenta).SprintFunc()
	BoldWhite   = color.New(color.Bold, color.FgWhite).SprintFunc()
)

// TierLabel renders a priority tier in its conventional color.
func TierLabel(tier scoring.Tier) string {
	switch tier {
	case scoring.TierCritical:
		return BoldRed(string(tier))
	case scoring.TierHigh:
		return BoldYellow(string(tier))
	case scoring.TierMedium:
		return BoldCyan(string(tier))
	default:
		return Dim(string(tier))
	}
}
