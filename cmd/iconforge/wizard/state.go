// Package wizard provides an interactive TUI for configuring icon generation.
package wizard

import "github.com/mrsinham/iconforge/cmd/iconforge/wizard/types"

// Aliases keep the wizard's public surface in one import for callers while
// the underlying types live in a leaf package the screens can share.
type (
	WizardState  = types.WizardState
	GlobalConfig = types.GlobalConfig
	IconConfig   = types.IconConfig
)
