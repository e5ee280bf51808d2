package wizard

import (
	"fmt"

	"github.com/mrsinham/iconforge/internal/icon"
)

// ToBatchOptions converts WizardState to icon.BatchOptions for generation.
func ToBatchOptions(s *WizardState) (icon.BatchOptions, error) {
	if len(s.Icons) == 0 {
		return icon.BatchOptions{}, fmt.Errorf("no icons configured")
	}

	items := make([]icon.BatchItem, len(s.Icons))
	for i, ic := range s.Icons {
		width := ic.Width
		if width == 0 {
			width = s.Global.Width
		}
		height := ic.Height
		if height == 0 {
			height = s.Global.Height
		}

		var theme icon.Theme
		if ic.Theme != "" && ic.Theme != "auto" {
			if !icon.IsValidTheme(ic.Theme) {
				return icon.BatchOptions{}, fmt.Errorf("icon %d: unknown theme %q", i+1, ic.Theme)
			}
			theme = icon.Theme(ic.Theme)
		}

		items[i] = icon.BatchItem{
			Options: icon.Options{
				SeedText: ic.SeedText,
				Width:    width,
				Height:   height,
				Theme:    theme,
				Label:    ic.Label,
			},
			File: ic.File,
		}
	}

	return icon.BatchOptions{
		OutputDir: s.Global.OutputDir,
		Workers:   s.Global.Workers,
		Icons:     items,
		Quiet:     true, // suppress output for TUI integration
	}, nil
}

// FromOptions creates a WizardState from a single CLI invocation.
// Used for --save-config to export CLI options as YAML.
func FromOptions(opts icon.Options, outputPath string, workers int) *WizardState {
	width := opts.Width
	if width == 0 {
		width = icon.DefaultDimension
	}
	height := opts.Height
	if height == 0 {
		height = icon.DefaultDimension
	}

	return &WizardState{
		Global: GlobalConfig{
			OutputDir: ".",
			Width:     width,
			Height:    height,
			NumIcons:  1,
			Workers:   workers,
		},
		Icons: []IconConfig{
			{
				SeedText: opts.SeedText,
				File:     outputPath,
				Theme:    string(opts.Theme),
				Label:    opts.Label,
			},
		},
	}
}
