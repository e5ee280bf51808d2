package wizard

import (
	"testing"

	"github.com/mrsinham/iconforge/cmd/iconforge/wizard/types"
	"github.com/mrsinham/iconforge/internal/icon"
)

func TestToBatchOptions_FallsBackToGlobalSize(t *testing.T) {
	state := &WizardState{
		Global: types.GlobalConfig{
			OutputDir: "./icons",
			Width:     128,
			Height:    96,
			Workers:   3,
		},
		Icons: []types.IconConfig{
			{SeedText: "web dashboard", File: "dash.tga"},
			{SeedText: "python repl", File: "py.tga", Width: 64, Height: 64},
		},
	}

	opts, err := ToBatchOptions(state)
	if err != nil {
		t.Fatalf("ToBatchOptions failed: %v", err)
	}

	if opts.OutputDir != "./icons" {
		t.Errorf("OutputDir = %s, want ./icons", opts.OutputDir)
	}
	if opts.Workers != 3 {
		t.Errorf("Workers = %d, want 3", opts.Workers)
	}
	if !opts.Quiet {
		t.Error("Expected Quiet to be set for TUI use")
	}
	if len(opts.Icons) != 2 {
		t.Fatalf("Expected 2 icons, got %d", len(opts.Icons))
	}

	// First icon inherits global dimensions
	if opts.Icons[0].Width != 128 || opts.Icons[0].Height != 96 {
		t.Errorf("Icon 0 size = %dx%d, want 128x96", opts.Icons[0].Width, opts.Icons[0].Height)
	}
	// Second icon keeps its own dimensions
	if opts.Icons[1].Width != 64 || opts.Icons[1].Height != 64 {
		t.Errorf("Icon 1 size = %dx%d, want 64x64", opts.Icons[1].Width, opts.Icons[1].Height)
	}
}

func TestToBatchOptions_AutoThemeStaysEmpty(t *testing.T) {
	state := &WizardState{
		Global: types.GlobalConfig{OutputDir: "./icons"},
		Icons: []types.IconConfig{
			{SeedText: "a", Theme: "auto"},
			{SeedText: "b", Theme: ""},
			{SeedText: "c", Theme: "rust"},
		},
	}

	opts, err := ToBatchOptions(state)
	if err != nil {
		t.Fatalf("ToBatchOptions failed: %v", err)
	}

	if opts.Icons[0].Theme != "" {
		t.Errorf("Theme 'auto' should map to empty, got %q", opts.Icons[0].Theme)
	}
	if opts.Icons[1].Theme != "" {
		t.Errorf("Empty theme should stay empty, got %q", opts.Icons[1].Theme)
	}
	if opts.Icons[2].Theme != icon.ThemeRust {
		t.Errorf("Explicit theme should pass through, got %q", opts.Icons[2].Theme)
	}
}

func TestToBatchOptions_InvalidTheme(t *testing.T) {
	state := &WizardState{
		Global: types.GlobalConfig{OutputDir: "./icons"},
		Icons: []types.IconConfig{
			{SeedText: "a", Theme: "sparkle"},
		},
	}

	if _, err := ToBatchOptions(state); err == nil {
		t.Error("Expected error for unknown theme, got nil")
	}
}

func TestToBatchOptions_NoIcons(t *testing.T) {
	state := &WizardState{Global: types.GlobalConfig{OutputDir: "./icons"}}
	if _, err := ToBatchOptions(state); err == nil {
		t.Error("Expected error for empty icon list, got nil")
	}
}

func TestFromOptions(t *testing.T) {
	state := FromOptions(icon.Options{
		SeedText: "voice memo",
		Width:    64,
		Height:   64,
		Theme:    icon.ThemeAudio,
		Label:    "MIC",
	}, "memo.tga", 2)

	if state.Global.Width != 64 || state.Global.Height != 64 {
		t.Errorf("Global size = %dx%d, want 64x64", state.Global.Width, state.Global.Height)
	}
	if state.Global.NumIcons != 1 {
		t.Errorf("NumIcons = %d, want 1", state.Global.NumIcons)
	}
	if state.Global.Workers != 2 {
		t.Errorf("Workers = %d, want 2", state.Global.Workers)
	}
	if len(state.Icons) != 1 {
		t.Fatalf("Expected 1 icon, got %d", len(state.Icons))
	}
	ic := state.Icons[0]
	if ic.SeedText != "voice memo" || ic.File != "memo.tga" || ic.Theme != "audio" || ic.Label != "MIC" {
		t.Errorf("Icon fields wrong: %+v", ic)
	}
}

func TestFromOptions_DefaultsDimensions(t *testing.T) {
	state := FromOptions(icon.Options{SeedText: "plain"}, "plain.tga", 0)
	if state.Global.Width != icon.DefaultDimension || state.Global.Height != icon.DefaultDimension {
		t.Errorf("Global size = %dx%d, want %dx%d",
			state.Global.Width, state.Global.Height, icon.DefaultDimension, icon.DefaultDimension)
	}
}
