// Package types holds the wizard configuration model shared by the wizard
// orchestrator and its screens.
package types

// WizardState holds the complete state for the wizard interface.
type WizardState struct {
	Global GlobalConfig
	Icons  []IconConfig
}

// GlobalConfig holds global settings that apply to the entire generation.
type GlobalConfig struct {
	OutputDir string
	Width     int
	Height    int
	NumIcons  int
	Workers   int
}

// IconConfig holds configuration for a single icon.
type IconConfig struct {
	SeedText string
	File     string
	Theme    string // empty = select from seed text keywords
	Label    string
	Width    int // 0 = global default
	Height   int // 0 = global default
}
