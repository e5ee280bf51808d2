package wizard

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/iconforge/cmd/iconforge/wizard/components"
	"github.com/mrsinham/iconforge/cmd/iconforge/wizard/screens"
	"github.com/mrsinham/iconforge/internal/icon"
)

// Phase represents the current phase/screen of the wizard.
type Phase int

const (
	PhaseGlobal Phase = iota
	PhaseIcon
	PhaseBulkIcon // For remaining icons
	PhaseSummary
	PhaseProgress
	PhaseComplete
	PhaseError
	PhaseSaveConfig
)

// Wizard is the main orchestrator for the wizard interface.
type Wizard struct {
	state *WizardState

	// Current phase
	phase Phase

	// Screen instances
	globalScreen     *screens.GlobalScreen
	iconScreen       *screens.IconScreen
	bulkIconScreen   *screens.BulkIconScreen
	summaryScreen    *screens.SummaryScreen
	progressScreen   *screens.ProgressScreen
	completionScreen *screens.CompletionScreen
	errorScreen      *screens.ErrorScreen

	// Save config form
	saveConfigForm *huh.Form
	configPath     string

	// Tracking index for iteration
	currentIconIndex int

	// Window size
	width  int
	height int

	// Final state
	cancelled bool
	finished  bool
	err       error
}

// NewWizard creates a new wizard with default or loaded state.
func NewWizard(state *WizardState) *Wizard {
	if state == nil {
		state = &WizardState{
			Global: GlobalConfig{
				OutputDir: "icons",
				Width:     icon.DefaultDimension,
				Height:    icon.DefaultDimension,
				NumIcons:  1,
			},
		}
	}

	w := &Wizard{
		state: state,
		phase: PhaseGlobal,
	}

	// Initialize the global screen
	w.globalScreen = screens.NewGlobalScreen(&w.state.Global)

	return w
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return w.globalScreen.Init()
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window size for all phases
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = wsm.Width
		w.height = wsm.Height
	}

	switch w.phase {
	case PhaseGlobal:
		return w.updateGlobal(msg)
	case PhaseIcon:
		return w.updateIcon(msg)
	case PhaseBulkIcon:
		return w.updateBulkIcon(msg)
	case PhaseSummary:
		return w.updateSummary(msg)
	case PhaseSaveConfig:
		return w.updateSaveConfig(msg)
	case PhaseProgress:
		return w.updateProgress(msg)
	case PhaseComplete:
		return w.updateComplete(msg)
	case PhaseError:
		return w.updateError(msg)
	}

	return w, nil
}

// View implements tea.Model.
func (w *Wizard) View() string {
	switch w.phase {
	case PhaseGlobal:
		return w.globalScreen.View()
	case PhaseIcon:
		return w.iconScreen.View()
	case PhaseBulkIcon:
		return w.bulkIconScreen.View()
	case PhaseSummary:
		return w.summaryScreen.View()
	case PhaseSaveConfig:
		return w.viewSaveConfig()
	case PhaseProgress:
		return w.progressScreen.View()
	case PhaseComplete:
		return w.completionScreen.View()
	case PhaseError:
		return w.errorScreen.View()
	}

	return ""
}

// updateGlobal handles updates in the global configuration phase.
func (w *Wizard) updateGlobal(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.globalScreen.Update(msg)
	if gs, ok := model.(*screens.GlobalScreen); ok {
		w.globalScreen = gs
	}

	if w.globalScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.globalScreen.Done() {
		w.initializeIcons()
		w.transitionToIcon(0)
		return w, w.iconScreen.Init()
	}

	return w, cmd
}

// initializeIcons creates empty icon structures based on global config.
func (w *Wizard) initializeIcons() {
	numIcons := w.state.Global.NumIcons
	if numIcons <= 0 {
		numIcons = 1
	}
	if len(w.state.Icons) < numIcons {
		icons := make([]IconConfig, numIcons)
		copy(icons, w.state.Icons)
		w.state.Icons = icons
	} else {
		w.state.Icons = w.state.Icons[:numIcons]
	}
}

// transitionToIcon starts icon configuration for the given index.
func (w *Wizard) transitionToIcon(index int) {
	w.currentIconIndex = index
	w.phase = PhaseIcon
	w.iconScreen = screens.NewIconScreen(
		&w.state.Icons[index],
		index,
		len(w.state.Icons),
	)
}

// updateIcon handles updates in the icon configuration phase.
func (w *Wizard) updateIcon(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.iconScreen.Update(msg)
	if is, ok := model.(*screens.IconScreen); ok {
		w.iconScreen = is
	}

	if w.iconScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.iconScreen.Done() {
		// Check if there are more icons to configure
		if w.currentIconIndex == 0 && len(w.state.Icons) > 1 {
			// Show bulk icon choice
			w.phase = PhaseBulkIcon
			w.bulkIconScreen = screens.NewBulkIconScreen(len(w.state.Icons) - 1)
			return w, w.bulkIconScreen.Init()
		}

		// Move to next icon or summary
		return w.advanceToNextIconOrSummary()
	}

	return w, cmd
}

// updateBulkIcon handles updates in the bulk icon choice phase.
func (w *Wizard) updateBulkIcon(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.bulkIconScreen.Update(msg)
	if bis, ok := model.(*screens.BulkIconScreen); ok {
		w.bulkIconScreen = bis
	}

	if w.bulkIconScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.bulkIconScreen.Done() {
		if w.bulkIconScreen.Choice() == screens.BulkGenerate {
			// Generate all remaining icons automatically
			w.generateRemainingIcons()
			return w.transitionToSummary()
		}
		// Configure each icon individually
		w.transitionToIcon(1)
		return w, w.iconScreen.Init()
	}

	return w, cmd
}

// sampleSeeds provides default seed texts for auto-generated icons. Variety
// matters more than meaning here; each hits a different theme keyword.
var sampleSeeds = []string{
	"rust build dashboard",
	"python notebook",
	"team chat client",
	"budget tracker",
	"house listing browser",
	"podcast sound board",
	"photo camera roll",
	"web link shortener",
	"pokemon collection",
	"ai model playground",
}

// generateRemainingIcons generates default values for icons after the first.
func (w *Wizard) generateRemainingIcons() {
	for i := 1; i < len(w.state.Icons); i++ {
		if w.state.Icons[i].SeedText == "" {
			w.state.Icons[i].SeedText = fmt.Sprintf("%s %d", sampleSeeds[i%len(sampleSeeds)], i+1)
		}
		if w.state.Icons[i].File == "" {
			w.state.Icons[i].File = fmt.Sprintf("icon_%03d.tga", i+1)
		}
	}
}

// advanceToNextIconOrSummary moves to the next icon or shows summary.
func (w *Wizard) advanceToNextIconOrSummary() (tea.Model, tea.Cmd) {
	if w.currentIconIndex+1 < len(w.state.Icons) {
		w.transitionToIcon(w.currentIconIndex + 1)
		return w, w.iconScreen.Init()
	}

	// All icons configured, show summary
	return w.transitionToSummary()
}

// transitionToSummary moves to the summary screen.
func (w *Wizard) transitionToSummary() (tea.Model, tea.Cmd) {
	w.phase = PhaseSummary
	w.summaryScreen = screens.NewSummaryScreen(w.state)
	return w, w.summaryScreen.Init()
}

// updateSummary handles updates in the summary phase.
func (w *Wizard) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.summaryScreen.Update(msg)
	if ss, ok := model.(*screens.SummaryScreen); ok {
		w.summaryScreen = ss
	}

	if w.summaryScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.summaryScreen.Done() {
		switch w.summaryScreen.Action() {
		case screens.SummaryActionBack:
			// Go back to the first icon
			w.transitionToIcon(0)
			return w, w.iconScreen.Init()

		case screens.SummaryActionGenerate:
			return w.startGeneration()

		case screens.SummaryActionSaveConfig:
			return w.transitionToSaveConfig()

		case screens.SummaryActionCancel:
			w.cancelled = true
			return w, tea.Quit
		}
	}

	return w, cmd
}

// transitionToSaveConfig shows the save config dialog.
func (w *Wizard) transitionToSaveConfig() (tea.Model, tea.Cmd) {
	w.phase = PhaseSaveConfig
	w.configPath = "wizard-config.yaml"

	w.saveConfigForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("config_path").
				Title("Save configuration to").
				Description("Enter the path for the YAML config file").
				Value(&w.configPath).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("path is required")
					}
					return nil
				}),
		),
	).WithShowHelp(false)

	return w, w.saveConfigForm.Init()
}

// updateSaveConfig handles updates in the save config phase.
func (w *Wizard) updateSaveConfig(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			// Go back to summary
			return w.transitionToSummary()
		case "ctrl+c":
			w.cancelled = true
			return w, tea.Quit
		}
	}

	form, cmd := w.saveConfigForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.saveConfigForm = f
	}

	if w.saveConfigForm.State == huh.StateCompleted {
		// Save the config
		if err := SaveToYAML(w.state, w.configPath); err != nil {
			w.err = err
			w.phase = PhaseError
			w.errorScreen = screens.NewErrorScreen(err)
			return w, nil
		}

		// Go back to summary
		return w.transitionToSummary()
	}

	return w, cmd
}

// viewSaveConfig renders the save config dialog.
func (w *Wizard) viewSaveConfig() string {
	title := components.TitleStyle.Render("Save Configuration")

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		w.saveConfigForm.View(),
		"",
		"Enter: Save | Esc: Back",
	)

	return content
}

// startGeneration begins the icon generation process.
func (w *Wizard) startGeneration() (tea.Model, tea.Cmd) {
	w.phase = PhaseProgress
	w.progressScreen = screens.NewProgressScreen(len(w.state.Icons))

	// Run generation in the command and report the outcome as a message
	return w, func() tea.Msg {
		startTime := time.Now()

		opts, err := ToBatchOptions(w.state)
		if err != nil {
			return screens.ErrorMsg{Error: err}
		}

		files, err := icon.GenerateBatch(opts)
		if err != nil {
			return screens.ErrorMsg{Error: err}
		}

		// Calculate total size from written files
		var totalSize int64
		_ = filepath.Walk(opts.OutputDir, func(path string, info os.FileInfo, err error) error {
			if err == nil && !info.IsDir() {
				totalSize += info.Size()
			}
			return nil
		})

		var firstFile string
		if len(files) > 0 {
			firstFile = files[0].Path
		}

		return screens.CompletionMsg{
			TotalFiles: len(files),
			TotalSize:  totalSize,
			Duration:   time.Since(startTime),
			OutputDir:  opts.OutputDir,
			FirstFile:  firstFile,
		}
	}
}

// updateProgress handles updates in the progress phase.
func (w *Wizard) updateProgress(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case screens.ProgressMsg:
		w.progressScreen.SetProgress(msg.Current, msg.Total, msg.Path)
		return w, nil

	case screens.CompletionMsg:
		w.phase = PhaseComplete
		w.completionScreen = screens.NewCompletionScreen(msg)
		return w, nil

	case screens.ErrorMsg:
		w.phase = PhaseError
		w.err = msg.Error
		w.errorScreen = screens.NewErrorScreen(msg.Error)
		return w, nil
	}

	model, cmd := w.progressScreen.Update(msg)
	if ps, ok := model.(*screens.ProgressScreen); ok {
		w.progressScreen = ps
	}

	if w.progressScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	return w, cmd
}

// updateComplete handles updates in the completion phase.
func (w *Wizard) updateComplete(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.completionScreen.Update(msg)
	if cs, ok := model.(*screens.CompletionScreen); ok {
		w.completionScreen = cs
	}

	if w.completionScreen.Done() {
		w.finished = true
		return w, tea.Quit
	}

	return w, cmd
}

// updateError handles updates in the error phase.
func (w *Wizard) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.errorScreen.Update(msg)
	if es, ok := model.(*screens.ErrorScreen); ok {
		w.errorScreen = es
	}

	if w.errorScreen.Done() {
		w.finished = true
		return w, tea.Quit
	}

	return w, cmd
}

// Run starts the interactive wizard for icon generation configuration.
// If fromConfig is provided, it loads the configuration from that YAML file.
func Run(fromConfig string) error {
	var state *WizardState

	// Load config if provided
	if fromConfig != "" {
		absPath, err := filepath.Abs(fromConfig)
		if err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}

		loaded, err := LoadFromYAML(absPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		state = loaded
	}

	// Create and run the wizard
	wizard := NewWizard(state)
	p := tea.NewProgram(wizard, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	// Check final state
	if w, ok := finalModel.(*Wizard); ok {
		if w.cancelled {
			return nil // User cancelled, not an error
		}
		if w.err != nil {
			return w.err
		}
	}

	return nil
}
