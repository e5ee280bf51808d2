package screens

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/iconforge/cmd/iconforge/wizard/components"
	"github.com/mrsinham/iconforge/cmd/iconforge/wizard/types"
)

// GlobalScreen is the first wizard screen for global configuration
type GlobalScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	config    *types.GlobalConfig
	width     int
	height    int
	done      bool
	cancelled bool

	// String versions for form binding (huh binds to strings)
	widthStr    string
	heightStr   string
	numIconsStr string
	workersStr  string
}

// NewGlobalScreen creates a new global configuration screen
func NewGlobalScreen(config *types.GlobalConfig) *GlobalScreen {
	// Set defaults if not provided
	if config.OutputDir == "" {
		config.OutputDir = "icons"
	}
	if config.Width == 0 {
		config.Width = 256
	}
	if config.Height == 0 {
		config.Height = 256
	}
	if config.NumIcons == 0 {
		config.NumIcons = 1
	}

	s := &GlobalScreen{
		helpPanel:   components.NewHelpPanel(),
		config:      config,
		widthStr:    strconv.Itoa(config.Width),
		heightStr:   strconv.Itoa(config.Height),
		numIconsStr: strconv.Itoa(config.NumIcons),
		workersStr:  strconv.Itoa(config.Workers),
	}

	// Create form fields
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("output").
				Title("Output Directory").
				Value(&config.OutputDir).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("output directory is required")
					}
					return nil
				}),

			huh.NewInput().
				Key("width").
				Title("Icon Width").
				Value(&s.widthStr).
				Validate(validateDimension),

			huh.NewInput().
				Key("height").
				Title("Icon Height").
				Value(&s.heightStr).
				Validate(validateDimension),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("num_icons").
				Title("Number of Icons").
				Value(&s.numIconsStr).
				Validate(validatePositiveInt),

			huh.NewInput().
				Key("workers").
				Title("Workers (0 = CPU cores)").
				Value(&s.workersStr).
				Validate(validateNonNegativeInt),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n <= 0 {
		return fmt.Errorf("must be greater than 0")
	}
	return nil
}

func validateNonNegativeInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n < 0 {
		return fmt.Errorf("must be 0 or greater")
	}
	return nil
}

func validateDimension(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n <= 0 {
		return fmt.Errorf("must be greater than 0")
	}
	if n > 65535 {
		return fmt.Errorf("must be at most 65535")
	}
	return nil
}

// Init implements tea.Model
func (s *GlobalScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *GlobalScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			s.cancelled = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.helpPanel.SetSize(msg.Width/3, msg.Height/2)
	}

	// Update form
	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	// Update help panel based on focused field
	focused := s.form.GetFocusedField()
	if focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	// Check if form is complete
	if s.form.State == huh.StateCompleted {
		s.done = true
		s.syncConfigFromForm()
	}

	return s, cmd
}

// syncConfigFromForm parses form values back to config
func (s *GlobalScreen) syncConfigFromForm() {
	// Parse string values back to ints
	if n, err := strconv.Atoi(s.widthStr); err == nil {
		s.config.Width = n
	}
	if n, err := strconv.Atoi(s.heightStr); err == nil {
		s.config.Height = n
	}
	if n, err := strconv.Atoi(s.numIconsStr); err == nil {
		s.config.NumIcons = n
	}
	if n, err := strconv.Atoi(s.workersStr); err == nil {
		s.config.Workers = n
	}
}

// View implements tea.Model
func (s *GlobalScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("ICONFORGE WIZARD - Global Configuration")

	// Layout: form on left, help panel on right
	formView := s.form.View()
	helpView := s.helpPanel.View()

	// Simple vertical layout for now
	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		formView,
		"",
		helpView,
		"",
		"Tab: Next field | Enter: Submit | Esc: Cancel",
	)

	return content
}

// Done returns true if the form was completed
func (s *GlobalScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled
func (s *GlobalScreen) Cancelled() bool {
	return s.cancelled
}

// Config returns the configured global settings
func (s *GlobalScreen) Config() *types.GlobalConfig {
	return s.config
}
