package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/iconforge/cmd/iconforge/wizard/components"
	"github.com/mrsinham/iconforge/cmd/iconforge/wizard/types"
	"github.com/mrsinham/iconforge/internal/icon"
)

// IconScreen configures a single icon
type IconScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	icon      *types.IconConfig
	iconIndex int // 0-based index
	total     int // total number of icons
	done      bool
	cancelled bool
	width     int
	height    int
}

// NewIconScreen creates a new icon configuration screen
func NewIconScreen(ic *types.IconConfig, index, total int) *IconScreen {
	// Set defaults if not provided
	if ic.File == "" {
		ic.File = fmt.Sprintf("icon_%03d.tga", index+1)
	}
	if ic.Theme == "" {
		ic.Theme = "auto"
	}

	s := &IconScreen{
		helpPanel: components.NewHelpPanel(),
		icon:      ic,
		iconIndex: index,
		total:     total,
	}

	themeOptions := []huh.Option[string]{
		huh.NewOption("Auto (from seed text keywords)", "auto"),
	}
	for _, t := range icon.AllThemes() {
		themeOptions = append(themeOptions, huh.NewOption(string(t), string(t)))
	}

	// Create form
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("seed_text").
				Title("Seed Text").
				Description("Same text = same icon, always").
				Value(&ic.SeedText).
				Validate(func(str string) error {
					if str == "" {
						return fmt.Errorf("seed text is required")
					}
					return nil
				}),

			huh.NewInput().
				Key("file").
				Title("File Name").
				Value(&ic.File).
				Validate(func(str string) error {
					if str == "" {
						return fmt.Errorf("file name is required")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("theme").
				Title("Theme").
				Options(themeOptions...).
				Value(&ic.Theme),

			huh.NewInput().
				Key("label").
				Title("Label (optional)").
				Value(&ic.Label),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

// Init implements tea.Model
func (s *IconScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *IconScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	focused := s.form.GetFocusedField()
	if focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *IconScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render(
		fmt.Sprintf("ICON %d/%d", s.iconIndex+1, s.total))

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		"Tab: Next field | Enter: Submit | Esc: Cancel",
	)

	return content
}

// Done returns true if the form was completed
func (s *IconScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled
func (s *IconScreen) Cancelled() bool {
	return s.cancelled
}

// BulkChoice represents the user's choice on the bulk icon screen
type BulkChoice int

const (
	// BulkGenerate generates all remaining icons automatically
	BulkGenerate BulkChoice = iota
	// BulkConfigureEach steps through each remaining icon's screen
	BulkConfigureEach
)

const (
	bulkChoiceGenerate  = "generate"
	bulkChoiceConfigure = "configure"
)

// BulkIconScreen asks how to handle the remaining icons after the first
type BulkIconScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	remaining int
	choice    string
	done      bool
	cancelled bool
	width     int
	height    int
}

// NewBulkIconScreen creates a new bulk icon choice screen
func NewBulkIconScreen(remaining int) *BulkIconScreen {
	s := &BulkIconScreen{
		helpPanel: components.NewHelpPanel(),
		remaining: remaining,
		choice:    bulkChoiceGenerate,
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("bulk_choice").
				Title(fmt.Sprintf("How should the remaining %d icons be configured?", remaining)).
				Options(
					huh.NewOption("Generate automatically", bulkChoiceGenerate),
					huh.NewOption("Configure each one", bulkChoiceConfigure),
				).
				Value(&s.choice),
		),
	).WithShowHelp(false)

	return s
}

// Init implements tea.Model
func (s *BulkIconScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *BulkIconScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	focused := s.form.GetFocusedField()
	if focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *BulkIconScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("REMAINING ICONS")

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		s.form.View(),
		"",
		s.helpPanel.View(),
		"",
		"Enter: Select | Esc: Cancel",
	)

	return content
}

// Done returns true if the form was completed
func (s *BulkIconScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled
func (s *BulkIconScreen) Cancelled() bool {
	return s.cancelled
}

// Choice returns the selected bulk handling choice
func (s *BulkIconScreen) Choice() BulkChoice {
	if s.choice == bulkChoiceConfigure {
		return BulkConfigureEach
	}
	return BulkGenerate
}
