package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/iconforge/cmd/iconforge/wizard/components"
	"github.com/mrsinham/iconforge/cmd/iconforge/wizard/types"
	"github.com/mrsinham/iconforge/internal/icon"
)

// SummaryAction represents the action selected on the summary screen
type SummaryAction int

const (
	// SummaryActionBack returns to the previous screen
	SummaryActionBack SummaryAction = iota
	// SummaryActionGenerate starts icon generation
	SummaryActionGenerate
	// SummaryActionSaveConfig saves configuration to YAML file
	SummaryActionSaveConfig
	// SummaryActionCancel exits the wizard
	SummaryActionCancel
)

const (
	actionBack       = "back"
	actionGenerate   = "generate"
	actionSaveConfig = "save_config"
	actionCancel     = "cancel"
)

var (
	summaryPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2)

	summaryTitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("63")).
		Bold(true).
		MarginBottom(1)

	summaryLabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	summaryValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Bold(true)

	fileListStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	fileNameStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	cliCommandStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("252")).
		Padding(0, 1)
)

// SummaryScreen displays a summary of wizard configuration before generation
type SummaryScreen struct {
	form      *huh.Form
	state     *types.WizardState
	action    string
	done      bool
	cancelled bool
	width     int
	height    int
}

// NewSummaryScreen creates a new summary screen
func NewSummaryScreen(state *types.WizardState) *SummaryScreen {
	s := &SummaryScreen{
		state:  state,
		action: actionGenerate, // Default action
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("action").
				Title("Select an action").
				Options(
					huh.NewOption("Generate icon files", actionGenerate),
					huh.NewOption("Save configuration to YAML", actionSaveConfig),
					huh.NewOption("Back to edit", actionBack),
					huh.NewOption("Cancel and exit", actionCancel),
				).
				Value(&s.action),
		),
	).WithShowHelp(false)

	return s
}

// Init implements tea.Model
func (s *SummaryScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *SummaryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			// Esc goes back instead of cancelling
			s.action = actionBack
			s.done = true
			return s, nil
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *SummaryScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("SUMMARY - Review Configuration")

	// Build left panel (parameter summary)
	leftPanel := s.buildParameterSummary()

	// Build right panel (file preview)
	rightPanel := s.buildFilePreview()

	// Join panels side by side
	panelWidth := 45
	leftStyled := summaryPanelStyle.Width(panelWidth).Render(leftPanel)
	rightStyled := summaryPanelStyle.Width(panelWidth).Render(rightPanel)
	panels := lipgloss.JoinHorizontal(lipgloss.Top, leftStyled, "  ", rightStyled)

	// Build CLI command section
	cliSection := s.buildCLICommand()

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		panels,
		"",
		cliSection,
		"",
		s.form.View(),
		"",
		"Enter: Select action | Esc: Back",
	)

	return content
}

// buildParameterSummary builds the left panel showing parameter summary
func (s *SummaryScreen) buildParameterSummary() string {
	var sb strings.Builder

	sb.WriteString(summaryTitleStyle.Render("Configuration Summary"))
	sb.WriteString("\n\n")

	fileBytes := int64(0)
	for _, ic := range s.state.Icons {
		w, h := ic.Width, ic.Height
		if w == 0 {
			w = s.state.Global.Width
		}
		if h == 0 {
			h = s.state.Global.Height
		}
		fileBytes += int64(18 + w*h*3)
	}

	params := []struct {
		label string
		value string
	}{
		{"Output Directory", s.state.Global.OutputDir},
		{"Default Size", fmt.Sprintf("%dx%d", s.state.Global.Width, s.state.Global.Height)},
		{"Icons", fmt.Sprintf("%d", len(s.state.Icons))},
		{"Workers", fmt.Sprintf("%d", s.state.Global.Workers)},
		{"Total Output", fmt.Sprintf("%d bytes", fileBytes)},
	}

	for _, p := range params {
		sb.WriteString(summaryLabelStyle.Render(p.label + ": "))
		sb.WriteString(summaryValueStyle.Render(p.value))
		sb.WriteString("\n")
	}

	return sb.String()
}

// buildFilePreview builds the right panel listing the files to be written
func (s *SummaryScreen) buildFilePreview() string {
	var sb strings.Builder

	sb.WriteString(summaryTitleStyle.Render("Files Preview"))
	sb.WriteString("\n\n")

	sb.WriteString(fileNameStyle.Render(s.state.Global.OutputDir + "/"))
	sb.WriteString("\n")

	for i, ic := range s.state.Icons {
		prefix := "├──"
		if i == len(s.state.Icons)-1 {
			prefix = "└──"
		}

		theme := ic.Theme
		if theme == "" || theme == "auto" {
			theme = string(icon.SelectTheme(ic.SeedText))
		}

		name := ic.File
		if name == "" {
			name = fmt.Sprintf("icon_%03d.tga", i+1)
		}

		sb.WriteString(fileListStyle.Render(prefix))
		sb.WriteString(" ")
		sb.WriteString(fileNameStyle.Render(name))
		sb.WriteString(fileListStyle.Render(fmt.Sprintf(" (%s)", theme)))
		sb.WriteString("\n")

		// Limit display for large batches
		if i >= 5 && len(s.state.Icons) > 7 {
			sb.WriteString(fileListStyle.Render("    ... and "))
			sb.WriteString(summaryValueStyle.Render(fmt.Sprintf("%d", len(s.state.Icons)-6)))
			sb.WriteString(fileListStyle.Render(" more icons"))
			sb.WriteString("\n")
			break
		}
	}

	return sb.String()
}

// buildCLICommand builds the CLI command equivalent section
func (s *SummaryScreen) buildCLICommand() string {
	var sb strings.Builder

	sb.WriteString(summaryTitleStyle.Render("Equivalent CLI Command"))
	sb.WriteString("\n\n")

	sb.WriteString(cliCommandStyle.Render(s.generateCLICommand()))

	return sb.String()
}

// generateCLICommand generates the equivalent CLI command from wizard state
func (s *SummaryScreen) generateCLICommand() string {
	// Batches need the config file; show the single-icon form when possible.
	if len(s.state.Icons) == 1 {
		ic := s.state.Icons[0]
		var parts []string
		parts = append(parts, "iconforge")
		if s.state.Global.Width != 256 || s.state.Global.Height != 256 {
			parts = append(parts, fmt.Sprintf("--size %dx%d", s.state.Global.Width, s.state.Global.Height))
		}
		if ic.Theme != "" && ic.Theme != "auto" {
			parts = append(parts, fmt.Sprintf("--theme %s", ic.Theme))
		}
		if ic.Label != "" {
			parts = append(parts, fmt.Sprintf("--label %q", ic.Label))
		}
		parts = append(parts, fmt.Sprintf("%q", ic.SeedText), ic.File)
		return strings.Join(parts, " ")
	}
	return "iconforge --config wizard-config.yaml"
}

// Done returns true if the form was completed
func (s *SummaryScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled
func (s *SummaryScreen) Cancelled() bool {
	return s.cancelled
}

// Action returns the selected action
func (s *SummaryScreen) Action() SummaryAction {
	switch s.action {
	case actionBack:
		return SummaryActionBack
	case actionGenerate:
		return SummaryActionGenerate
	case actionSaveConfig:
		return SummaryActionSaveConfig
	case actionCancel:
		return SummaryActionCancel
	default:
		return SummaryActionGenerate
	}
}
