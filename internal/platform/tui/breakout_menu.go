package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// difficultyOption is one row of the difficulty picker.
type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
}

var difficultyOptions = []difficultyOption{
	{"", "Config file"},
	{config.DifficultyEasy, "Easy (wide paddle, slow ramp)"},
	{config.DifficultyNormal, "Normal"},
	{config.DifficultyHard, "Hard (narrow paddle, fast ramp)"},
	{config.DifficultyFixed, "Fixed (no speed-up)"},
}

// DifficultyModel lets users choose a difficulty preset before a session.
type DifficultyModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	choosing  bool
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a new difficulty selection model.
func NewDifficultyModel(width, height int) DifficultyModel {
	return DifficultyModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(difficultyOptions)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the difficulty list.
func (m DifficultyModel) View() string {
	if m.quitting || !m.choosing || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("B R E A K O U T", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, opt.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset and whether a choice was made.
// An empty preset keeps whatever the config file says.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	if m.choosing || m.quitting || m.back {
		return "", false
	}
	return difficultyOptions[m.cursor].preset, true
}

// RunDifficultySelector runs the difficulty picker.
// ok is false if the user backed out or quit.
func RunDifficultySelector(cfg core.RuntimeConfig) (preset config.DifficultyPreset, ok bool, err error) {
	p := tea.NewProgram(
		NewDifficultyModel(cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isModel := finalModel.(DifficultyModel)
	if !isModel {
		return "", false, nil
	}

	preset, ok = m.Selected()
	return preset, ok, nil
}
