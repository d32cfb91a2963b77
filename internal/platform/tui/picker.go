package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var (
	pickerTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	pickerCursor     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	pickerHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// DifficultyChoice is the result of the difficulty picker.
type DifficultyChoice struct {
	Level int  // 1-10
	Fixed bool // keep the base speed for the whole game
}

type pickerItem struct {
	label  string
	choice DifficultyChoice
}

// PickerModel lets the player choose a difficulty before the game starts.
type PickerModel struct {
	items    []pickerItem
	cursor   int
	width    int
	height   int
	selected *DifficultyChoice
	quitting bool
}

// NewPickerModel creates a picker with the cursor on the given level.
func NewPickerModel(level, width, height int) PickerModel {
	items := make([]pickerItem, 0, config.MaxDifficulty+1)
	for l := 1; l <= config.MaxDifficulty; l++ {
		items = append(items, pickerItem{
			label:  levelLabel(l),
			choice: DifficultyChoice{Level: l},
		})
	}
	items = append(items, pickerItem{
		label:  "Fixed speed",
		choice: DifficultyChoice{Level: level, Fixed: true},
	})

	cursor := 0
	if level >= 1 && level <= config.MaxDifficulty {
		cursor = level - 1
	}

	return PickerModel{
		items:  items,
		cursor: cursor,
		width:  width,
		height: height,
	}
}

func levelLabel(level int) string {
	switch level {
	case config.LevelForPreset(config.DifficultyEasy):
		return fmt.Sprintf("%2d  easy", level)
	case config.LevelForPreset(config.DifficultyNormal):
		return fmt.Sprintf("%2d  normal", level)
	case config.LevelForPreset(config.DifficultyHard):
		return fmt.Sprintf("%2d  hard", level)
	}
	return fmt.Sprintf("%2d", level)
}

// Init initializes the picker model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m PickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		m.cursor = int(s[0] - '1')
		return m.choose()
	}
	if msg.String() == "0" {
		m.cursor = config.MaxDifficulty - 1
		return m.choose()
	}

	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		return m.choose()
	}

	return m, nil
}

func (m PickerModel) choose() (tea.Model, tea.Cmd) {
	choice := m.items[m.cursor].choice
	m.selected = &choice
	return m, tea.Quit
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(pickerTitleStyle.Render("T E T R I S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.label
		if i == m.cursor {
			line = pickerCursor.Render("> " + item.label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(pickerHintStyle.Render("Up/Down: Navigate  |  1-9,0: Level  |  Enter: Select  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen difficulty, or nil if none was chosen.
func (m PickerModel) Selected() *DifficultyChoice {
	return m.selected
}

// centerText centers text within the given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// PickDifficulty runs the picker and returns the chosen difficulty.
// ok is false when the player quit without choosing.
func PickDifficulty(level, width, height int) (choice DifficultyChoice, ok bool, err error) {
	p := tea.NewProgram(NewPickerModel(level, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return DifficultyChoice{}, false, fmt.Errorf("tui: difficulty picker: %w", err)
	}

	m, isPicker := final.(PickerModel)
	if !isPicker || m.Selected() == nil {
		return DifficultyChoice{}, false, nil
	}
	return *m.Selected(), true, nil
}
