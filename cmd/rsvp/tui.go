package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/reusee/rsvp/rates"
	"github.com/reusee/rsvp/readers"
)

const rateStep = 25

type focus int

const (
	focusReader focus = iota
	focusText
	focusRate
)

var (
	centerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff5f5f"))
	wordStyle   = lipgloss.NewStyle().Padding(1, 2).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#5f5f87"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8a8a8a"))
	labelStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

type frameMsg readers.Frame

type model struct {
	controller *readers.Controller
	surface    *teaSurface
	frame      readers.Frame
	focus      focus
	text       textarea.Model
	rate       textinput.Model
	// text last handed to the controller
	loaded string
	notice string
}

var _ tea.Model = new(model)

func newModel(controller *readers.Controller, surface *teaSurface, text string) *model {
	area := textarea.New()
	area.Placeholder = "Paste text to read…"
	area.ShowLineNumbers = false
	area.CharLimit = 0
	area.SetWidth(orpColumn * 4)
	area.SetHeight(6)
	area.SetValue(text)

	input := textinput.New()
	input.Placeholder = "300"
	input.CharLimit = 3
	input.Width = 5
	input.SetValue(strconv.Itoa(int(controller.Rate())))

	return &model{
		controller: controller,
		surface:    surface,
		frame:      controller.Frame(),
		text:       area,
		rate:       input,
		loaded:     text,
	}
}

func runProgram(m *model) error {
	options := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		// stdin carried the text
		options = append(options, tea.WithInputTTY())
	}
	_, err := tea.NewProgram(m, options...).Run()
	return err
}

func (m *model) Init() tea.Cmd {
	return m.waitFrame
}

func (m *model) waitFrame() tea.Msg {
	return frameMsg(<-m.surface.frames)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame = readers.Frame(msg)
		if m.focus != focusRate {
			m.rate.SetValue(strconv.Itoa(int(m.frame.Rate)))
		}
		return m, m.waitFrame
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyTab {
			return m, m.cycleFocus()
		}
		if msg.Type == tea.KeyEsc && m.focus != focusReader {
			m.setFocus(focusReader)
			return m, nil
		}
		switch m.focus {
		case focusText:
			var cmd tea.Cmd
			m.text, cmd = m.text.Update(msg)
			return m, cmd
		case focusRate:
			if msg.Type == tea.KeyEnter {
				m.applyRate()
				return m, nil
			}
			var cmd tea.Cmd
			m.rate, cmd = m.rate.Update(msg)
			return m, cmd
		}
		return m.handleReaderKey(msg)
	}
	return m, nil
}

func (m *model) handleReaderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter":
		m.syncText()
		m.controller.Start()
	case " ":
		m.syncText()
		m.controller.Toggle()
	case "b":
		m.controller.Back()
	case "+", "=":
		m.stepRate(rateStep)
	case "-", "_":
		m.stepRate(-rateStep)
	}
	return m, nil
}

func (m *model) stepRate(delta int) {
	rate := rates.Clamp(int(m.controller.Rate()) + delta)
	m.controller.SetRate(int(rate))
}

func (m *model) applyRate() {
	rate, err := rates.ParseClamped(m.rate.Value())
	if err != nil {
		m.notice = err.Error()
		m.rate.SetValue(strconv.Itoa(int(m.controller.Rate())))
		return
	}
	m.notice = ""
	m.controller.SetRate(int(rate))
	m.rate.SetValue(strconv.Itoa(int(rate)))
	m.setFocus(focusReader)
}

// syncText loads the edited text into the controller if it changed.
func (m *model) syncText() {
	value := m.text.Value()
	if value == m.loaded {
		return
	}
	m.loaded = value
	m.controller.SetText(value)
}

func (m *model) cycleFocus() tea.Cmd {
	return m.setFocus((m.focus + 1) % 3)
}

func (m *model) setFocus(f focus) tea.Cmd {
	if m.focus == focusText && f != focusText {
		m.syncText()
	}
	m.focus = f
	m.text.Blur()
	m.rate.Blur()
	switch f {
	case focusText:
		return m.text.Focus()
	case focusRate:
		return m.rate.Focus()
	}
	return nil
}

func (m *model) View() string {
	var b strings.Builder

	word := alignPresentation(m.frame.Presentation, func(s string) string {
		return centerStyle.Render(s)
	})
	marker := strings.Repeat(" ", orpColumn) + "▾"
	b.WriteString(wordStyle.Render(marker + "\n" + word + "\n" + strings.Repeat(" ", orpColumn) + "▴"))
	b.WriteString("\n")

	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"%s  %d/%d  %s",
		m.frame.Phase,
		min(m.frame.Position+1, m.frame.Total),
		m.frame.Total,
		m.frame.Rate,
	)))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Text"))
	b.WriteString("\n")
	b.WriteString(m.text.View())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("WPM "))
	b.WriteString(m.rate.View())
	if m.notice != "" {
		b.WriteString("  " + m.notice)
	}
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("enter start · space pause/resume · b back · +/- rate · tab focus · q quit"))
	return b.String()
}
