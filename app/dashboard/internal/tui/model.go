// Package tui 终端分析面板
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iWorld-y/text_radar/pkg/charts"
	"github.com/iWorld-y/text_radar/pkg/controller"
)

const placeholder = "Enter or paste your text here..."

type focusArea int

const (
	focusInput focusArea = iota
	focusTable
)

// analysisDoneMsg 一次提交结束
type analysisDoneMsg struct {
	err error
}

// Model 终端面板的 bubbletea 模型
type Model struct {
	ctrl *controller.Controller
	keys keyMap

	input   textarea.Model
	spinner spinner.Model
	table   table.Model
	help    help.Model
	focus   focusArea

	state    controller.State
	bar      string
	doughnut string
	width    int
}

// New 创建面板，ctrl 的生命周期随面板结束
func New(ctrl *controller.Controller) Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(6)
	ta.Focus()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(ColorPrimary)),
	)

	tb := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Word", Width: 20},
			{Title: "Count", Width: 8},
			{Title: "Percentage", Width: 12},
		}),
		table.WithHeight(10),
	)

	return Model{
		ctrl:    ctrl,
		keys:    keys,
		input:   ta,
		spinner: sp,
		table:   tb,
		help:    help.New(),
		focus:   focusInput,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 4; w > 20 {
			m.input.SetWidth(w)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.ctrl.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m, m.submit()
		case key.Matches(msg, m.keys.Focus):
			m.toggleFocus()
			return m, nil
		}

	case analysisDoneMsg:
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		m.refresh()
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	if m.focus == focusInput {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.table, cmd = m.table.Update(msg)
	}
	return m, cmd
}

// submit 在后台提交，旧的提交由控制器负责取消
func (m Model) submit() tea.Cmd {
	ctrl := m.ctrl
	text := m.input.Value()
	return func() tea.Msg {
		return analysisDoneMsg{err: ctrl.Submit(context.Background(), text)}
	}
}

func (m *Model) toggleFocus() {
	if m.focus == focusInput {
		m.focus = focusTable
		m.input.Blur()
		m.table.Focus()
		return
	}
	m.focus = focusInput
	m.table.Blur()
	m.input.Focus()
}

// refresh 从控制器同步视图状态，结果变化时重新渲染图表和表格
func (m *Model) refresh() {
	st := m.ctrl.State()
	if st.Results != m.state.Results {
		m.bar, m.doughnut = "", ""
		var rows []table.Row
		if st.Results != nil {
			var sb strings.Builder
			if err := m.ctrl.RenderChart(charts.Bar, &sb); err == nil {
				m.bar = sb.String()
			}
			sb.Reset()
			if err := m.ctrl.RenderChart(charts.Doughnut, &sb); err == nil {
				m.doughnut = sb.String()
			}
			for _, r := range st.Results.Table {
				rows = append(rows, table.Row{strconv.Itoa(r.Rank), r.Word, strconv.Itoa(r.Count), r.Percent()})
			}
		}
		m.table.SetRows(rows)
		m.table.GotoTop()
	}
	m.state = st
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Text Radar"))
	b.WriteString(" ")
	b.WriteString(SubtitleStyle.Render("word frequency analysis"))
	b.WriteString("\n")

	inputStyle := InputStyle
	if m.focus == focusInput {
		inputStyle = InputFocusedStyle
	}
	b.WriteString(inputStyle.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	b.WriteString("\n")

	if m.state.Loading {
		b.WriteString(fmt.Sprintf("\n%s Analyzing...\n", m.spinner.View()))
	}
	if m.state.Error != "" {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(m.state.Error))
		b.WriteString("\n")
	} else if r := m.state.Results; r != nil {
		b.WriteString("\n")
		b.WriteString(m.statsView(r))
		b.WriteString("\n")
		if m.bar != "" {
			b.WriteString(SectionStyle.Render("Top words"))
			b.WriteString("\n")
			b.WriteString(m.bar)
			b.WriteString(SectionStyle.Render("Distribution"))
			b.WriteString("\n")
			b.WriteString(m.doughnut)
		}
		b.WriteString(SectionStyle.Render("All words"))
		b.WriteString("\n")
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) statsView(r *controller.Results) string {
	card := func(value int, label string) string {
		return CardStyle.Render(CardValueStyle.Render(strconv.Itoa(value)) + "\n" + label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card(r.Stats.TotalWords, "Total words"),
		card(r.Stats.UniqueWords, "Unique words"),
		card(r.Stats.TopShown, "Top words shown"),
	)
}
