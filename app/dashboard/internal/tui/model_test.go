package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iWorld-y/text_radar/pkg/charts"
	"github.com/iWorld-y/text_radar/pkg/controller"
	"github.com/iWorld-y/text_radar/pkg/model"
)

// stubService 直接返回固定的响应
type stubService struct {
	reply *model.Reply
	calls int
}

func (s *stubService) Analyze(ctx context.Context, req *model.AnalysisRequest) (*model.Reply, error) {
	s.calls++
	return s.reply, nil
}

func catReply() *model.Reply {
	return &model.Reply{StatusCode: 200, Body: &model.AnalysisResponse{
		Success:     true,
		TotalWords:  6,
		UniqueWords: 5,
		ChartData:   []model.WordCount{{Word: "the", Count: 2}, {Word: "cat", Count: 1}, {Word: "sat", Count: 1}, {Word: "on", Count: 1}, {Word: "mat", Count: 1}},
		WordsData:   []model.WordCount{{Word: "the", Count: 2}, {Word: "cat", Count: 1}, {Word: "sat", Count: 1}, {Word: "on", Count: 1}, {Word: "mat", Count: 1}},
	}}
}

func newTestModel(svc controller.AnalysisService) Model {
	return New(controller.New(svc, charts.NewText(10)))
}

// runCmd 执行命令并展开批量消息
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func press(t *testing.T, m Model, k tea.KeyMsg) Model {
	t.Helper()
	next, cmd := m.Update(k)
	m = next.(Model)
	for _, msg := range runCmd(cmd) {
		if done, ok := msg.(analysisDoneMsg); ok {
			next, _ = m.Update(done)
			m = next.(Model)
		}
	}
	return m
}

func TestSubmitShowsResults(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
	}{
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}},
		{"alt+enter", tea.KeyMsg{Type: tea.KeyEnter, Alt: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{reply: catReply()}
			m := newTestModel(svc)
			m.input.SetValue("the cat sat on the mat")

			m = press(t, m, tt.key)
			if svc.calls != 1 {
				t.Fatalf("service calls = %d, want 1", svc.calls)
			}
			if m.state.Results == nil || m.state.Error != "" || m.state.Loading {
				t.Fatalf("state = %+v", m.state)
			}
			if len(m.table.Rows()) != 5 || m.table.Rows()[0][1] != "the" || m.table.Rows()[0][3] != "33.33%" {
				t.Errorf("table rows = %v", m.table.Rows())
			}

			view := m.View()
			for _, want := range []string{"Total words", "Unique words", "Top words shown", "the", "(33.3%)"} {
				if !strings.Contains(view, want) {
					t.Errorf("view missing %q", want)
				}
			}
		})
	}
}

func TestSubmitEmptyShowsError(t *testing.T) {
	svc := &stubService{reply: catReply()}
	m := newTestModel(svc)
	m.input.SetValue("  \n ")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if svc.calls != 0 {
		t.Errorf("service called for empty input")
	}
	if m.state.Error != controller.MsgEmptyInput || m.state.Results != nil {
		t.Errorf("state = %+v", m.state)
	}
	if !strings.Contains(m.View(), controller.MsgEmptyInput) {
		t.Errorf("view does not show the error banner")
	}
}

func TestErrorReplacesResults(t *testing.T) {
	svc := &stubService{reply: catReply()}
	m := newTestModel(svc)
	m.input.SetValue("the cat sat on the mat")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	svc.reply = &model.Reply{StatusCode: 400, Body: &model.AnalysisResponse{Error: "No valid words found in the text"}}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	view := m.View()
	if !strings.Contains(view, "No valid words found in the text") {
		t.Errorf("view missing service error")
	}
	if strings.Contains(view, "Total words") || len(m.table.Rows()) != 0 {
		t.Errorf("results still shown next to the error")
	}
}

func TestFocusAndQuit(t *testing.T) {
	m := newTestModel(&stubService{reply: catReply()})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.focus != focusTable || m.input.Focused() {
		t.Errorf("tab did not move focus to the table")
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.focus != focusInput || !m.input.Focused() {
		t.Errorf("tab did not move focus back to the input")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("esc did not quit")
	}
}

func TestPlaceholderOnlyWhenEmpty(t *testing.T) {
	m := newTestModel(&stubService{reply: catReply()})
	if !strings.Contains(m.View(), "or paste your text") {
		t.Errorf("placeholder not shown for empty input")
	}
	m.input.SetValue("hello")
	if strings.Contains(m.View(), "or paste your text") {
		t.Errorf("placeholder shown with text")
	}
}
