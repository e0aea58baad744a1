// SPDX-License-Identifier: MIT
package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"hyperion/pkg/platform"
)

func send(t *testing.T, m tea.Model, msgs ...tea.Msg) FactsModel {
	t.Helper()
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m.(FactsModel)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func loaded(t *testing.T) FactsModel {
	t.Helper()
	m := NewFactsModel()
	msg := m.Init()()
	return send(t, m, tea.WindowSizeMsg{Width: 80, Height: 40}, msg)
}

func TestFactsModelSections(t *testing.T) {
	m := loaded(t)

	if len(m.sections) == 0 {
		t.Fatal("no sections after loading facts")
	}
	names := make([]string, len(m.sections))
	for i, s := range m.sections {
		names[i] = s.name
	}
	if got := strings.Join(names, ","); got != "os,toolchain,features,arch,cpu" {
		t.Errorf("sections = %s, want os,toolchain,features,arch,cpu", got)
	}

	view := m.View()
	if !strings.Contains(view, "Platform Facts") || !strings.Contains(view, "toolchain") {
		t.Errorf("View() missing title or sections:\n%s", view)
	}
}

func TestFactsModelNavigation(t *testing.T) {
	m := loaded(t)

	m = send(t, m, keyMsg("up"))
	if m.selectedIndex != 0 {
		t.Errorf("selectedIndex after up at top = %d, want 0", m.selectedIndex)
	}

	m = send(t, m, keyMsg("down"), keyMsg("j"), keyMsg("down"), keyMsg("down"))
	if m.selectedIndex != len(m.sections)-1 {
		t.Errorf("selectedIndex = %d, want clamp at %d", m.selectedIndex, len(m.sections)-1)
	}

	m = send(t, m, keyMsg("k"), keyMsg("enter"))
	if m.activeScreen != DetailScreen {
		t.Fatalf("activeScreen = %v, want DetailScreen", m.activeScreen)
	}
	view := m.View()
	if !strings.Contains(view, "Platform Facts: arch") || !strings.Contains(view, platform.Architecture.String()) {
		t.Errorf("detail View() missing arch facts:\n%s", view)
	}

	m = send(t, m, keyMsg("esc"))
	if m.activeScreen != SectionScreen {
		t.Errorf("activeScreen after esc = %v, want SectionScreen", m.activeScreen)
	}
}

func TestFactsModelQuit(t *testing.T) {
	m := loaded(t)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("Update(q) returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Update(q) command is not tea.Quit")
	}
}

func TestFactsModelStates(t *testing.T) {
	m := NewFactsModel()
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() before resize = %q", got)
	}

	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})
	if !strings.Contains(m.View(), "No facts loaded.") {
		t.Errorf("View() without facts:\n%s", m.View())
	}
	m = send(t, m, keyMsg("enter"))
	if m.activeScreen != SectionScreen {
		t.Error("enter with no sections left the section screen")
	}

	m = send(t, m, errMsg{errors.New("detection failed")})
	if !strings.Contains(m.View(), "detection failed") {
		t.Errorf("View() with error:\n%s", m.View())
	}
}
