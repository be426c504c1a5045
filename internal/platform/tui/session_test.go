package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func selectStub(t *testing.T, m SessionModel) SessionModel {
	t.Helper()
	idx := -1
	for i, item := range m.menu.items {
		if item.GameID == "stub" {
			idx = i
		}
	}
	if idx < 0 {
		t.Fatal("menu does not list the stub game")
	}
	m.menu.cursor = idx

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("Starting a game should start its tick chain")
	}
	return next.(SessionModel)
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := NewSessionModel(Options{Player: "elf"}, testConfig())
	if m.InGame() {
		t.Fatal("A session starts in the menu")
	}

	m = selectStub(t, m)
	if !m.InGame() {
		t.Fatal("Expected to be in game after selecting")
	}
	if m.View() == "" {
		t.Error("Expected the game view")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(SessionModel)
	if m.InGame() {
		t.Error("Back should return to the menu")
	}
	if m.quitting {
		t.Error("Back must not end the session")
	}
}

func TestSessionQuitFromGame(t *testing.T) {
	m := selectStub(t, NewSessionModel(Options{}, testConfig()))

	next, cmd := m.Update(runeKey('q'))
	m = next.(SessionModel)
	if !m.quitting || cmd == nil {
		t.Error("q in game should end the session")
	}
	if m.View() != "" {
		t.Error("Expected empty view after quitting")
	}
}

func TestSessionScoreboardStaysInMenu(t *testing.T) {
	m := NewSessionModel(Options{}, testConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(SessionModel)
	if m.InGame() || m.quitting {
		t.Error("Tab should keep the session in the menu")
	}
	if m.menu.WantsScoreboard() {
		t.Error("The menu should be rebuilt after a scoreboard request")
	}
}

func TestSessionResizeReachesGame(t *testing.T) {
	m := selectStub(t, NewSessionModel(Options{}, testConfig()))

	next, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 28})
	m = next.(SessionModel)
	if m.gameModel.screen.Width() != 90 || m.config.ScreenH != 28 {
		t.Error("Resize should reach the running game")
	}
}
