package screens

import (
	"strings"

	"travelshell/internal/nav"
	"travelshell/internal/ui"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// DiaryEntry is one travel diary note.
type DiaryEntry struct {
	Region string
	Text   string
}

// SampleDiary is the built-in diary content.
var SampleDiary = []DiaryEntry{
	{Region: "강릉", Text: "바다를 따라 걷다가 작은 카페에서 쉬었다."},
	{Region: "안동", Text: "하회마을의 물길을 따라 오후 내내 걸었다."},
	{Region: "속초", Text: "새벽 시장에서 아침을 먹고 설악산에 올랐다."},
}

// DiaryScreen shows diary entries in a scrollable viewport.
type DiaryScreen struct {
	base
	Entries  []DiaryEntry
	viewport viewport.Model
}

var (
	_ nav.Screen = (*DiaryScreen)(nil)
	_ ui.View    = (*DiaryScreen)(nil)
)

// NewDiary creates a Diary screen over entries.
func NewDiary(entries []DiaryEntry) *DiaryScreen {
	d := &DiaryScreen{
		base:     base{target: nav.Diary},
		Entries:  entries,
		viewport: viewport.New(80, 20),
	}
	d.viewport.SetContent(d.render())
	return d
}

func (d *DiaryScreen) render() string {
	if len(d.Entries) == 0 {
		return ui.Styles.Empty.Render("No diary entries yet")
	}
	var b strings.Builder
	for _, e := range d.Entries {
		b.WriteString(ui.Styles.Selected.Render(e.Region) + "\n")
		b.WriteString(ui.Styles.Normal.Render(e.Text) + "\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Init implements ui.View.
func (d *DiaryScreen) Init() tea.Cmd { return nil }

// Update implements ui.View.
func (d *DiaryScreen) Update(msg tea.Msg) (ui.View, tea.Cmd) {
	if sz, ok := msg.(tea.WindowSizeMsg); ok {
		d.viewport.Width = sz.Width
		d.viewport.Height = max(0, sz.Height-2) // title line
		return d, nil
	}
	var cmd tea.Cmd
	d.viewport, cmd = d.viewport.Update(msg)
	return d, cmd
}

// View implements ui.View.
func (d *DiaryScreen) View() string {
	return ui.Styles.Title.Render("일기") + "\n\n" + d.viewport.View()
}
