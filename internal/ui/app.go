package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"travelshell/internal/nav"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// hintLine is shown in the status line when nothing else is.
const hintLine = "1-5 switch · tab focus bar · SPC commands · q quit"

// AppOptions configures NewAppModel.
type AppOptions struct {
	Table   nav.Table
	Loaders map[nav.Target]ScreenLoader // optional async construction per target
	Label   func(nav.Target) string     // nav bar labels; nil uses target names
	Logger  *zap.Logger
	Tracer  trace.Tracer
}

// AppModel is the root model: a content region above a bottom nav bar.
type AppModel struct {
	Router     *nav.Router
	Content    *ContentRegion
	NavBar     *NavBar
	Focus      *FocusManager
	KeyHandler *KeyHandler
	Loaders    map[nav.Target]ScreenLoader
	Logger     *zap.Logger

	status     string // last routing failure, empty if none
	spinner    spinner.Model
	loading    bool
	cancelLoad context.CancelFunc
	width      int
	height     int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model. The router is initialized in Init.
func NewAppModel(opts AppOptions) *AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	content := NewContentRegion()
	bar := NewNavBar(opts.Label)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Title

	a := &AppModel{
		Content:    content,
		NavBar:     bar,
		KeyHandler: NewKeyHandler(NewKeybindRegistry()),
		Loaders:    opts.Loaders,
		Logger:     logger,
		spinner:    s,
	}
	a.Router = nav.New(content, opts.Table, nav.WithLogger(logger), nav.WithTracer(opts.Tracer))
	a.Focus = NewFocusManager(func(_, to string) { bar.Focused = to == FocusNav })
	a.registerKeys()

	if missing := opts.Table.Missing(); len(missing) > 0 {
		logger.Warn("navigation targets without a screen", zap.Stringers("targets", missing))
	}
	return a
}

// registerKeys binds number keys, SPC g <key>, tab and quit.
// Bindings are global: q quits whichever region has focus, so no screen may take text input.
func (a *AppModel) registerKeys() {
	reg := a.KeyHandler.Registry
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("tab", func() tea.Msg { return ToggleFocusMsg{} }, "Focus bar")
	for i, item := range a.NavBar.Items {
		t := item.Target
		sel := func() tea.Msg { return SelectTabMsg{Target: t} }
		reg.BindWithDesc(fmt.Sprintf("%d", i+1), sel, item.Label)
		reg.BindWithDesc("SPC g "+strings.ToLower(t.String()[:1]), sel, item.Label)
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Close tears the shell down: cancels loads, releases the active screen.
func (a *AppModel) Close() {
	a.stopLoading()
	a.Router.Close()
	a.Content.Close()
}

// Init implements tea.Model. It presents the Home screen.
func (a *appModelAdapter) Init() tea.Cmd {
	if err := a.Router.Initialize(); err != nil {
		a.Logger.Error("initial screen failed", zap.Error(err))
		a.status = err.Error()
		return nil
	}
	a.NavBar.SetActive(nav.Home)
	return a.Content.TakeCmd()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.NavBar.Update(msg)
		return a, a.Content.SetSize(msg.Width, a.contentHeight())
	case SelectTabMsg:
		return a, a.selectTarget(msg.Target)
	case ScreenLoadedMsg:
		return a, a.handleLoaded(msg)
	case ToggleFocusMsg:
		a.Focus.Next()
		if a.Focus.Is(FocusNav) {
			a.NavBar.Cursor = a.NavBar.Active
		}
		return a, nil
	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	case tea.KeyMsg:
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a, cmd
		}
		if a.Focus.Is(FocusNav) {
			if msg.String() == "esc" {
				a.Focus.SetFocus(FocusContent)
				a.NavBar.ClearPending()
				return a, nil
			}
			_, cmd := a.NavBar.Update(msg)
			return a, cmd
		}
	}
	return a, a.Content.Update(msg)
}

// selectTarget routes t synchronously, or starts an async load when a loader is registered.
func (a *AppModel) selectTarget(t nav.Target) tea.Cmd {
	a.stopLoading()
	a.Focus.SetFocus(FocusContent)

	if load, ok := a.Loaders[t]; ok && load != nil {
		return a.startLoad(t, load)
	}
	if !a.Router.OnSelect(t) {
		a.status = fmt.Sprintf("could not open %s", t)
		a.NavBar.ClearPending()
		return nil
	}
	a.status = ""
	a.NavBar.SetActive(t)
	return a.Content.TakeCmd()
}

func (a *AppModel) startLoad(t nav.Target, load ScreenLoader) tea.Cmd {
	tk, err := a.Router.Reserve(t)
	if err != nil {
		a.Logger.Warn("navigation failed", zap.Stringer("target", t), zap.Error(err))
		a.status = fmt.Sprintf("could not open %s", t)
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancelLoad = cancel
	a.loading = true
	a.status = ""
	a.NavBar.SetPending(t)

	run := func() tea.Msg {
		s, err := load(ctx)
		return ScreenLoadedMsg{Ticket: tk, Screen: s, Err: err}
	}
	return tea.Batch(run, a.spinner.Tick)
}

func (a *AppModel) handleLoaded(msg ScreenLoadedMsg) tea.Cmd {
	current := a.Router.Current(msg.Ticket)
	if msg.Err != nil {
		if msg.Screen != nil {
			msg.Screen.Release()
		}
		if !current {
			return nil
		}
		a.finishLoading()
		a.Logger.Warn("screen load failed", zap.Stringer("target", msg.Ticket.Target), zap.Error(msg.Err))
		a.status = fmt.Sprintf("could not load %s: %v", msg.Ticket.Target, msg.Err)
		return nil
	}

	err := a.Router.Fulfill(msg.Ticket, msg.Screen)
	switch {
	case err == nil:
		a.finishLoading()
		a.status = ""
		a.NavBar.SetActive(msg.Ticket.Target)
		return a.Content.TakeCmd()
	case errors.Is(err, nav.ErrStaleTicket):
		return nil
	default:
		a.finishLoading()
		a.Logger.Warn("navigation failed", zap.Stringer("target", msg.Ticket.Target), zap.Error(err))
		a.status = fmt.Sprintf("could not open %s", msg.Ticket.Target)
		return nil
	}
}

// stopLoading cancels an in-flight load; its result will arrive stale and be dropped.
func (a *AppModel) stopLoading() {
	if a.cancelLoad != nil {
		a.cancelLoad()
	}
	a.finishLoading()
}

func (a *AppModel) finishLoading() {
	a.cancelLoad = nil
	a.loading = false
	a.NavBar.ClearPending()
}

func (a *AppModel) contentHeight() int {
	// nav bar (border + row) and status line
	h := a.height - 3
	if h < 0 {
		return 0
	}
	return h
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	status := Styles.Muted.Render(hintLine)
	switch {
	case a.loading:
		status = a.spinner.View() + " " + Styles.Muted.Render("loading…")
	case a.status != "":
		status = Styles.Error.Render(a.status)
	}

	content := a.Content.View()
	if a.height > 0 {
		content = lipgloss.NewStyle().Height(a.contentHeight()).MaxHeight(a.contentHeight()).Render(content)
	}
	parts := []string{content, status}
	if a.KeyHandler.LeaderWaiting {
		parts = append(parts, RenderKeybindHelp(a.KeyHandler))
	}
	parts = append(parts, a.NavBar.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
