package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/engage/internal/app"
	"github.com/alexanderramin/engage/internal/cli/formatter"
	"github.com/alexanderramin/engage/internal/db"
	"github.com/alexanderramin/engage/internal/domain"
	"github.com/alexanderramin/engage/internal/hydration"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// boardLoadedMsg carries a freshly hydrated work package.
type boardLoadedMsg struct {
	hydrated *hydration.HydratedWorkPackage
	err      error
}

type boardKeyMap struct {
	Refresh    key.Binding
	ToggleView key.Binding
	Quit       key.Binding
}

func defaultBoardKeys() boardKeyMap {
	return boardKeyMap{
		Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		ToggleView: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "toggle client view")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// boardModel is a live, scrollable view of one hydrated work package.
type boardModel struct {
	hydrate app.HydrateUseCase
	req     app.HydrateRequest
	keys    boardKeyMap

	// changes, when set, returns a Cmd that waits for the next database
	// change.
	changes func() tea.Cmd

	vp       viewport.Model
	ready    bool
	loading  bool
	hydrated *hydration.HydratedWorkPackage
	err      error
}

func newBoardModel(hydrate app.HydrateUseCase, req app.HydrateRequest) boardModel {
	vp := viewport.New(0, 0)
	vp.KeyMap = boardViewportKeyMap()
	return boardModel{
		hydrate: hydrate,
		req:     req,
		keys:    defaultBoardKeys(),
		vp:      vp,
		loading: true,
	}
}

// Letter keys stay free for board shortcuts.
func boardViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

func (m boardModel) load() tea.Cmd {
	hydrate, req := m.hydrate, m.req
	return func() tea.Msg {
		h, err := hydrate.Hydrate(context.Background(), req)
		return boardLoadedMsg{hydrated: h, err: err}
	}
}

func (m boardModel) Init() tea.Cmd {
	if m.changes == nil {
		return m.load()
	}
	return tea.Batch(m.load(), m.changes())
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-2, 1)
		m.ready = true
		m.vp.SetContent(m.content())
		return m, nil

	case boardLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.hydrated = msg.hydrated
		}
		m.vp.SetContent(m.content())
		return m, nil

	case dbChangedMsg:
		m.loading = true
		return m, tea.Batch(m.load(), m.changes())

	case dbWatchErrMsg:
		m.changes = nil
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.load()
		case key.Matches(msg, m.keys.ToggleView):
			if m.req.ViewMode == string(domain.ViewClient) {
				m.req.ViewMode = string(domain.ViewInternal)
			} else {
				m.req.ViewMode = string(domain.ViewClient)
			}
			m.loading = true
			return m, m.load()
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m boardModel) content() string {
	switch {
	case m.err != nil:
		return formatter.StyleRed.Render("Error: " + m.err.Error())
	case m.hydrated == nil:
		return formatter.Dim("Loading...")
	default:
		return formatter.FormatHydrated(m.hydrated)
	}
}

func (m boardModel) View() string {
	var b strings.Builder
	if m.ready {
		b.WriteString(m.vp.View())
	} else {
		b.WriteString(m.content())
	}
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m boardModel) statusLine() string {
	view := m.req.ViewMode
	if view == "" {
		view = string(domain.ViewInternal)
	}
	parts := []string{formatter.Header(view)}
	if m.changes != nil {
		parts = append(parts, formatter.StyleGreen.Render("live"))
	}
	if m.loading {
		parts = append(parts, formatter.Dim("refreshing"))
	}
	for _, b := range []key.Binding{m.keys.Refresh, m.keys.ToggleView, m.keys.Quit} {
		h := b.Help()
		parts = append(parts, formatter.Dim(fmt.Sprintf("%s %s", h.Key, h.Desc)))
	}
	return strings.Join(parts, "  ")
}

func newBoardCmd(app *App) *cobra.Command {
	var opts hydrateOptions
	var watch bool

	cmd := &cobra.Command{
		Use:   "board PACKAGE",
		Short: "Open an interactive board for a work package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("board requires an interactive terminal; use hydrate instead")
			}
			id, err := resolveWorkPackageID(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			req, err := opts.request(id)
			if err != nil {
				return err
			}

			m := newBoardModel(app.Hydrate, req)
			if watch && app.DBPath != "" && app.DBPath != db.MemoryPath {
				w, err := watchDatabase(app.DBPath)
				if err != nil {
					return err
				}
				defer w.Close()
				m.changes = w.Next
			}

			p := tea.NewProgram(m, tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	opts.register(cmd, app.DefaultView)
	cmd.Flags().BoolVar(&watch, "watch", true, "Refresh when the database changes")

	return cmd
}
