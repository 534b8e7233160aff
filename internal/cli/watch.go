package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// settleWindow coalesces the burst of writes a single SQLite commit makes
// to the database and its WAL.
const settleWindow = 150 * time.Millisecond

// dbChangedMsg reports that another process committed to the database.
type dbChangedMsg struct{}

// dbWatchErrMsg carries a watcher failure; the board keeps running without
// live updates.
type dbWatchErrMsg struct{ err error }

// dbWatcher watches the directory holding a SQLite database for writes to
// the database file or its WAL.
type dbWatcher struct {
	w    *fsnotify.Watcher
	base string
}

func watchDatabase(path string) (*dbWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}
	return &dbWatcher{w: w, base: filepath.Base(path)}, nil
}

func (d *dbWatcher) Close() error {
	return d.w.Close()
}

// relevant matches the database and its -wal/-journal siblings. The -shm
// file changes on reads and is ignored.
func (d *dbWatcher) relevant(ev fsnotify.Event) bool {
	name := filepath.Base(ev.Name)
	if !strings.HasPrefix(name, d.base) || strings.HasSuffix(name, "-shm") {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}

// Next returns a Cmd that blocks until the next relevant change has
// settled. It returns nil once the watcher is closed.
func (d *dbWatcher) Next() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-d.w.Events:
				if !ok {
					return nil
				}
				if d.relevant(ev) {
					d.settle()
					return dbChangedMsg{}
				}
			case err, ok := <-d.w.Errors:
				if !ok {
					return nil
				}
				return dbWatchErrMsg{err: err}
			}
		}
	}
}

func (d *dbWatcher) settle() {
	timer := time.NewTimer(settleWindow)
	defer timer.Stop()
	for {
		select {
		case _, ok := <-d.w.Events:
			if !ok {
				return
			}
		case <-timer.C:
			return
		}
	}
}
