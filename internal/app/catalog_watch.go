package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chmouel/lazystay/internal/catalog"
)

func (m *Model) startCatalogWatcher() tea.Cmd {
	if m.config == nil || !m.config.WatchCatalog || m.config.CatalogFile == "" {
		return nil
	}
	if m.watcher != nil && m.watcher.Started {
		return nil
	}
	if m.watcher == nil {
		m.watcher = catalog.NewWatcher(m.config.CatalogFile)
	}
	started, err := m.watcher.Start()
	if err != nil {
		return func() tea.Msg {
			return errMsg{err: err}
		}
	}
	if !started {
		return nil
	}
	return m.waitForCatalogEvent()
}

func (m *Model) stopCatalogWatcher() {
	if m.watcher == nil || !m.watcher.Started {
		return
	}
	m.watcher.Stop()
}

func (m *Model) waitForCatalogEvent() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	events := m.watcher.NextEvent()
	if events == nil {
		return nil
	}
	done := m.watcher.Done
	return func() tea.Msg {
		select {
		case <-events:
			return catalogChangedMsg{}
		case <-done:
			return nil
		}
	}
}

func (m *Model) handleCatalogChanged() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	m.watcher.ResetWaiting()
	return tea.Batch(m.maybeReloadCatalog(), m.waitForCatalogEvent())
}

// maybeReloadCatalog reloads now, or retries once the debounce window has
// passed so the last write is never missed.
func (m *Model) maybeReloadCatalog() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	if !m.watcher.ShouldRefresh(time.Now()) {
		return tea.Tick(catalog.WatchDebounce, func(time.Time) tea.Msg {
			return catalogRetryMsg{}
		})
	}
	return m.reloadCatalog()
}

func (m *Model) reloadCatalog() tea.Cmd {
	path := m.config.CatalogFile
	return func() tea.Msg {
		listings, err := catalog.Load(path)
		return catalogLoadedMsg{listings: listings, err: err}
	}
}
