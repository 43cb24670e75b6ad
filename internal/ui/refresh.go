package ui

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tradedeck/internal/debug"
	"tradedeck/internal/domain"
	"tradedeck/internal/market"
)

// latestSnapshotModTime returns the newest mod time across the snapshot file
// and its WAL sidecars, since a WAL checkpoint may touch only -wal/-shm.
func latestSnapshotModTime(dbPath string) (time.Time, error) {
	info, err := os.Stat(dbPath)
	if err != nil {
		return time.Time{}, err
	}
	latest := info.ModTime()
	for _, suffix := range []string{"-wal", "-shm"} {
		if sideInfo, err := os.Stat(dbPath + suffix); err == nil {
			if mt := sideInfo.ModTime(); mt.After(latest) {
				latest = mt
			}
		}
	}
	return latest, nil
}

// checkDBForChanges stats the snapshot and kicks off a background refresh
// when it changed since the last load. Returns nil when nothing to do.
func (m *App) checkDBForChanges() tea.Cmd {
	if m.dbPath == "" || m.refreshInFlight {
		return nil
	}
	modTime, err := latestSnapshotModTime(m.dbPath)
	if err != nil {
		debug.Logf("refresh: stat snapshot: %v", err)
		return nil
	}
	if !modTime.After(m.lastDBModTime) {
		return nil
	}
	m.refreshInFlight = true
	return performRefresh(m.store, m.dbPath)
}

// forceRefresh triggers a refresh regardless of mod time, rate limited so a
// held-down key cannot hammer the store.
func (m *App) forceRefresh() tea.Cmd {
	if m.refreshInFlight || !m.refreshThrottle.Allow() {
		return nil
	}
	m.refreshInFlight = true
	return performRefresh(m.store, m.dbPath)
}

// performRefresh loads leads off the Update loop and reports back.
func performRefresh(store market.Store, dbPath string) tea.Cmd {
	return func() tea.Msg {
		var modTime time.Time
		if dbPath != "" {
			if mt, err := latestSnapshotModTime(dbPath); err == nil {
				modTime = mt
			}
		}
		leads, err := store.Leads(context.Background())
		return refreshCompleteMsg{leads: leads, dbModTime: modTime, err: err}
	}
}

// applyRefresh swaps in the fresh leads, keeping the cursor on the same lead
// when it still exists.
func (m *App) applyRefresh(msg refreshCompleteMsg) {
	var selectedRef string
	if lead := m.selectedLead(); lead != nil {
		selectedRef = lead.Ref
	}

	added, removed, changed := diffLeads(m.leads, msg.leads)

	m.leads = msg.leads
	if !msg.dbModTime.IsZero() {
		m.lastDBModTime = msg.dbModTime
	}
	m.clampCursor()
	if selectedRef != "" {
		for i, l := range m.leads {
			if l.Ref == selectedRef {
				m.cursor = i
				break
			}
		}
	}
	m.detailDirty = true
	m.updateViewportContent()

	if added == 0 && removed == 0 && changed == 0 {
		m.lastRefreshStats = "no changes"
	} else {
		m.lastRefreshStats = fmt.Sprintf("+%d -%d ~%d", added, removed, changed)
	}
	m.showRefreshFlash = true
	m.lastRefreshTime = time.Now()
	debug.Logf("refresh: %s (%s)", m.lastRefreshStats, leadCountLabel(len(m.leads)))
}

// diffLeads summarises what a refresh changed, keyed by lead ref.
func diffLeads(before, after []domain.Lead) (added, removed, changed int) {
	prev := make(map[string]domain.Lead, len(before))
	for _, l := range before {
		prev[l.Ref] = l
	}
	seen := make(map[string]struct{}, len(after))
	for _, l := range after {
		seen[l.Ref] = struct{}{}
		old, ok := prev[l.Ref]
		if !ok {
			added++
			continue
		}
		if old.Status != l.Status || old.QuotePence != l.QuotePence || !old.UpdatedAt.Equal(l.UpdatedAt) {
			changed++
		}
	}
	for ref := range prev {
		if _, ok := seen[ref]; !ok {
			removed++
		}
	}
	return added, removed, changed
}
