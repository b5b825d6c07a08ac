package library

import (
	"fmt"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/gitaurr/gitaurr/constants"
	"github.com/gitaurr/gitaurr/ident"
	"github.com/gitaurr/gitaurr/model"
	"github.com/gitaurr/gitaurr/persist"
	"github.com/gitaurr/gitaurr/tab"
	"golang.org/x/exp/slices"
)

// Store tracks the project collection, the recency list and the active
// editing state. Documents themselves are immutable snapshots; the store
// swaps whole values, never edits in place. Projects, recent tabs and
// settings survive restarts through the persistence gateway; the active
// tab/project and playback state are transient.
type Store struct {
	mu             sync.Mutex
	currentTab     *model.TabDocument
	currentProject *model.TabProject
	projects       []model.TabProject
	recentTabs     []model.TabDocument
	settings       model.AppSettings
	playback       model.PlaybackState
	gateway        persist.Gateway
	debounced      func(func())
}

func DefaultSettings() model.AppSettings {
	return model.AppSettings{
		UIMode: model.UIMode{
			Mode:              "beginner",
			ShowAdvancedTools: false,
			ShowTechniques:    true,
			ShowMidiInfo:      false,
			CompactView:       false,
		},
		DefaultTuning: append([]string(nil), constants.DefaultTuning...),
		AutoSave:      true,
		PlaybackSettings: model.PlaybackSettings{
			DefaultTempo:  constants.DefaultTempo,
			DefaultVolume: constants.DefaultVolume,
			CountInBars:   1,
		},
		ExportSettings: model.ExportSettings{
			DefaultFormat:     "txt",
			IncludeTechniques: true,
			IncludeMetadata:   true,
		},
	}
}

func defaultPlayback() model.PlaybackState {
	return model.PlaybackState{
		Tempo:  constants.DefaultTempo,
		Volume: constants.DefaultVolume,
	}
}

// NewStore restores the previous session from the gateway, best effort: a
// missing or unreadable snapshot just means starting empty.
func NewStore(gateway persist.Gateway) *Store {
	s := &Store{
		settings:  DefaultSettings(),
		playback:  defaultPlayback(),
		gateway:   gateway,
		debounced: debounce.New(200 * time.Millisecond),
	}
	s.restore()
	return s
}

// CreateTab makes a fresh document with the default tuning, activates it
// and pushes it onto the recency list.
func (s *Store) CreateTab(title string, artist string) model.TabDocument {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := tab.New(title, artist, s.settings.DefaultTuning)
	s.currentTab = &doc
	s.pushRecent(doc)
	s.scheduleSave()
	return doc
}

// UpdateTab replaces the stored snapshot with t everywhere it appears and
// makes it the active document.
func (s *Store) UpdateTab(t model.TabDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentTab = &t
	for pi := range s.projects {
		for ti := range s.projects[pi].Tabs {
			if s.projects[pi].Tabs[ti].Id == t.Id {
				s.projects[pi].Tabs[ti] = t
			}
		}
	}
	s.pushRecent(t)
	s.scheduleSave()
}

// DeleteTab removes the tab from every project and the recency list, and
// clears the active document if it was the one deleted. Deleting an absent
// id is a no-op.
func (s *Store) DeleteTab(tabId string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for pi := range s.projects {
		kept := s.projects[pi].Tabs[:0]
		for _, t := range s.projects[pi].Tabs {
			if t.Id != tabId {
				kept = append(kept, t)
			}
		}
		s.projects[pi].Tabs = kept
	}
	kept := s.recentTabs[:0]
	for _, t := range s.recentTabs {
		if t.Id != tabId {
			kept = append(kept, t)
		}
	}
	s.recentTabs = kept
	if s.currentTab != nil && s.currentTab.Id == tabId {
		s.currentTab = nil
	}
	s.scheduleSave()
}

func (s *Store) CreateProject(name string, description string) model.TabProject {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	project := model.TabProject{
		Id:            ident.New(),
		Name:          name,
		Description:   description,
		Tabs:          []model.TabDocument{},
		IsPublic:      false,
		Collaborators: []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.projects = append(s.projects, project)
	s.currentProject = &project
	s.scheduleSave()
	return project
}

// AddTabToProject appends the tab to the named project. An unknown project
// id is a silent no-op.
func (s *Store) AddTabToProject(projectId string, t model.TabDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.projects, func(p model.TabProject) bool {
		return p.Id == projectId
	})
	if i < 0 {
		return
	}
	s.projects[i].Tabs = append(s.projects[i].Tabs, t)
	s.projects[i].UpdatedAt = time.Now().UTC()
	s.scheduleSave()
}

// AddToRecent inserts at the head, dropping any earlier entry with the
// same id and truncating to the ten most recent.
func (s *Store) AddToRecent(t model.TabDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pushRecent(t)
	s.scheduleSave()
}

func (s *Store) pushRecent(t model.TabDocument) {
	res := make([]model.TabDocument, 0, len(s.recentTabs)+1)
	res = append(res, t)
	for _, r := range s.recentTabs {
		if r.Id != t.Id {
			res = append(res, r)
		}
	}
	if len(res) > constants.MaxRecentTabs {
		res = res[:constants.MaxRecentTabs]
	}
	s.recentTabs = res
}

// FindTab looks the id up in the active document, the recency list and
// every project.
func (s *Store) FindTab(tabId string) (model.TabDocument, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentTab != nil && s.currentTab.Id == tabId {
		return *s.currentTab, true
	}
	for _, t := range s.recentTabs {
		if t.Id == tabId {
			return t, true
		}
	}
	for _, p := range s.projects {
		for _, t := range p.Tabs {
			if t.Id == tabId {
				return t, true
			}
		}
	}
	return model.TabDocument{}, false
}

// Entries returns the mixed listing with an explicit kind per row:
// projects first, then the recency list.
func (s *Store) Entries() []model.LibraryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]model.LibraryEntry, 0, len(s.projects)+len(s.recentTabs))
	for i := range s.projects {
		p := s.projects[i]
		res = append(res, model.LibraryEntry{Kind: model.KindProject, Project: &p})
	}
	for i := range s.recentTabs {
		t := s.recentTabs[i]
		res = append(res, model.LibraryEntry{Kind: model.KindTab, Tab: &t})
	}
	return res
}

func (s *Store) SetCurrentTab(t *model.TabDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentTab = t
}

func (s *Store) CurrentTab() *model.TabDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentTab == nil {
		return nil
	}
	t := *s.currentTab
	return &t
}

func (s *Store) CurrentProject() *model.TabProject {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentProject == nil {
		return nil
	}
	p := *s.currentProject
	return &p
}

func (s *Store) RecentTabs() []model.TabDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.recentTabs)
}

func (s *Store) Projects() []model.TabProject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.projects)
}

// ToggleUIMode flips beginner/advanced and the flags that follow the mode.
func (s *Store) ToggleUIMode() {
	s.mu.Lock()
	defer s.mu.Unlock()

	wasBeginner := s.settings.UIMode.Mode == "beginner"
	if wasBeginner {
		s.settings.UIMode.Mode = "advanced"
	} else {
		s.settings.UIMode.Mode = "beginner"
	}
	s.settings.UIMode.ShowAdvancedTools = wasBeginner
	s.settings.UIMode.ShowTechniques = true
	s.settings.UIMode.ShowMidiInfo = wasBeginner
	s.scheduleSave()
}

// SettingsPatch merges the non-nil top-level settings groups.
type SettingsPatch struct {
	UIMode           *model.UIMode
	DefaultTuning    *[]string
	AutoSave         *bool
	PlaybackSettings *model.PlaybackSettings
	ExportSettings   *model.ExportSettings
}

func (s *Store) UpdateSettings(patch SettingsPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.UIMode != nil {
		s.settings.UIMode = *patch.UIMode
	}
	if patch.DefaultTuning != nil {
		s.settings.DefaultTuning = append([]string(nil), *patch.DefaultTuning...)
	}
	if patch.AutoSave != nil {
		s.settings.AutoSave = *patch.AutoSave
	}
	if patch.PlaybackSettings != nil {
		s.settings.PlaybackSettings = *patch.PlaybackSettings
	}
	if patch.ExportSettings != nil {
		s.settings.ExportSettings = *patch.ExportSettings
	}
	s.scheduleSave()
}

// PlaybackPatch merges the non-nil playback fields. Playback state is
// consumed as plain data and never persisted.
type PlaybackPatch struct {
	IsPlaying      *bool
	CurrentMeasure *int
	CurrentBeat    *float64
	Tempo          *int
	Volume         *int
	IsLooping      *bool
	LoopStart      *int
	LoopEnd        *int
}

func (s *Store) UpdatePlayback(patch PlaybackPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.IsPlaying != nil {
		s.playback.IsPlaying = *patch.IsPlaying
	}
	if patch.CurrentMeasure != nil {
		s.playback.CurrentMeasure = *patch.CurrentMeasure
	}
	if patch.CurrentBeat != nil {
		s.playback.CurrentBeat = *patch.CurrentBeat
	}
	if patch.Tempo != nil {
		s.playback.Tempo = *patch.Tempo
	}
	if patch.Volume != nil {
		s.playback.Volume = *patch.Volume
	}
	if patch.IsLooping != nil {
		s.playback.IsLooping = *patch.IsLooping
	}
	if patch.LoopStart != nil {
		v := *patch.LoopStart
		s.playback.LoopStart = &v
	}
	if patch.LoopEnd != nil {
		v := *patch.LoopEnd
		s.playback.LoopEnd = &v
	}
}

func (s *Store) Settings() model.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *Store) Playback() model.PlaybackState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playback
}

func (s *Store) scheduleSave() {
	s.debounced(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if err := s.saveLocked(); err != nil {
			fmt.Printf("Could not persist library: %v\n", err)
		}
	})
}

// Flush writes the snapshot synchronously, for shutdown paths and tests.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}
