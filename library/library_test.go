package library

import (
	"fmt"
	"testing"

	"github.com/gitaurr/gitaurr/constants"
	"github.com/gitaurr/gitaurr/model"
	"github.com/gitaurr/gitaurr/persist"
	"github.com/stretchr/testify/assert"
)

func newTestStore() *Store {
	return NewStore(persist.NewMemory())
}

func TestCreateTabActivatesAndTracksRecent(t *testing.T) {
	s := newTestStore()

	doc := s.CreateTab("Song", "Artist")

	assert := assert.New(t)
	assert.NotEmpty(doc.Id)
	assert.Equal("Song", doc.Title)
	assert.Equal(constants.DefaultTuning, doc.Tuning)
	assert.NotNil(s.CurrentTab())
	assert.Equal(doc.Id, s.CurrentTab().Id)
	recent := s.RecentTabs()
	assert.Equal(1, len(recent))
	assert.Equal(doc.Id, recent[0].Id)
}

func TestRecentListCapDedupAndOrder(t *testing.T) {
	s := newTestStore()

	var docs []model.TabDocument
	for i := 0; i < 12; i++ {
		docs = append(docs, s.CreateTab(fmt.Sprintf("Song %v", i), ""))
	}

	assert := assert.New(t)
	recent := s.RecentTabs()
	assert.Equal(constants.MaxRecentTabs, len(recent))
	assert.Equal(docs[11].Id, recent[0].Id)

	// re-adding an existing tab moves it to the head without growing
	s.AddToRecent(docs[5])
	recent = s.RecentTabs()
	assert.Equal(constants.MaxRecentTabs, len(recent))
	assert.Equal(docs[5].Id, recent[0].Id)

	seen := make(map[string]bool)
	for _, r := range recent {
		assert.False(seen[r.Id])
		seen[r.Id] = true
	}
}

func TestDeleteTabClearsEverywhere(t *testing.T) {
	s := newTestStore()
	doc := s.CreateTab("Song", "")
	project := s.CreateProject("Album", "")
	s.AddTabToProject(project.Id, doc)

	s.DeleteTab(doc.Id)

	assert := assert.New(t)
	assert.Nil(s.CurrentTab())
	assert.Equal(0, len(s.RecentTabs()))
	assert.Equal(0, len(s.Projects()[0].Tabs))
}

func TestDeleteTabIsIdempotent(t *testing.T) {
	s := newTestStore()
	keep := s.CreateTab("Keep", "")
	doc := s.CreateTab("Gone", "")

	s.DeleteTab(doc.Id)
	after := s.RecentTabs()
	s.DeleteTab(doc.Id)
	s.DeleteTab("never-existed")

	assert := assert.New(t)
	assert.Equal(after, s.RecentTabs())
	assert.Equal(1, len(s.RecentTabs()))
	assert.Equal(keep.Id, s.RecentTabs()[0].Id)
}

func TestDeleteNonActiveTabKeepsActive(t *testing.T) {
	s := newTestStore()
	gone := s.CreateTab("Gone", "")
	active := s.CreateTab("Active", "")

	s.DeleteTab(gone.Id)

	assert := assert.New(t)
	assert.NotNil(s.CurrentTab())
	assert.Equal(active.Id, s.CurrentTab().Id)
}

func TestAddTabToUnknownProjectIsNoOp(t *testing.T) {
	s := newTestStore()
	doc := s.CreateTab("Song", "")
	s.CreateProject("Album", "")

	s.AddTabToProject("no-such-project", doc)

	assert.Equal(t, 0, len(s.Projects()[0].Tabs))
}

func TestAddTabToProjectRefreshesUpdatedAt(t *testing.T) {
	s := newTestStore()
	doc := s.CreateTab("Song", "")
	project := s.CreateProject("Album", "")

	s.AddTabToProject(project.Id, doc)

	stored := s.Projects()[0]
	assert := assert.New(t)
	assert.Equal(1, len(stored.Tabs))
	assert.True(stored.UpdatedAt.After(project.UpdatedAt) || stored.UpdatedAt.Equal(project.UpdatedAt))
}

func TestUpdateTabReplacesProjectCopies(t *testing.T) {
	s := newTestStore()
	doc := s.CreateTab("Song", "")
	project := s.CreateProject("Album", "")
	s.AddTabToProject(project.Id, doc)

	doc.Title = "Renamed"
	s.UpdateTab(doc)

	assert := assert.New(t)
	assert.Equal("Renamed", s.Projects()[0].Tabs[0].Title)
	assert.Equal("Renamed", s.RecentTabs()[0].Title)
	assert.Equal("Renamed", s.CurrentTab().Title)
}

func TestFindTabSearchesProjects(t *testing.T) {
	s := newTestStore()
	doc := s.CreateTab("Song", "")
	project := s.CreateProject("Album", "")
	s.AddTabToProject(project.Id, doc)
	// push the tab out of the recency list
	for i := 0; i < constants.MaxRecentTabs; i++ {
		s.CreateTab(fmt.Sprintf("Filler %v", i), "")
	}
	s.DeleteTab(s.CurrentTab().Id)

	found, ok := s.FindTab(doc.Id)

	assert := assert.New(t)
	assert.True(ok)
	assert.Equal(doc.Id, found.Id)

	_, ok = s.FindTab("no-such-tab")
	assert.False(ok)
}

func TestEntriesCarryExplicitKind(t *testing.T) {
	s := newTestStore()
	s.CreateProject("Album", "")
	doc := s.CreateTab("Song", "")

	entries := s.Entries()

	assert := assert.New(t)
	assert.Equal(2, len(entries))
	assert.Equal(model.KindProject, entries[0].Kind)
	assert.NotNil(entries[0].Project)
	assert.Nil(entries[0].Tab)
	assert.Equal(model.KindTab, entries[1].Kind)
	assert.NotNil(entries[1].Tab)
	assert.Equal(doc.Id, entries[1].Tab.Id)
}

func TestToggleUIMode(t *testing.T) {
	s := newTestStore()

	s.ToggleUIMode()

	assert := assert.New(t)
	ui := s.Settings().UIMode
	assert.Equal("advanced", ui.Mode)
	assert.True(ui.ShowAdvancedTools)
	assert.True(ui.ShowTechniques)
	assert.True(ui.ShowMidiInfo)

	s.ToggleUIMode()
	ui = s.Settings().UIMode
	assert.Equal("beginner", ui.Mode)
	assert.False(ui.ShowAdvancedTools)
	assert.False(ui.ShowMidiInfo)
}

func TestUpdateSettingsMergesGroups(t *testing.T) {
	s := newTestStore()
	tuning := []string{"d", "A", "F", "C", "G", "D"}
	autoSave := false

	s.UpdateSettings(SettingsPatch{DefaultTuning: &tuning, AutoSave: &autoSave})

	assert := assert.New(t)
	settings := s.Settings()
	assert.Equal(tuning, settings.DefaultTuning)
	assert.False(settings.AutoSave)
	assert.Equal(DefaultSettings().ExportSettings, settings.ExportSettings)
}

func TestUpdatePlaybackMergesFields(t *testing.T) {
	s := newTestStore()
	playing := true
	tempo := 80

	s.UpdatePlayback(PlaybackPatch{IsPlaying: &playing, Tempo: &tempo})

	assert := assert.New(t)
	playback := s.Playback()
	assert.True(playback.IsPlaying)
	assert.Equal(80, playback.Tempo)
	assert.Equal(constants.DefaultVolume, playback.Volume)
}

func TestSnapshotRoundTrip(t *testing.T) {
	gateway := persist.NewMemory()
	s := NewStore(gateway)
	doc := s.CreateTab("Song", "Artist")
	project := s.CreateProject("Album", "desc")
	s.AddTabToProject(project.Id, doc)
	assert.NoError(t, s.Flush())

	restored := NewStore(gateway)

	assert := assert.New(t)
	assert.Equal(s.Projects(), restored.Projects())
	assert.Equal(s.RecentTabs(), restored.RecentTabs())
	assert.Equal(s.Settings(), restored.Settings())
	// transient state stays out of the snapshot
	assert.Nil(restored.CurrentTab())
	assert.Nil(restored.CurrentProject())
}

func TestRestoreFromEmptyGatewayStartsEmpty(t *testing.T) {
	s := newTestStore()

	assert := assert.New(t)
	assert.Equal(0, len(s.Projects()))
	assert.Equal(0, len(s.RecentTabs()))
	assert.Equal(DefaultSettings(), s.Settings())
}

type failingGateway struct{}

func (failingGateway) Load(key string) ([]byte, bool, error) {
	return nil, false, persist.ErrUnavailable
}

func (failingGateway) Save(key string, blob []byte) error {
	return persist.ErrUnavailable
}

func TestGatewayFailuresAreNonFatal(t *testing.T) {
	s := NewStore(failingGateway{})

	doc := s.CreateTab("Song", "")

	assert := assert.New(t)
	assert.ErrorIs(s.Flush(), persist.ErrUnavailable)
	// the in-memory state is intact regardless
	assert.Equal(doc.Id, s.RecentTabs()[0].Id)
}
