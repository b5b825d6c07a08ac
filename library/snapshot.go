package library

import (
	"encoding/json"
	"fmt"

	"github.com/gitaurr/gitaurr/constants"
	"github.com/gitaurr/gitaurr/model"
)

// snapshot is the persisted subset of the store. Active editing state and
// playback state deliberately stay out.
type snapshot struct {
	Projects   []model.TabProject  `json:"projects"`
	RecentTabs []model.TabDocument `json:"recentTabs"`
	Settings   model.AppSettings   `json:"settings"`
}

func (s *Store) saveLocked() error {
	snap := snapshot{
		Projects:   s.projects,
		RecentTabs: s.recentTabs,
		Settings:   s.settings,
	}
	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal library snapshot: %v", err)
	}
	return s.gateway.Save(constants.SnapshotKey, blob)
}

func (s *Store) restore() {
	blob, ok, err := s.gateway.Load(constants.SnapshotKey)
	if err != nil {
		fmt.Printf("Could not restore library, starting empty: %v\n", err)
		return
	}
	if !ok {
		return
	}
	var snap snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		fmt.Printf("Could not decode library snapshot, starting empty: %v\n", err)
		return
	}
	s.projects = snap.Projects
	s.recentTabs = snap.RecentTabs
	if len(snap.Settings.DefaultTuning) > 0 {
		s.settings = snap.Settings
	}
}
