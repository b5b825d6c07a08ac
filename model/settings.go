package model

// UIMode is plain presentation state the core stores but never interprets.
type UIMode struct {
	Mode              string `json:"mode"` // "beginner" or "advanced"
	ShowAdvancedTools bool   `json:"showAdvancedTools"`
	ShowTechniques    bool   `json:"showTechniques"`
	ShowMidiInfo      bool   `json:"showMidiInfo"`
	CompactView       bool   `json:"compactView"`
}

type PlaybackSettings struct {
	DefaultTempo  int `json:"defaultTempo"`
	DefaultVolume int `json:"defaultVolume"`
	CountInBars   int `json:"countInBars"`
}

type ExportSettings struct {
	DefaultFormat     string `json:"defaultFormat"`
	IncludeTechniques bool   `json:"includeTechniques"`
	IncludeMetadata   bool   `json:"includeMetadata"`
}

type AppSettings struct {
	UIMode           UIMode           `json:"uiMode"`
	DefaultTuning    []string         `json:"defaultTuning"`
	AutoSave         bool             `json:"autoSave"`
	PlaybackSettings PlaybackSettings `json:"playbackSettings"`
	ExportSettings   ExportSettings   `json:"exportSettings"`
}

// PlaybackState is transient playback position/transport state. It is
// consumed as-is from the presentation layer and never persisted.
type PlaybackState struct {
	IsPlaying      bool    `json:"isPlaying"`
	CurrentMeasure int     `json:"currentMeasure"`
	CurrentBeat    float64 `json:"currentBeat"`
	Tempo          int     `json:"tempo"`
	Volume         int     `json:"volume"`
	IsLooping      bool    `json:"isLooping"`
	LoopStart      *int    `json:"loopStart,omitempty"`
	LoopEnd        *int    `json:"loopEnd,omitempty"`
}
