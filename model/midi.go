package model

// MidiNote is one entry of the flat MIDI tick mapping. Times are in ticks
// at 480 ticks per quarter note. This is a data projection only; writing an
// actual .mid file is the export package's job.
type MidiNote struct {
	Note     int     `json:"note"` // MIDI note number
	Velocity int     `json:"velocity"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}
