package constants

import "os"

func GetDataDir() string {
	path := os.Getenv("DATA_PATH")
	if path != "" {
		return path
	}
	return "./data"
}

func GetExportDir() string {
	path := os.Getenv("EXPORT_PATH")
	if path != "" {
		return path
	}
	return "./exports"
}

// GetDynamoTable names the DynamoDB table to persist to; empty means the
// file store is used instead.
func GetDynamoTable() string {
	return os.Getenv("DYNAMO_TABLE")
}

// MeasureGridLength is the number of sixteenth-note cells a measure is
// rendered into, regardless of its time signature.
const MeasureGridLength = 16

// TicksPerBeat is the standard MIDI resolution used by the tick mapping.
const TicksPerBeat = 480

// MaxRecentTabs caps the recency list.
const MaxRecentTabs = 10

const DefaultTempo = 120
const DefaultVolume = 80
const DefaultVelocity = 100

// DefaultTuning lists string names highest-pitched first.
var DefaultTuning = []string{"e", "B", "G", "D", "A", "E"}

// StandardTuningMidi is the open-string MIDI pitch per string, low E first.
var StandardTuningMidi = []int{40, 45, 50, 55, 59, 64}

// SnapshotKey is the persistence gateway key the library stores under.
const SnapshotKey = "gitaurr-storage"
