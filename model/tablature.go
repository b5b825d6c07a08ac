package model

import "time"

// TechniqueType is the closed set of playing techniques a note can carry.
type TechniqueType string

const (
	PalmMute  TechniqueType = "palm-mute"
	SlideUp   TechniqueType = "slide-up"
	SlideDown TechniqueType = "slide-down"
	HammerOn  TechniqueType = "hammer-on"
	PullOff   TechniqueType = "pull-off"
	Bend      TechniqueType = "bend"
	Vibrato   TechniqueType = "vibrato"
	Tap       TechniqueType = "tap"
	Slap      TechniqueType = "slap"
	Pop       TechniqueType = "pop"
	BodyHit   TechniqueType = "body-hit"
	Harmonic  TechniqueType = "harmonic"
	Tremolo   TechniqueType = "tremolo"
	StrumUp   TechniqueType = "strum-up"
	StrumDown TechniqueType = "strum-down"
	DeadNote  TechniqueType = "dead-note"
	GhostNote TechniqueType = "ghost-note"
)

// TechniqueParams holds the optional numeric knobs some techniques take.
type TechniqueParams struct {
	BendAmount  *float64 `json:"bendAmount,omitempty"`  // semitones
	SlideTarget *int     `json:"slideTarget,omitempty"` // target fret
	Intensity   *int     `json:"intensity,omitempty"`   // 0-100
}

type Technique struct {
	Id          string           `json:"id"`
	Type        TechniqueType    `json:"type"`
	Symbol      string           `json:"symbol"`
	Description string           `json:"description"`
	Parameters  *TechniqueParams `json:"parameters,omitempty"`
}

// Note is a single sound event on the string/fret grid.
// String 0 is the highest-pitched string.
type Note struct {
	Id         string      `json:"id"`
	Fret       int         `json:"fret"`
	String     int         `json:"string"`
	Position   float64     `json:"position"` // beat offset within the measure
	Duration   float64     `json:"duration"` // in quarter notes, 1 = quarter
	Techniques []Technique `json:"techniques"`
	Velocity   int         `json:"velocity"` // 0-127
}

type TimeSignature struct {
	Numerator   int `json:"numerator"`
	Denominator int `json:"denominator"`
}

type Measure struct {
	Id            string        `json:"id"`
	TimeSignature TimeSignature `json:"timeSignature"`
	Tempo         int           `json:"tempo"`
	Notes         []Note        `json:"notes"`
	BarNumber     int           `json:"barNumber"`
}

type Section struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Measures    []Measure `json:"measures"`
	Repetitions int       `json:"repetitions"`
}

type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
	Expert       Difficulty = "expert"
)

type Metadata struct {
	Genre       string     `json:"genre"`
	Difficulty  Difficulty `json:"difficulty"`
	Bpm         int        `json:"bpm"`
	Key         string     `json:"key"`
	Description string     `json:"description"`
	Tags        []string   `json:"tags"`
}

// TabDocument is the root aggregate. Sections is never empty; every
// mutation goes through the tab package and yields a fresh snapshot.
type TabDocument struct {
	Id        string    `json:"id"`
	Title     string    `json:"title"`
	Artist    string    `json:"artist"`
	Tuning    []string  `json:"tuning"` // index 0 = highest string
	Capo      int       `json:"capo"`
	Sections  []Section `json:"sections"`
	Metadata  Metadata  `json:"metadata"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Version   int       `json:"version"`
}
