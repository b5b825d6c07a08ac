package technique

import (
	"github.com/gitaurr/gitaurr/ident"
	"github.com/gitaurr/gitaurr/model"
)

// CatalogEntry describes one playing technique for the encyclopedia and
// for stamping new Technique values onto notes.
type CatalogEntry struct {
	Type        model.TechniqueType
	Symbol      string
	Name        string
	Description string
	Difficulty  model.Difficulty
}

var catalog = []CatalogEntry{
	{model.PalmMute, "PM", "Palm Mute", "Muting the strings with the palm of your picking hand to create a muffled sound.", model.Beginner},
	{model.HammerOn, "h", "Hammer On", "Pressing a string down onto a fret to produce a note without picking.", model.Beginner},
	{model.PullOff, "p", "Pull Off", "Lifting a finger off a fret to sound a lower note without picking.", model.Beginner},
	{model.SlideUp, "/", "Slide Up", "Sliding from one fret to a higher fret while maintaining string contact.", model.Beginner},
	{model.SlideDown, "\\", "Slide Down", "Sliding from one fret to a lower fret while maintaining string contact.", model.Beginner},
	{model.Bend, "b", "String Bend", "Pushing or pulling a string to raise its pitch.", model.Intermediate},
	{model.Vibrato, "~", "Vibrato", "Rapid small bends to add expression and sustain to notes.", model.Intermediate},
	{model.Tap, "t", "Tapping", "Using fingers from both hands to fret notes, creating rapid arpeggios.", model.Advanced},
	{model.Slap, "S", "Slap", "Striking strings with the thumb for percussive attack.", model.Intermediate},
	{model.Pop, "P", "Pop", "Pulling strings away from the fretboard and letting them snap back.", model.Intermediate},
	{model.Harmonic, "<>", "Natural Harmonic", "Lightly touching strings at specific frets to create bell-like tones.", model.Intermediate},
	{model.DeadNote, "x", "Dead Note/Mute", "Muting strings to create percussive sounds without definite pitch.", model.Beginner},
	{model.BodyHit, "B", "Body Hit", "Striking the guitar body for a percussive accent.", model.Intermediate},
	{model.Tremolo, "tr", "Tremolo Picking", "Picking a single note as fast as possible for a sustained effect.", model.Advanced},
	{model.StrumUp, "u", "Strum Up", "An upward strum across the strings.", model.Beginner},
	{model.StrumDown, "d", "Strum Down", "A downward strum across the strings.", model.Beginner},
	{model.GhostNote, "()", "Ghost Note", "A note played very softly, felt more than heard.", model.Intermediate},
}

var byType = func() map[model.TechniqueType]CatalogEntry {
	m := make(map[model.TechniqueType]CatalogEntry, len(catalog))
	for _, e := range catalog {
		m[e.Type] = e
	}
	return m
}()

// All returns the catalog in display order.
func All() []CatalogEntry {
	res := make([]CatalogEntry, len(catalog))
	copy(res, catalog)
	return res
}

// Lookup returns the catalog entry for t, ok=false for unknown types.
func Lookup(t model.TechniqueType) (CatalogEntry, bool) {
	e, ok := byType[t]
	return e, ok
}

// Symbol returns the display glyph for t, empty for unknown types.
func Symbol(t model.TechniqueType) string {
	return byType[t].Symbol
}

// New mints a Technique owned by the note it will be attached to.
func New(t model.TechniqueType) model.Technique {
	return NewWithParams(t, nil)
}

func NewWithParams(t model.TechniqueType, params *model.TechniqueParams) model.Technique {
	e := byType[t]
	return model.Technique{
		Id:          ident.New(),
		Type:        t,
		Symbol:      e.Symbol,
		Description: e.Description,
		Parameters:  params,
	}
}
