package export

import (
	"sort"

	"github.com/gitaurr/gitaurr/constants"
	"github.com/gitaurr/gitaurr/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ToMidi flattens the document into MIDI-style note events at 480 ticks
// per beat, using the fixed standard-tuning pitch table. Start times
// assume four beats per measure and, like the text grid, ignore the
// measure's real time signature.
func ToMidi(doc model.TabDocument) []model.MidiNote {
	var res []model.MidiNote

	for _, section := range doc.Sections {
		for _, measure := range section.Measures {
			for _, note := range measure.Notes {
				idx := 5 - note.String
				if idx < 0 || idx >= len(constants.StandardTuningMidi) {
					continue
				}
				velocity := note.Velocity
				if velocity == 0 {
					velocity = constants.DefaultVelocity
				}
				res = append(res, model.MidiNote{
					Note:     constants.StandardTuningMidi[idx] + note.Fret,
					Velocity: velocity,
					Start:    note.Position * constants.TicksPerBeat * 4,
					Duration: note.Duration * constants.TicksPerBeat,
				})
			}
		}
	}
	return res
}

// BuildSMF assembles a single-track standard MIDI file from the tick
// mapping, for playback and .mid export.
func BuildSMF(doc model.TabDocument) *smf.SMF {
	type event struct {
		tick uint32
		off  bool
		key  uint8
		vel  uint8
	}

	var events []event
	for _, n := range ToMidi(doc) {
		if n.Note < 0 || n.Note > 127 {
			continue
		}
		vel := n.Velocity
		if vel > 127 {
			vel = 127
		}
		start := uint32(n.Start)
		events = append(events, event{tick: start, key: uint8(n.Note), vel: uint8(vel)})
		events = append(events, event{tick: start + uint32(n.Duration), off: true, key: uint8(n.Note)})
	}

	// offs first on ties so repeated pitches restart cleanly
	sort.Slice(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].off && !events[j].off
	})

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName(doc.Title))
	tr.Add(0, smf.MetaTempo(float64(doc.Metadata.Bpm)))
	var prev uint32
	for _, e := range events {
		delta := e.tick - prev
		prev = e.tick
		if e.off {
			tr.Add(delta, midi.NoteOff(0, e.key))
		} else {
			tr.Add(delta, midi.NoteOn(0, e.key, e.vel))
		}
	}
	tr.Close(0)

	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(constants.TicksPerBeat)
	s.Tracks = append(s.Tracks, tr)
	return &s
}
