package tab

import (
	"fmt"
	"time"

	"github.com/gitaurr/gitaurr/constants"
	"github.com/gitaurr/gitaurr/ident"
	"github.com/gitaurr/gitaurr/model"
)

// New creates a document with one "Intro" section holding a single empty
// 4/4 measure. Tuning is taken as given; the model does not mandate six
// strings.
func New(title string, artist string, tuning []string) model.TabDocument {
	now := time.Now().UTC()
	return model.TabDocument{
		Id:     ident.New(),
		Title:  title,
		Artist: artist,
		Tuning: append([]string(nil), tuning...),
		Capo:   0,
		Sections: []model.Section{{
			Id:   ident.New(),
			Name: "Intro",
			Measures: []model.Measure{{
				Id:            ident.New(),
				TimeSignature: model.TimeSignature{Numerator: 4, Denominator: 4},
				Tempo:         constants.DefaultTempo,
				Notes:         []model.Note{},
				BarNumber:     1,
			}},
			Repetitions: 1,
		}},
		Metadata: model.Metadata{
			Genre:       "",
			Difficulty:  model.Beginner,
			Bpm:         constants.DefaultTempo,
			Key:         "C",
			Description: "",
			Tags:        []string{},
		},
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}
}

// AddNote appends note to the addressed measure. Notes at the same string
// and position are allowed to pile up; collapsing them is the editing UI's
// call, not the model's.
func AddNote(doc model.TabDocument, sectionIdx int, measureIdx int, note model.Note) (model.TabDocument, error) {
	if sectionIdx < 0 || sectionIdx >= len(doc.Sections) {
		return model.TabDocument{}, fmt.Errorf("add note to section %v: %w", sectionIdx, ErrOutOfRange)
	}
	if measureIdx < 0 || measureIdx >= len(doc.Sections[sectionIdx].Measures) {
		return model.TabDocument{}, fmt.Errorf("add note to measure %v: %w", measureIdx, ErrOutOfRange)
	}

	res := cloneDocument(doc)
	m := &res.Sections[sectionIdx].Measures[measureIdx]
	m.Notes = append(m.Notes, cloneNote(note))
	return bump(res), nil
}

// RemoveNote drops the first note with the given id, searching measures in
// document order. An unknown id returns a content-identical snapshot.
func RemoveNote(doc model.TabDocument, noteId string) model.TabDocument {
	res := cloneDocument(doc)
	for si := range res.Sections {
		for mi := range res.Sections[si].Measures {
			m := &res.Sections[si].Measures[mi]
			for ni, n := range m.Notes {
				if n.Id == noteId {
					m.Notes = append(m.Notes[:ni], m.Notes[ni+1:]...)
					return bump(res)
				}
			}
		}
	}
	return res
}

// MetadataPatch carries the metadata fields to merge; nil fields are left
// untouched.
type MetadataPatch struct {
	Genre       *string
	Difficulty  *model.Difficulty
	Bpm         *int
	Key         *string
	Description *string
	Tags        *[]string
}

// UpdateMetadata shallow-merges patch into the document metadata.
func UpdateMetadata(doc model.TabDocument, patch MetadataPatch) model.TabDocument {
	res := cloneDocument(doc)
	if patch.Genre != nil {
		res.Metadata.Genre = *patch.Genre
	}
	if patch.Difficulty != nil {
		res.Metadata.Difficulty = *patch.Difficulty
	}
	if patch.Bpm != nil {
		res.Metadata.Bpm = *patch.Bpm
	}
	if patch.Key != nil {
		res.Metadata.Key = *patch.Key
	}
	if patch.Description != nil {
		res.Metadata.Description = *patch.Description
	}
	if patch.Tags != nil {
		res.Metadata.Tags = append([]string(nil), *patch.Tags...)
	}
	res.UpdatedAt = time.Now().UTC()
	return res
}

// AddSection appends a named section seeded with one empty measure that
// continues the document's bar numbering and inherits the previous
// measure's time signature and tempo.
func AddSection(doc model.TabDocument, name string) model.TabDocument {
	res := cloneDocument(doc)
	prev := lastMeasure(res)
	res.Sections = append(res.Sections, model.Section{
		Id:          ident.New(),
		Name:        name,
		Measures:    []model.Measure{nextMeasure(prev)},
		Repetitions: 1,
	})
	return bump(res)
}

// AddMeasure appends a measure to the addressed section, bar number one
// past the section's last.
func AddMeasure(doc model.TabDocument, sectionIdx int) (model.TabDocument, error) {
	if sectionIdx < 0 || sectionIdx >= len(doc.Sections) {
		return model.TabDocument{}, fmt.Errorf("add measure to section %v: %w", sectionIdx, ErrOutOfRange)
	}

	res := cloneDocument(doc)
	s := &res.Sections[sectionIdx]
	var prev *model.Measure
	if len(s.Measures) > 0 {
		prev = &s.Measures[len(s.Measures)-1]
	}
	s.Measures = append(s.Measures, nextMeasure(prev))
	return bump(res), nil
}

func bump(doc model.TabDocument) model.TabDocument {
	doc.UpdatedAt = time.Now().UTC()
	doc.Version += 1
	return doc
}

func lastMeasure(doc model.TabDocument) *model.Measure {
	for si := len(doc.Sections) - 1; si >= 0; si-- {
		measures := doc.Sections[si].Measures
		if len(measures) > 0 {
			return &measures[len(measures)-1]
		}
	}
	return nil
}

func nextMeasure(prev *model.Measure) model.Measure {
	m := model.Measure{
		Id:            ident.New(),
		TimeSignature: model.TimeSignature{Numerator: 4, Denominator: 4},
		Tempo:         constants.DefaultTempo,
		Notes:         []model.Note{},
		BarNumber:     1,
	}
	if prev != nil {
		m.TimeSignature = prev.TimeSignature
		m.Tempo = prev.Tempo
		m.BarNumber = prev.BarNumber + 1
	}
	return m
}
