package tab

import "github.com/gitaurr/gitaurr/model"

// Every mutation returns a fresh snapshot, so the input document is copied
// down to the technique level before anything is touched. Nil and empty
// slices survive as-is so a no-op mutation yields a deep-equal document.

func cloneDocument(doc model.TabDocument) model.TabDocument {
	res := doc
	res.Tuning = cloneStrings(doc.Tuning)
	res.Metadata = cloneMetadata(doc.Metadata)
	if doc.Sections != nil {
		res.Sections = make([]model.Section, len(doc.Sections))
		for i, s := range doc.Sections {
			res.Sections[i] = cloneSection(s)
		}
	}
	return res
}

func cloneSection(s model.Section) model.Section {
	res := s
	if s.Measures != nil {
		res.Measures = make([]model.Measure, len(s.Measures))
		for i, m := range s.Measures {
			res.Measures[i] = cloneMeasure(m)
		}
	}
	return res
}

func cloneMeasure(m model.Measure) model.Measure {
	res := m
	if m.Notes != nil {
		res.Notes = make([]model.Note, len(m.Notes))
		for i, n := range m.Notes {
			res.Notes[i] = cloneNote(n)
		}
	}
	return res
}

func cloneNote(n model.Note) model.Note {
	res := n
	if n.Techniques != nil {
		res.Techniques = make([]model.Technique, len(n.Techniques))
		for i, t := range n.Techniques {
			res.Techniques[i] = cloneTechnique(t)
		}
	}
	return res
}

func cloneTechnique(t model.Technique) model.Technique {
	res := t
	if t.Parameters != nil {
		params := *t.Parameters
		if t.Parameters.BendAmount != nil {
			v := *t.Parameters.BendAmount
			params.BendAmount = &v
		}
		if t.Parameters.SlideTarget != nil {
			v := *t.Parameters.SlideTarget
			params.SlideTarget = &v
		}
		if t.Parameters.Intensity != nil {
			v := *t.Parameters.Intensity
			params.Intensity = &v
		}
		res.Parameters = &params
	}
	return res
}

func cloneMetadata(m model.Metadata) model.Metadata {
	res := m
	res.Tags = cloneStrings(m.Tags)
	return res
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	res := make([]string, len(s))
	copy(res, s)
	return res
}
