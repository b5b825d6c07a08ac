package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gitaurr/gitaurr/constants"
	"github.com/gitaurr/gitaurr/model"
)

// ToText renders the document as an ASCII tab sheet. Every measure becomes
// a 16-cell sixteenth-note grid per string regardless of its actual time
// signature; a note's fret lands in cell floor(position*16), padded to two
// characters with '-'. When techniques are included their symbols go into
// the cell after the note, overwriting whatever was there, including an
// adjacent note's fret digits.
func ToText(doc model.TabDocument, opts Options) string {
	var lines []string

	header := doc.Title
	if doc.Artist != "" {
		header += " - " + doc.Artist
	}
	lines = append(lines, header)
	lines = append(lines, strings.Repeat("=", 50))
	lines = append(lines, "")

	if opts.IncludeMetadata {
		lines = append(lines, "Tuning: "+strings.Join(doc.Tuning, " "))
		if doc.Capo > 0 {
			lines = append(lines, fmt.Sprintf("Capo: %v", doc.Capo))
		}
		lines = append(lines, fmt.Sprintf("Tempo: %v BPM", doc.Metadata.Bpm))
		lines = append(lines, fmt.Sprintf("Difficulty: %v", doc.Metadata.Difficulty))
		if doc.Metadata.Genre != "" {
			lines = append(lines, "Genre: "+doc.Metadata.Genre)
		}
		lines = append(lines, "")
	}

	for _, section := range doc.Sections {
		if section.Name != "" {
			lines = append(lines, "["+section.Name+"]")
			lines = append(lines, "")
		}

		for _, measure := range section.Measures {
			lines = append(lines, fmt.Sprintf("Measure %v:", measure.BarNumber))
			lines = append(lines, renderMeasure(doc.Tuning, measure, opts.IncludeTechniques)...)
			lines = append(lines, "")
		}
	}

	if opts.IncludeMetadata {
		lines = append(lines, "")
		lines = append(lines, "Created with Gitaurr on "+doc.CreatedAt.Format("1/2/2006"))
	}

	return strings.Join(lines, "\n")
}

func renderMeasure(tuning []string, measure model.Measure, includeTechniques bool) []string {
	numStrings := len(tuning)
	cells := make([][]string, numStrings)
	for i := range cells {
		row := make([]string, constants.MeasureGridLength)
		for j := range row {
			row[j] = "-"
		}
		cells[i] = row
	}

	for _, note := range measure.Notes {
		if note.String < 0 || note.String >= numStrings {
			continue
		}
		pos := int(note.Position * constants.MeasureGridLength)
		if pos < 0 || pos >= constants.MeasureGridLength {
			continue
		}
		cells[note.String][pos] = padFret(note.Fret)

		if includeTechniques && len(note.Techniques) > 0 {
			var symbols string
			for _, t := range note.Techniques {
				symbols += t.Symbol
			}
			if pos+1 < constants.MeasureGridLength {
				cells[note.String][pos+1] = symbols
			}
		}
	}

	lines := make([]string, numStrings)
	for i := range cells {
		lines[i] = tuning[i] + "|" + strings.Join(cells[i], "") + "|"
	}
	return lines
}

func padFret(fret int) string {
	s := strconv.Itoa(fret)
	if len(s) < 2 {
		s = "-" + s
	}
	return s
}
