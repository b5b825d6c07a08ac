package export

import (
	"strconv"
	"strings"

	"github.com/gitaurr/gitaurr/model"
)

// ToCSV emits one row per note under a fixed header. String numbers are
// 1-based in the output, technique symbols are ';'-joined. Fields are not
// quoted; section names containing commas are the caller's problem.
func ToCSV(doc model.TabDocument) string {
	rows := []string{"Section,Measure,String,Fret,Position,Duration,Techniques"}

	for _, section := range doc.Sections {
		for _, measure := range section.Measures {
			for _, note := range measure.Notes {
				symbols := make([]string, len(note.Techniques))
				for i, t := range note.Techniques {
					symbols[i] = t.Symbol
				}
				rows = append(rows, strings.Join([]string{
					section.Name,
					strconv.Itoa(measure.BarNumber),
					strconv.Itoa(note.String + 1),
					strconv.Itoa(note.Fret),
					formatNumber(note.Position),
					formatNumber(note.Duration),
					strings.Join(symbols, ";"),
				}, ","))
			}
		}
	}

	return strings.Join(rows, "\n")
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
