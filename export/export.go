package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/gitaurr/gitaurr/constants"
	"github.com/gitaurr/gitaurr/model"
)

type Format string

const (
	FormatText Format = "txt"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

type Options struct {
	Format            Format
	IncludeTechniques bool
	IncludeMetadata   bool
}

var ErrUnsupportedFormat = errors.New("unsupported export format")
var ErrSharingUnavailable = errors.New("sharing is not available on this device")

// Sharer is the platform share-sheet collaborator.
type Sharer interface {
	Available() bool
	Share(path string, mimeType string, dialogTitle string) error
}

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Render produces the export artifact for the requested format along with
// the filename and MIME type to hand to the sharing side.
func Render(doc model.TabDocument, opts Options) (content string, filename string, mimeType string, err error) {
	switch opts.Format {
	case FormatText:
		content = ToText(doc, opts)
	case FormatJSON:
		content, err = ToJSON(doc)
		if err != nil {
			return "", "", "", err
		}
	case FormatCSV:
		content = ToCSV(doc)
	default:
		return "", "", "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, opts.Format)
	}

	name := nonAlphanumeric.ReplaceAllString(doc.Title, "_")
	return content, name + "." + string(opts.Format), MimeType(opts.Format), nil
}

func MimeType(format Format) string {
	switch format {
	case FormatText:
		return "text/plain"
	case FormatJSON:
		return "application/json"
	case FormatCSV:
		return "text/csv"
	default:
		return "text/plain"
	}
}

// AndShare renders the document, writes the artifact under the export dir
// and invokes the share sheet, in that order. It returns the written path.
func AndShare(doc model.TabDocument, opts Options, sharer Sharer) (string, error) {
	content, filename, mimeType, err := Render(doc, opts)
	if err != nil {
		return "", err
	}

	dir := constants.GetExportDir()
	if err := os.MkdirAll(dir, 0777); err != nil {
		return "", fmt.Errorf("create export dir: %v", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(content), 0666); err != nil {
		return "", fmt.Errorf("write export file: %v", err)
	}

	if !sharer.Available() {
		return "", ErrSharingUnavailable
	}
	if err := sharer.Share(path, mimeType, "Share "+doc.Title); err != nil {
		return "", fmt.Errorf("share export: %v", err)
	}
	return path, nil
}

// ConsoleSharer stands in for a platform share sheet on the command line.
type ConsoleSharer struct{}

func (ConsoleSharer) Available() bool { return true }

func (ConsoleSharer) Share(path string, mimeType string, dialogTitle string) error {
	fmt.Printf("%v: %v (%v)\n", dialogTitle, path, mimeType)
	return nil
}
