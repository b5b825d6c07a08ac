package export

import (
	"encoding/json"
	"fmt"

	"github.com/gitaurr/gitaurr/model"
)

// ToJSON is the lossless projection: every document field, pretty-printed.
// ParseJSON inverts it, preserving identifiers and timestamps verbatim.
func ToJSON(doc model.TabDocument) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal document: %v", err)
	}
	return string(data), nil
}

func ParseJSON(data []byte) (model.TabDocument, error) {
	var doc model.TabDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return model.TabDocument{}, fmt.Errorf("parse document: %v", err)
	}
	return doc, nil
}
