package model

import "time"

// TabProject groups documents under a name. It owns its tabs; the recent
// list in the library references the same documents by id without owning
// them.
type TabProject struct {
	Id            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Tabs          []TabDocument `json:"tabs"`
	IsPublic      bool          `json:"isPublic"`
	Collaborators []string      `json:"collaborators"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

type EntryKind string

const (
	KindTab     EntryKind = "tab"
	KindProject EntryKind = "project"
)

// LibraryEntry is one row of a mixed tab/project listing. The kind
// discriminant is explicit so callers never have to sniff fields.
type LibraryEntry struct {
	Kind    EntryKind    `json:"kind"`
	Tab     *TabDocument `json:"tab,omitempty"`
	Project *TabProject  `json:"project,omitempty"`
}
