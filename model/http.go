package model

type CreateTabRequestBody struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

type CreateProjectRequestBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type AddNoteRequestBody struct {
	Section int  `json:"section"`
	Measure int  `json:"measure"`
	Note    Note `json:"note"`
}

type AddTabToProjectRequestBody struct {
	TabId string `json:"tabId"`
}

type ExportRequestBody struct {
	Format            string `json:"format"`
	IncludeTechniques bool   `json:"includeTechniques"`
	IncludeMetadata   bool   `json:"includeMetadata"`
}

type ExportResponse struct {
	Filename string `json:"filename"`
	MimeType string `json:"mime_type"`
	Content  string `json:"content"`
}
