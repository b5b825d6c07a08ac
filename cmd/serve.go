package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gitaurr/gitaurr/export"
	"github.com/gitaurr/gitaurr/ident"
	"github.com/gitaurr/gitaurr/model"
	"github.com/gitaurr/gitaurr/tab"
	"github.com/gitaurr/gitaurr/technique"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the editor API",
	Long:  `Serves the editor API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// LoadStore (re)opens the library store; the e2e tests call it after
// pointing DATA_PATH at a scratch dir.
func LoadStore() {
	store = nil
	openStore()
}

// NewRouter wires the presentation-layer boundary: tab and project CRUD,
// note edits, recency and export.
func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/tabs", HandleCreateTab).Methods("POST")
	router.HandleFunc("/tabs/{id}", HandleGetTab).Methods("GET")
	router.HandleFunc("/tabs/{id}", HandleDeleteTab).Methods("DELETE")
	router.HandleFunc("/tabs/{id}/notes", HandleAddNote).Methods("POST")
	router.HandleFunc("/tabs/{id}/notes/{noteId}", HandleRemoveNote).Methods("DELETE")
	router.HandleFunc("/tabs/{id}/export", HandleExport).Methods("POST")
	router.HandleFunc("/projects", HandleCreateProject).Methods("POST")
	router.HandleFunc("/projects/{id}/tabs", HandleAddTabToProject).Methods("POST")
	router.HandleFunc("/library", HandleLibrary).Methods("GET")
	router.HandleFunc("/recent", HandleRecent).Methods("GET")
	return router
}

func serve() {
	openStore()
	handler := cors.Default().Handler(NewRouter())
	fmt.Println("Listening on :8080")
	log.Fatal(http.ListenAndServe(":8080", handler))
}

func readBody(w http.ResponseWriter, r *http.Request, input any) bool {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Could not read request body", 400)
		return false
	}
	if err := json.Unmarshal(reqBody, input); err != nil {
		http.Error(w, "Could not parse request body: "+err.Error(), 400)
		return false
	}
	return true
}

func HandleCreateTab(w http.ResponseWriter, r *http.Request) {
	var input model.CreateTabRequestBody
	if !readBody(w, r, &input) {
		return
	}
	if input.Title == "" {
		http.Error(w, "Title is required", 400)
		return
	}
	doc := store.CreateTab(input.Title, input.Artist)
	json.NewEncoder(w).Encode(doc)
}

func HandleGetTab(w http.ResponseWriter, r *http.Request) {
	doc, ok := store.FindTab(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "No such tab", 404)
		return
	}
	json.NewEncoder(w).Encode(doc)
}

func HandleDeleteTab(w http.ResponseWriter, r *http.Request) {
	store.DeleteTab(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

func HandleAddNote(w http.ResponseWriter, r *http.Request) {
	doc, ok := store.FindTab(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "No such tab", 404)
		return
	}

	var input model.AddNoteRequestBody
	if !readBody(w, r, &input) {
		return
	}

	note := input.Note
	if note.Id == "" {
		note.Id = ident.New()
	}
	for i, t := range note.Techniques {
		if t.Symbol == "" {
			note.Techniques[i] = technique.NewWithParams(t.Type, t.Parameters)
		}
	}

	updated, err := tab.AddNote(doc, input.Section, input.Measure, note)
	if errors.Is(err, tab.ErrOutOfRange) {
		http.Error(w, err.Error(), 400)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	store.UpdateTab(updated)
	json.NewEncoder(w).Encode(updated)
}

func HandleRemoveNote(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doc, ok := store.FindTab(vars["id"])
	if !ok {
		http.Error(w, "No such tab", 404)
		return
	}
	updated := tab.RemoveNote(doc, vars["noteId"])
	store.UpdateTab(updated)
	json.NewEncoder(w).Encode(updated)
}

func HandleExport(w http.ResponseWriter, r *http.Request) {
	doc, ok := store.FindTab(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "No such tab", 404)
		return
	}

	var input model.ExportRequestBody
	if !readBody(w, r, &input) {
		return
	}

	content, filename, mimeType, err := export.Render(doc, export.Options{
		Format:            export.Format(input.Format),
		IncludeTechniques: input.IncludeTechniques,
		IncludeMetadata:   input.IncludeMetadata,
	})
	if errors.Is(err, export.ErrUnsupportedFormat) {
		http.Error(w, err.Error(), 400)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	json.NewEncoder(w).Encode(model.ExportResponse{
		Filename: filename,
		MimeType: mimeType,
		Content:  content,
	})
}

func HandleCreateProject(w http.ResponseWriter, r *http.Request) {
	var input model.CreateProjectRequestBody
	if !readBody(w, r, &input) {
		return
	}
	if input.Name == "" {
		http.Error(w, "Name is required", 400)
		return
	}
	project := store.CreateProject(input.Name, input.Description)
	json.NewEncoder(w).Encode(project)
}

func HandleAddTabToProject(w http.ResponseWriter, r *http.Request) {
	var input model.AddTabToProjectRequestBody
	if !readBody(w, r, &input) {
		return
	}
	doc, ok := store.FindTab(input.TabId)
	if !ok {
		http.Error(w, "No such tab", 404)
		return
	}
	store.AddTabToProject(mux.Vars(r)["id"], doc)
	w.WriteHeader(http.StatusNoContent)
}

func HandleLibrary(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(store.Entries())
}

func HandleRecent(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(store.RecentTabs())
}
