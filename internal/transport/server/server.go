package server

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"

	"github.com/pep299/media-digest/internal/application"
	"github.com/pep299/media-digest/internal/transport/middleware"
)

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// NewRouter builds the HTTP routing for an application instance.
func NewRouter(app *application.Application) http.Handler {
	authMiddleware := middleware.Auth(app.Config.AuthToken)

	r := mux.NewRouter()
	r.HandleFunc("/hc", healthCheck).Methods("GET")
	r.Handle("/", app.IndexHandler).Methods("GET")
	r.Handle("/digest/url", authMiddleware(app.URLHandler)).Methods("POST")
	r.Handle("/digest/text", authMiddleware(app.TextHandler)).Methods("POST")
	r.Handle("/digest/upload", authMiddleware(app.UploadHandler)).Methods("POST")
	r.Handle("/digest/export", authMiddleware(app.ExportHandler)).Methods("POST")

	return r
}

// CreateHandler creates the main HTTP handler for the application
func CreateHandler() (http.Handler, func(), error) {
	app, err := application.New()
	if err != nil {
		log.Printf("Error creating application: %v\nStack:\n%s", err, debug.Stack())
		return nil, nil, err
	}

	cleanup := func() {
		app.Close()
	}

	return NewRouter(app), cleanup, nil
}

// HandleRequest handles a single HTTP request (for Cloud Functions)
func HandleRequest(w http.ResponseWriter, r *http.Request) {
	handler, cleanup, err := CreateHandler()
	if err != nil {
		log.Printf("Failed to create handler: %v\nStack:\n%s", err, debug.Stack())
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer cleanup()

	handler.ServeHTTP(w, r)
}
