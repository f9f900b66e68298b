package mediadigest

import (
	"net/http"
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/pep299/media-digest/internal/transport/server"
)

func init() {
	target := os.Getenv("FUNCTION_TARGET")
	if target == "" {
		target = "MediaDigest"
	}
	functions.HTTP(target, MediaDigest)
}

// MediaDigest is the HTTP entry point for Cloud Functions deployments.
func MediaDigest(w http.ResponseWriter, r *http.Request) {
	server.HandleRequest(w, r)
}
