package api

import (
	"net/http"
	"os"
	"path/filepath"
)

// EndpointFrontend serves the bundled frontend from the configured directory.
// Paths that do not resolve to a file fall back to index.html so that client-side routing keeps working.
func (service *Service) EndpointFrontend(writer http.ResponseWriter, request *http.Request) {
	dir := service.Config.FrontendDir
	path := filepath.Join(dir, filepath.Clean("/"+request.URL.Path))

	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		http.ServeFile(writer, request, path)
		return
	}
	http.ServeFile(writer, request, filepath.Join(dir, "index.html"))
}
