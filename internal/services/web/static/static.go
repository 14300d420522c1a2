// Package static embeds the site's stylesheet and script.
package static

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	apperrors "github.com/stoplaliga/stoplaliga.com/internal/services/web/platform/errors"
	"github.com/stoplaliga/stoplaliga.com/internal/services/web/platform/httpx"
)

var errAssetNotFound = apperrors.E(apperrors.KindNotFound, "asset not found")

// FS exposes web static assets for HTTP serving.
//
//go:embed *.css *.js
var FS embed.FS

// Handler serves the embedded assets by name. Directories, including the
// asset root, answer 404 instead of a listing. Mount it behind
// http.StripPrefix.
func Handler() http.Handler {
	files := http.FileServer(http.FS(FS))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/")
		if name == "" || strings.HasSuffix(name, "/") {
			httpx.WriteError(w, errAssetNotFound)
			return
		}
		if info, err := fs.Stat(FS, name); err == nil && info.IsDir() {
			httpx.WriteError(w, errAssetNotFound)
			return
		}
		files.ServeHTTP(w, r)
	})
}
