// Package static holds the stylesheet and scripts served under /assets/.
// Files are served under content-hashed names so they can be cached forever.
package static

import (
	"embed"
	"net/http"

	"github.com/benbjohnson/hashfs"
)

// PathPrefix is the URL prefix the assets are served under
const PathPrefix = "/assets/"

//go:embed *.css *.js
var files embed.FS

// FS is the content-hashed view of the embedded assets
var FS = hashfs.NewFS(files)

// Path returns the URL of the asset with the given name
func Path(name string) string {
	return PathPrefix + FS.HashName(name)
}

// Handler serves the assets, expecting requests under PathPrefix
func Handler() http.Handler {
	return http.StripPrefix(PathPrefix, hashfs.FileServer(FS))
}
