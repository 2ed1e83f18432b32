// assets/embed.go
//
// Embedded browser client. Served by httpserver at "/" and "/static/*".

package assets

import (
	"embed"
	"io/fs"
)

//go:embed web
var webFS embed.FS

// Client returns the client tree rooted at web/, so index.html sits at the top.
func Client() fs.FS {
	sub, err := fs.Sub(webFS, "web")
	if err != nil {
		// web/ is always embedded
		panic(err)
	}
	return sub
}
