// Package web holds the landing page and its assets, compiled into the binary.
package web

import (
	"embed"
	"io/fs"
)

//go:embed index.html
var index []byte

//go:embed static
var static embed.FS

func Index() []byte {
	return index
}

// Static returns the asset tree rooted below "static/", so "js/app.js" resolves to
// static/js/app.js.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err) // the directory is embedded above
	}
	return sub
}
