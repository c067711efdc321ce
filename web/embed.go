package web

import (
	"embed"
	"io/fs"
	"log"
)

//go:embed public
var content embed.FS

// Page returns the raw bytes of an embedded page.
func Page(name string) ([]byte, error) {
	return content.ReadFile("public/" + name)
}

// StaticFS returns the static asset file system.
func StaticFS() fs.FS {
	sub, err := fs.Sub(content, "public")
	if err != nil {
		log.Fatalf("failed to create static sub-filesystem: %v", err)
	}
	return sub
}
