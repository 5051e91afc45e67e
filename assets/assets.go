// Package assets embeds the stock level set so the game runs without any
// files next to the binary.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:levels
var levelFS embed.FS

// Levels returns the embedded levels directory, world.yaml included.
func Levels() fs.FS {
	sub, err := fs.Sub(levelFS, "levels")
	if err != nil {
		panic("embedded levels missing: " + err.Error())
	}
	return sub
}
