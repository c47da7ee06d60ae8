// Package assets embeds the lookup page built by cmd/minify.
package assets

import _ "embed"

// Index is the minified lookup page.
//
//go:embed index.html
var Index []byte
