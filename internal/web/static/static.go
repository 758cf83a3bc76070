// Package static embeds the web static assets for HTTP serving.
package static

import "embed"

// FS exposes static assets for HTTP serving.
//
//go:embed *.css
var FS embed.FS
