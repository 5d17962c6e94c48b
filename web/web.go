// Package web holds the embedded page templates for the server-rendered
// dashboard and login pages.
package web

import "embed"

//go:embed templates/*.html
var Templates embed.FS
