package templates

import "embed"

// FS exposes the codegen templates used by wiregen
// for per-struct marshal/unmarshal generation.
//
//go:embed *.go.tpl
var FS embed.FS
