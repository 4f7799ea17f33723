// Package configs embeds the default physics tuning and arena layouts so
// the binaries run without a config directory.
package configs

import "embed"

// FS holds physics.json and arenas/*.json
//
//go:embed physics.json arenas/*.json
var FS embed.FS
