// Copyright © 2026 The clang-complete authors

// Package docs embeds the completion protocol reference for use by the CLI.
package docs

import _ "embed"

//go:embed protocol.md
var ProtocolGuide string
