package objwatch

import _ "embed"

// Version is the release of the module and the objwatch command.
//
//go:embed VERSION
var Version string
