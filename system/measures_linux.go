// Copyright © 2021-2026 The Gomon Project.

package system

import (
	"github.com/zosmac/gocore"
)

// measures reads a "Key: value" record into a map of each key to its first value field.
var measures = gocore.Measures
