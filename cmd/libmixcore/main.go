// SPDX-License-Identifier: EPL-2.0

// Command libmixcore builds the engine's C ABI as a shared or static
// library (`go build -buildmode=c-shared` / `c-archive`). It has no
// behavior of its own: importing package cabi for its //export
// side-effects is the entire point, the way a cgo-wrapped library's
// cmd/ entry point exists only to pull in the exported symbols.
package main

import (
	_ "github.com/larkspur-audio/mixcore/cabi"
)

func main() {}
