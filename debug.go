// Copyright (c) 2024
//
// MIT License

//go:build debug
// +build debug

package ddnnf

import (
	"log"
	"os"
)

const debugEnabled bool = true

func init() {
	log.SetOutput(os.Stderr)
	log.SetPrefix("ddnnf: ")
}

// debugf traces one step of an internal algorithm (simplification,
// conditioning). Compiled out entirely under the default
// build, matching the teacher's `debug` build tag convention for its own
// buddy-table tracing (debug.go, logTable).
func debugf(format string, a ...interface{}) {
	log.Printf(format, a...)
}
