// log.go
// Package-level logging, grounded on go-app/main.go's use of the
// stdlib log package (log.SetOutput, log.Printf) rather than a
// structured-logging library — the teacher never pulls one in, and
// nothing else in the pack's domain dependencies covers it either.

package wordplay

import (
	"log"
	"os"
)

// Logger is the package's logger. Callers embedding wordplay in a
// larger service can redirect its output with Logger.SetOutput.
var Logger = log.New(os.Stderr, "[wordplay] ", log.LstdFlags)
