package cli

import (
	"io"

	"github.com/getlantern/golog"
)

var log = golog.LoggerFor("trifuzzy.cli")

// setupLogging sends golog output to w so stdout carries results only.
func setupLogging(w io.Writer) {
	golog.SetOutputs(w, w)
}

// debugf logs a diagnostic when --verbose is set.
func debugf(format string, args ...any) {
	if flags.verbose {
		log.Debugf(format, args...)
	}
}
