// Package logger provides a configurable logger shared by the lpgraph
// components.
//
// The root logger uses github.com/rs/zerolog with a console writer. It
// is silenced automatically under "go test" (set LPGRAPH_DEBUG=1 to see
// solver traces while testing), so property tests and benchmarks stay
// quiet by default.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).With().Timestamp().Logger()

	if os.Getenv("LPGRAPH_DEBUG") == "" && strings.HasSuffix(os.Args[0], ".test") {
		logger = zerolog.Nop()
	}
}

// SetOutput changes the output of the global logger.
func SetOutput(w io.Writer) {
	logger = logger.Output(w)
}

// Set allows a lpgraph user to override the global logger.
func Set(l zerolog.Logger) {
	logger = l
}

// Disable disables logging.
func Disable() {
	logger = zerolog.Nop()
}

// Logger returns the logger for a component.
func Logger() zerolog.Logger {
	return logger
}
