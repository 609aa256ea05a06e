//go:build js && wasm

package logger

import (
	"strings"
	"syscall/js"

	"github.com/rs/zerolog"
)

// browserConsole forwards each log line to console.log.
type browserConsole struct {
	console js.Value
}

func (c browserConsole) Write(p []byte) (int, error) {
	c.console.Call("log", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// NewBrowserConsoleLogger redirects logging to the browser's developer console.
func NewBrowserConsoleLogger(level zerolog.Level) *ZerologAdapter {
	out := browserConsole{console: js.Global().Get("console")}
	return NewZerolog(zerolog.ConsoleWriter{Out: out, NoColor: true}, level)
}
