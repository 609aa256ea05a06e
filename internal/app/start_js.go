//go:build js && wasm

package app

// Start launches Run without waiting for it and returns at once. The
// channel yields the run loop's result once and is then closed.
//
// Only the browser target has it: the native drivers must run the loop on
// the main goroutine, which Run does.
func (a *Application) Start() <-chan error {
	return spawn(a.Run)
}
