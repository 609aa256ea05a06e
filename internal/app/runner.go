package app

import "fmt"

// spawn runs fn on its own goroutine. A panic inside fn is reported on
// the channel as an error instead of crashing the caller.
func spawn(fn func() error) <-chan error {
	errc := make(chan error, 1)

	go func() {
		defer close(errc)
		defer func() {
			if r := recover(); r != nil {
				errc <- fmt.Errorf("run loop panicked: %v", r)
			}
		}()
		errc <- fn()
	}()

	return errc
}
