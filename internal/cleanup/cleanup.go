// Package cleanup runs registered functions before the process exits.
package cleanup

import (
	"errors"
	"sync"
)

var (
	registered []func() error
	mu         sync.Mutex
)

// Register adds fn to the functions run by [Cleanup]. Functions run in the
// reverse order they were registered.
func Register(fn func() error) {
	mu.Lock()
	defer mu.Unlock()
	registered = append(registered, fn)
}

// Cleanup runs and forgets every registered function, returning the joined
// errors. Calling Cleanup again only runs functions registered since.
func Cleanup() error {
	mu.Lock()
	fns := registered
	registered = nil
	mu.Unlock()

	var errs []error
	for i := len(fns) - 1; i >= 0; i-- {
		if err := fns[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
