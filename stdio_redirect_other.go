//go:build !unix

package main

import (
	"os"

	"github.com/pkg/errors"
)

// On non-Unix platforms only the Go-level handles are swapped; runtime
// panics still go to the original stderr.
func redirectStdIO(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
