//go:build !unix && !windows

package storage

import "os"

// Platforms without advisory file locks only get the in-process lock.
func lockFile(f *os.File) error { return nil }

func unlockFile(f *os.File) error { return nil }
