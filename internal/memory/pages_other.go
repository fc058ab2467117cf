//go:build !linux

package memory

import "os"

func pageSize() int { return os.Getpagesize() }

func allocPages(n int) ([]byte, error) {
	return make([]byte, n), nil
}

func freePages([]byte) error { return nil }
