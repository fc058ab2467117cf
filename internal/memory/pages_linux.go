//go:build linux

package memory

import "golang.org/x/sys/unix"

func pageSize() int { return unix.Getpagesize() }

func allocPages(n int) ([]byte, error) {
	return unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func freePages(b []byte) error {
	return unix.Munmap(b)
}
