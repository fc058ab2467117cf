package isa

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownKernel           = errors.New("unknown kernel")
	ErrBufferTooSmall          = errors.New("destination buffer too small")
	ErrUnsupportedArchitecture = errors.New("unsupported architecture")
)

// UnknownKernelError is returned when no kernel is registered under a
// (name, architecture) pair.
type UnknownKernelError struct {
	Name KernelName
	Arch Architecture
}

func (e *UnknownKernelError) Error() string {
	return fmt.Sprintf("isa: no kernel %q for %s", string(e.Name), e.Arch)
}

// Is makes errors.Is(err, ErrUnknownKernel) hold.
func (e *UnknownKernelError) Is(target error) bool {
	return target == ErrUnknownKernel
}

// BufferTooSmallError is returned when the destination cannot hold the
// whole kernel. Nothing is written in that case.
type BufferTooSmallError struct {
	Name KernelName
	Arch Architecture
	Need int // bytes required
	Have int // bytes available
}

func (e *BufferTooSmallError) Error() string {
	return fmt.Sprintf("isa: kernel %q for %s needs %d bytes, buffer has %d",
		string(e.Name), e.Arch, e.Need, e.Have)
}

// Is makes errors.Is(err, ErrBufferTooSmall) hold.
func (e *BufferTooSmallError) Is(target error) bool {
	return target == ErrBufferTooSmall
}
