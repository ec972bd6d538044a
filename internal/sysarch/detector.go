// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sysarch reports whether the launcher process and the host
// operating system are 64-bit.
package sysarch

import (
	"errors"

	"github.com/MKhiriev/dollhouse-client/internal/logger"
)

// ErrUnsupportedOS is returned by the host introspection on operating system
// versions that cannot answer the question.
var ErrUnsupportedOS = errors.New("os version does not support architecture introspection")

// pointerBits is the native pointer width of this build: 32 or 64.
const pointerBits = 32 << (^uintptr(0) >> 63)

// Detector answers architecture questions about the current process and host.
type Detector struct {
	is64BitProcess bool
	introspect     func() (bool, error)
	logger         *logger.Logger
}

// NewDetector returns a Detector for the running process.
func NewDetector(log *logger.Logger) *Detector {
	return newDetector(pointerBits == 64, hostIs64Bit, log)
}

func newDetector(is64BitProcess bool, introspect func() (bool, error), log *logger.Logger) *Detector {
	return &Detector{
		is64BitProcess: is64BitProcess,
		introspect:     introspect,
		logger:         log,
	}
}

// IsCurrentProcess64Bit reports the pointer width of the running binary.
func (d *Detector) IsCurrentProcess64Bit() bool {
	return d.is64BitProcess
}

// IsHostOS64Bit reports whether the operating system is 64-bit. A 64-bit
// process answers true without asking the OS. When the OS cannot be queried
// the host is treated as 32-bit.
func (d *Detector) IsHostOS64Bit() bool {
	if d.is64BitProcess {
		return true
	}

	is64, err := d.introspect()
	if err != nil {
		d.logger.Debug().Err(err).Msg("host architecture introspection failed, assuming 32-bit host")
		return false
	}

	return is64
}

var machines64 = map[string]struct{}{
	"x86_64":      {},
	"amd64":       {},
	"aarch64":     {},
	"arm64":       {},
	"ppc64":       {},
	"ppc64le":     {},
	"s390x":       {},
	"riscv64":     {},
	"mips64":      {},
	"loongarch64": {},
	"sparc64":     {},
}

func is64BitMachine(arch string) bool {
	_, ok := machines64[arch]
	return ok
}
