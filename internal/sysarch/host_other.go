//go:build !windows

package sysarch

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/host"
)

func hostIs64Bit() (bool, error) {
	arch, err := host.KernelArch()
	if err != nil {
		return false, fmt.Errorf("read kernel arch: %w", err)
	}

	return is64BitMachine(arch), nil
}
