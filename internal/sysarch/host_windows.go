//go:build windows

package sysarch

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// hostIs64Bit asks the OS whether this 32-bit process runs under WOW64.
// IsWow64Process exists from Windows XP (5.1) on.
func hostIs64Bit() (bool, error) {
	v := windows.RtlGetVersion()
	if v.MajorVersion < 5 || (v.MajorVersion == 5 && v.MinorVersion < 1) {
		return false, ErrUnsupportedOS
	}

	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, windows.GetCurrentProcessId())
	if err != nil {
		return false, fmt.Errorf("open current process: %w", err)
	}
	defer windows.CloseHandle(h)

	var wow64 bool
	if err := windows.IsWow64Process(h, &wow64); err != nil {
		return false, fmt.Errorf("query wow64 state: %w", err)
	}

	return wow64, nil
}
