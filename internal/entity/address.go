package entity

import "strings"

const NullAddress = "0x0000000000000000000000000000000000000000"

// IsNullAddress treats the empty string and any all-zero hex address as null.
func IsNullAddress(addr string) bool {
	if addr == "" {
		return true
	}

	trimmed := strings.TrimPrefix(strings.ToLower(addr), "0x")
	for _, c := range trimmed {
		if c != '0' {
			return false
		}
	}

	return true
}
