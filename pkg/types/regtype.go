package types

import (
	"fmt"
	"strings"
)

// RegType enumerates Windows registry value types. The numeric values align
// with the Windows definitions and are part of the registry-policy wire
// format; they must never be renumbered.
type RegType uint32

const (
	REG_NONE                       RegType = 0
	REG_SZ                         RegType = 1
	REG_EXPAND_SZ                  RegType = 2
	REG_BINARY                     RegType = 3
	REG_DWORD                      RegType = 4
	REG_DWORD_LE                   RegType = 4 // alias for clarity
	REG_DWORD_BE                   RegType = 5
	REG_LINK                       RegType = 6
	REG_MULTI_SZ                   RegType = 7
	REG_RESOURCE_LIST              RegType = 8
	REG_FULL_RESOURCE_DESCRIPTOR   RegType = 9
	REG_RESOURCE_REQUIREMENTS_LIST RegType = 10
	REG_QWORD                      RegType = 11
	REG_QWORD_LE                   RegType = 11 // alias for clarity
)

// String implements the Stringer interface for RegType
func (t RegType) String() string {
	switch t {
	case REG_NONE:
		return "REG_NONE"
	case REG_SZ:
		return "REG_SZ"
	case REG_EXPAND_SZ:
		return "REG_EXPAND_SZ"
	case REG_BINARY:
		return "REG_BINARY"
	case REG_DWORD:
		return "REG_DWORD"
	case REG_DWORD_BE:
		return "REG_DWORD_BE"
	case REG_LINK:
		return "REG_LINK"
	case REG_MULTI_SZ:
		return "REG_MULTI_SZ"
	case REG_RESOURCE_LIST:
		return "REG_RESOURCE_LIST"
	case REG_FULL_RESOURCE_DESCRIPTOR:
		return "REG_FULL_RESOURCE_DESCRIPTOR"
	case REG_RESOURCE_REQUIREMENTS_LIST:
		return "REG_RESOURCE_REQUIREMENTS_LIST"
	case REG_QWORD:
		return "REG_QWORD"
	default:
		return fmt.Sprintf("UNKNOWN_TYPE_%d", uint32(t))
	}
}

// ParseRegType converts a REG_* name back to its RegType. Matching is
// case-insensitive; alias names (REG_DWORD_LE, REG_QWORD_LE) are accepted.
func ParseRegType(s string) (RegType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "REG_NONE":
		return REG_NONE, nil
	case "REG_SZ":
		return REG_SZ, nil
	case "REG_EXPAND_SZ":
		return REG_EXPAND_SZ, nil
	case "REG_BINARY":
		return REG_BINARY, nil
	case "REG_DWORD", "REG_DWORD_LE":
		return REG_DWORD, nil
	case "REG_DWORD_BE":
		return REG_DWORD_BE, nil
	case "REG_LINK":
		return REG_LINK, nil
	case "REG_MULTI_SZ":
		return REG_MULTI_SZ, nil
	case "REG_RESOURCE_LIST":
		return REG_RESOURCE_LIST, nil
	case "REG_FULL_RESOURCE_DESCRIPTOR":
		return REG_FULL_RESOURCE_DESCRIPTOR, nil
	case "REG_RESOURCE_REQUIREMENTS_LIST":
		return REG_RESOURCE_REQUIREMENTS_LIST, nil
	case "REG_QWORD", "REG_QWORD_LE":
		return REG_QWORD, nil
	default:
		return 0, fmt.Errorf("types: unknown registry type %q", s)
	}
}
