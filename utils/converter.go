package utils

import (
	"unsafe"
)

// String2Bytes converts a string to a byte slice without copying.
//
// The returned slice aliases the string's backing array and must be
// treated as read-only; writing to it is undefined behavior. Use
// []byte(s) when a writable copy is needed.
func String2Bytes(s string) []byte {
	if len(s) == 0 {
		return []byte("")
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Bytes2String converts a byte slice to a string without copying.
//
// The input slice must not be modified afterwards, since the returned
// string aliases it. Use string(b) when a copy is needed.
func Bytes2String(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
