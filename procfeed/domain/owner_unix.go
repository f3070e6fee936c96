//go:build !windows

package domain

import "strconv"

// OwnerID is the numeric uid of the owning account.
type OwnerID uint32

// ParseOwnerID parses the platform textual form of an owner id.
func ParseOwnerID(s string) (OwnerID, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return OwnerID(v), nil
}
