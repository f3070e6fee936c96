//go:build windows

package domain

// OwnerID is the opaque account identity on Windows, serialized as text.
type OwnerID string

// ParseOwnerID accepts any non-empty identity as is.
func ParseOwnerID(s string) (OwnerID, error) {
	if s == "" {
		return "", ErrEmptyOwnerID
	}
	return OwnerID(s), nil
}
