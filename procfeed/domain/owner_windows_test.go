//go:build windows

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOwnerText = "S-1-5-18"

var testOwnerJSON any = "S-1-5-18"

func TestParseOwnerIDOpaque(t *testing.T) {
	id, err := ParseOwnerID("S-1-5-18")
	require.NoError(t, err)
	assert.Equal(t, OwnerID("S-1-5-18"), id)

	_, err = ParseOwnerID("")
	assert.ErrorIs(t, err, ErrEmptyOwnerID)
}
