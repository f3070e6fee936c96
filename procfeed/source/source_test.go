package source

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/Gthulhu/procfeed/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectsImplementation(t *testing.T) {
	src, err := New(config.SourceConfig{Kind: config.SourceKindProcfs, ProcRoot: "/proc", UserCacheTTL: time.Minute})
	require.NoError(t, err)
	assert.IsType(t, &ProcfsSource{}, src)

	src, err = New(config.SourceConfig{Kind: config.SourceKindGopsutil})
	require.NoError(t, err)
	assert.IsType(t, &GopsutilSource{}, src)

	_, err = New(config.SourceConfig{Kind: "wmi"})
	assert.Error(t, err)
}

func TestGopsutilSourceLiveHost(t *testing.T) {
	src := NewGopsutilSource(NewUserResolver(time.Minute, nil), true)
	snap, err := src.ListProcesses(context.Background())
	require.NoError(t, err)

	self := uint32(os.Getpid())
	for _, e := range snap {
		assert.NotEqual(t, self, e.PID, "own pid must be skipped")
		assert.NotEmpty(t, e.OwnerName)
	}
}
