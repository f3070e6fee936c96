package util

import (
	"os"
	"strings"

	"github.com/denisbrodbeck/machineid"
)

// GetMachineID returns MACHINE_ID when set, otherwise the host's machine id.
func GetMachineID() string {
	if machineID := os.Getenv("MACHINE_ID"); machineID != "" {
		return machineID
	}
	id, err := machineid.ID()
	if err != nil {
		return "unknown-machine-id"
	}
	return strings.TrimSpace(id)
}
