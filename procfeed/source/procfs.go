package source

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Gthulhu/procfeed/pkg/logger"
	"github.com/Gthulhu/procfeed/procfeed/domain"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

const defaultProcRoot = "/proc"

// ProcfsSource scans a procfs mount directly. Only meaningful on Linux, but
// the root is injectable so it can read a fake tree.
type ProcfsSource struct {
	root     string
	users    *UserResolver
	skipSelf bool
}

func NewProcfsSource(root string, users *UserResolver, skipSelf bool) *ProcfsSource {
	if root == "" {
		root = defaultProcRoot
	}
	return &ProcfsSource{root: root, users: users, skipSelf: skipSelf}
}

// ListProcesses reads every numeric directory under root. Processes that
// vanish mid-scan or whose owner cannot be resolved are left out.
func (src *ProcfsSource) ListProcesses(ctx context.Context) (domain.Snapshot, error) {
	entries, err := os.ReadDir(src.root)
	if err != nil {
		return nil, errors.WithMessagef(err, "read %s directory", src.root)
	}

	selfPID := os.Getpid()
	snap := make(domain.Snapshot, 0, len(entries))
	var errs error
	unresolved := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() {
			continue
		}
		pid, err := strconv.ParseUint(entry.Name(), 10, 32)
		if err != nil {
			continue
		}
		if src.skipSelf && int(pid) == selfPID {
			continue
		}

		name, uid, err := src.readProcess(entry.Name())
		if err != nil {
			errs = multierror.Append(errs, errors.WithMessagef(err, "pid %d", pid))
			continue
		}
		ownerID, err := domain.ParseOwnerID(uid)
		if err != nil {
			errs = multierror.Append(errs, errors.WithMessagef(err, "parse uid of pid %d", pid))
			continue
		}
		ownerName, ok := src.users.Resolve(uid)
		if !ok {
			unresolved++
			continue
		}
		snap = append(snap, domain.ProcessEntry{
			PID:       uint32(pid),
			Name:      name,
			OwnerID:   ownerID,
			OwnerName: ownerName,
		})
	}

	if errs != nil || unresolved > 0 {
		logger.Logger(ctx).Debug().Err(errs).Msgf("procfs scan skipped processes (%d unreadable owners)", unresolved)
	}
	return snap, nil
}

// readProcess reads the command name from comm and the real uid from status.
func (src *ProcfsSource) readProcess(pid string) (name string, uid string, err error) {
	comm, err := os.ReadFile(filepath.Join(src.root, pid, "comm"))
	if err != nil {
		return "", "", err
	}
	name = strings.TrimSpace(string(comm))

	uid, err = readStatusUID(filepath.Join(src.root, pid, "status"))
	if err != nil {
		return "", "", err
	}
	return name, uid, nil
}

// readStatusUID returns the real uid from a "Uid:\treal\teffective\tsaved\tfs" line.
func readStatusUID(statusPath string) (string, error) {
	file, err := os.Open(statusPath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "Uid:") {
			continue
		}
		fields := strings.Fields(strings.TrimPrefix(line, "Uid:"))
		if len(fields) == 0 {
			return "", fmt.Errorf("malformed Uid line %q", line)
		}
		return fields[0], nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("no Uid line in %s", statusPath)
}
