package source

import (
	"context"
	"os"

	"github.com/Gthulhu/procfeed/pkg/logger"
	"github.com/Gthulhu/procfeed/procfeed/domain"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	psUtil "github.com/shirou/gopsutil/process"
)

// GopsutilSource enumerates processes through gopsutil and works on every
// platform gopsutil supports.
type GopsutilSource struct {
	users    *UserResolver
	skipSelf bool
}

func NewGopsutilSource(users *UserResolver, skipSelf bool) *GopsutilSource {
	return &GopsutilSource{users: users, skipSelf: skipSelf}
}

func (src *GopsutilSource) ListProcesses(ctx context.Context) (domain.Snapshot, error) {
	liveProcesses, err := psUtil.ProcessesWithContext(ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "get live process list")
	}

	selfPID := os.Getpid()
	snap := make(domain.Snapshot, 0, len(liveProcesses))
	var errs error
	for _, liveProcess := range liveProcesses {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if src.skipSelf && int(liveProcess.Pid) == selfPID {
			continue
		}
		if liveProcess.Pid < 0 {
			continue
		}

		name, err := liveProcess.NameWithContext(ctx)
		if err != nil {
			errs = multierror.Append(errs, errors.WithMessagef(err, "get name for pid '%d'", liveProcess.Pid))
			continue
		}
		ownerID, ownerName, err := src.owner(ctx, liveProcess)
		if err != nil {
			errs = multierror.Append(errs, errors.WithMessagef(err, "get owner for pid '%d'", liveProcess.Pid))
			continue
		}

		snap = append(snap, domain.ProcessEntry{
			PID:       uint32(liveProcess.Pid),
			Name:      name,
			OwnerID:   ownerID,
			OwnerName: ownerName,
		})
	}

	if errs != nil {
		logger.Logger(ctx).Debug().Err(errs).Msg("process list omitted unresolvable processes")
	}
	return snap, nil
}
