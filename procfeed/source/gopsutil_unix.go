//go:build !windows

package source

import (
	"context"
	"strconv"

	"github.com/Gthulhu/procfeed/procfeed/domain"
	"github.com/pkg/errors"
	psUtil "github.com/shirou/gopsutil/process"
)

var errNoUID = errors.New("no uid reported")

func (src *GopsutilSource) owner(ctx context.Context, p *psUtil.Process) (domain.OwnerID, string, error) {
	uids, err := p.UidsWithContext(ctx)
	if err != nil {
		return 0, "", err
	}
	if len(uids) == 0 || uids[0] < 0 {
		return 0, "", errNoUID
	}
	uid := strconv.FormatInt(int64(uids[0]), 10)
	name, ok := src.users.Resolve(uid)
	if !ok {
		return 0, "", errors.Errorf("unresolvable uid %s", uid)
	}
	return domain.OwnerID(uids[0]), name, nil
}
