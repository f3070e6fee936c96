//go:build windows

package source

import (
	"context"
	"strings"

	"github.com/Gthulhu/procfeed/procfeed/domain"
	psUtil "github.com/shirou/gopsutil/process"
)

// owner uses the DOMAIN\user account as the opaque id and the bare user part
// as the display name.
func (src *GopsutilSource) owner(ctx context.Context, p *psUtil.Process) (domain.OwnerID, string, error) {
	account, err := p.UsernameWithContext(ctx)
	if err != nil {
		return "", "", err
	}
	id, err := domain.ParseOwnerID(account)
	if err != nil {
		return "", "", err
	}
	name := account
	if i := strings.LastIndex(account, `\`); i >= 0 {
		name = account[i+1:]
	}
	return id, name, nil
}
