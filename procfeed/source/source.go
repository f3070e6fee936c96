package source

import (
	"github.com/Gthulhu/procfeed/config"
	"github.com/Gthulhu/procfeed/procfeed/domain"
	"github.com/pkg/errors"
)

// New builds the process source selected by cfg.Kind.
func New(cfg config.SourceConfig) (domain.ProcessSource, error) {
	users := NewUserResolver(cfg.UserCacheTTL, nil)
	switch cfg.Kind {
	case config.SourceKindGopsutil, "":
		return NewGopsutilSource(users, cfg.SkipSelf), nil
	case config.SourceKindProcfs:
		return NewProcfsSource(cfg.ProcRoot, users, cfg.SkipSelf), nil
	default:
		return nil, errors.Errorf("unknown source kind %q", cfg.Kind)
	}
}
