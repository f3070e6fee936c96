package source

import (
	"os/user"
	"time"

	cache "github.com/Code-Hex/go-generics-cache"
)

// UserLookupFunc resolves a platform owner id in textual form to an account name.
type UserLookupFunc func(uid string) (string, error)

type userResult struct {
	name string
	ok   bool
}

// UserResolver caches owner id to account name lookups, including failures,
// so an unresolvable account costs one lookup per TTL rather than one per
// process per refresh.
type UserResolver struct {
	cache  *cache.Cache[string, userResult]
	ttl    time.Duration
	lookup UserLookupFunc
}

func NewUserResolver(ttl time.Duration, lookup UserLookupFunc) *UserResolver {
	if lookup == nil {
		lookup = lookupAccountName
	}
	return &UserResolver{
		cache:  cache.New[string, userResult](),
		ttl:    ttl,
		lookup: lookup,
	}
}

// Resolve returns the account name for uid and whether it could be resolved.
func (r *UserResolver) Resolve(uid string) (string, bool) {
	if res, ok := r.cache.Get(uid); ok {
		return res.name, res.ok
	}
	name, err := r.lookup(uid)
	res := userResult{name: name, ok: err == nil && name != ""}
	if r.ttl > 0 {
		r.cache.Set(uid, res, cache.WithExpiration(r.ttl))
	}
	return res.name, res.ok
}

func lookupAccountName(uid string) (string, error) {
	u, err := user.LookupId(uid)
	if err != nil {
		return "", err
	}
	return u.Username, nil
}
