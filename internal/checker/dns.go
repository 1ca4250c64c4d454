package checker

import (
	"context"
	"net"
	"time"
)

// ResolveAddrs performs an address lookup for the host and returns every
// resolved IP as a string. An empty slice means resolution failed; that is
// the degraded observation, never an error.
func ResolveAddrs(ctx context.Context, host string, timeout time.Duration) []string {
	resolver := &net.Resolver{PreferGo: true}

	lookupCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	addrs, err := resolver.LookupHost(lookupCtx, host)
	if err != nil {
		return nil
	}
	return addrs
}
