package checker

import (
	"context"
	"testing"
	"time"
)

func TestResolveAddrsLocalhost(t *testing.T) {
	addrs := ResolveAddrs(context.Background(), "localhost", 5*time.Second)
	if len(addrs) == 0 {
		t.Skip("localhost did not resolve in this environment")
	}
}

func TestResolveAddrsInvalidHost(t *testing.T) {
	// .invalid is reserved and never resolves (RFC 2606).
	addrs := ResolveAddrs(context.Background(), "nonexistent.invalid", 2*time.Second)
	if len(addrs) != 0 {
		t.Errorf("Expected no addresses for reserved TLD, got %v", addrs)
	}
}
