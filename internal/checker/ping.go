package checker

import (
	"context"
	"os/exec"
	"runtime"
	"time"
)

// Ping sends a single ICMP echo request via the system ping binary and
// reports whether the host answered. Raw ICMP sockets need elevated
// privileges, so shelling out matches what an operator could run by hand.
func Ping(ctx context.Context, host string, timeout time.Duration) bool {
	countFlag := "-c"
	if runtime.GOOS == "windows" {
		countFlag = "-n"
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(pingCtx, "ping", countFlag, "1", host)
	return cmd.Run() == nil
}
