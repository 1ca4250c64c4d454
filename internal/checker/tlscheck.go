package checker

import (
	"context"
	"crypto/tls"
	"net"
	"time"
)

// CheckCertificate opens a TLS connection to host:443 and validates the
// presented certificate chain against the system roots. Returns validity and
// the leaf certificate's expiry time.
func CheckCertificate(ctx context.Context, host string, timeout time.Duration) (bool, time.Time) {
	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: timeout},
		Config:    &tls.Config{ServerName: host},
	}

	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := dialer.DialContext(dialCtx, "tcp", net.JoinHostPort(host, "443"))
	if err != nil {
		return false, time.Time{}
	}
	defer conn.Close()

	state := conn.(*tls.Conn).ConnectionState()
	if len(state.PeerCertificates) == 0 {
		return false, time.Time{}
	}
	return true, state.PeerCertificates[0].NotAfter
}
