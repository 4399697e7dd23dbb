package tui

import (
	"context"
	"crypto/x509"
	"errors"
	"net"
	"strings"
	"syscall"

	"github.com/minatsilvester/hedwig/internal/executor"
)

// Hints shown in the status bar when a send fails
const (
	hintTimeout     = "timed out, raise timeout in config"
	hintCancelled   = "cancelled"
	hintDNS         = "host not found"
	hintRefused     = "connection refused, is the server running?"
	hintReset       = "connection reset by server"
	hintUnreachable = "network unreachable"
	hintUntrusted   = "untrusted certificate, set tls.caFile"
	hintTLS         = "TLS error"
	hintBadURL      = "invalid URL"
	hintClosed      = "connection closed early"
	hintReadBody    = "response body could not be read"
)

// substringHints maps fragments of transport error text to hints, checked in order
var substringHints = []struct {
	fragments []string
	hint      string
}{
	{[]string{"no such host", "dial tcp: lookup"}, hintDNS},
	{[]string{"connection refused"}, hintRefused},
	{[]string{"connection reset"}, hintReset},
	{[]string{"network is unreachable", "no route to host"}, hintUnreachable},
	{[]string{"unknown authority", "not trusted"}, hintUntrusted},
	{[]string{"tls", "x509", "certificate"}, hintTLS},
	{[]string{"unsupported protocol", "invalid url", "missing protocol scheme", "no host in request url"}, hintBadURL},
	{[]string{"eof"}, hintClosed},
	{[]string{"timeout", "timed out"}, hintTimeout},
}

// failureHint returns a short explanation of a failed send, or "" when none applies
func failureHint(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, executor.ErrReadBody):
		return hintReadBody
	case errors.Is(err, context.DeadlineExceeded):
		return hintTimeout
	case errors.Is(err, context.Canceled):
		return hintCancelled
	case errors.Is(err, syscall.ECONNREFUSED):
		return hintRefused
	case errors.Is(err, syscall.ECONNRESET):
		return hintReset
	case errors.Is(err, syscall.ENETUNREACH), errors.Is(err, syscall.EHOSTUNREACH):
		return hintUnreachable
	}

	var unknownAuthority x509.UnknownAuthorityError
	if errors.As(err, &unknownAuthority) {
		return hintUntrusted
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return hintDNS
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return hintTimeout
	}

	text := strings.ToLower(err.Error())
	for _, h := range substringHints {
		for _, fragment := range h.fragments {
			if strings.Contains(text, fragment) {
				return h.hint
			}
		}
	}

	return ""
}
