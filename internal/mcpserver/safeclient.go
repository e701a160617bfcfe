package mcpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/Saber-Kurama/learn-pont/fetcher"
)

// isBlockedIP returns true if the IP is private, loopback, link-local, or unspecified.
func isBlockedIP(ip net.IP) bool {
	return ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsUnspecified()
}

// newSafeTransport returns a pooled transport that refuses to connect to
// private, loopback or link-local addresses. Every dial is checked, so
// redirects to internal hosts fail as well.
func newSafeTransport() http.RoundTripper {
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	t := cleanhttp.DefaultPooledTransport()
	t.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
		host, port, err := net.SplitHostPort(addr)
		if err != nil {
			return nil, err
		}
		ips, err := net.DefaultResolver.LookupIPAddr(ctx, host)
		if err != nil {
			return nil, err
		}
		if len(ips) == 0 {
			return nil, fmt.Errorf("no IP addresses found for host: %s", host)
		}
		for _, ipAddr := range ips {
			if isBlockedIP(ipAddr.IP) {
				return nil, fmt.Errorf("blocked request to private/loopback IP: %s (%s)", host, ipAddr.IP)
			}
		}
		return dialer.DialContext(ctx, network, net.JoinHostPort(ips[0].IP.String(), port))
	}
	return t
}

// newURLFetcher returns the fetcher used for url inputs. Agents choose the
// URLs, so internal addresses are blocked unless explicitly allowed.
func newURLFetcher() (fetcher.Fetcher, error) {
	opts := []fetcher.Option{fetcher.WithMaxRetries(1), fetcher.WithMaxBytes(cfg.MaxInlineSize)}
	if !cfg.AllowPrivateIPs {
		opts = append(opts, fetcher.WithTransport(newSafeTransport()))
	}
	return fetcher.NewHTTP(opts...)
}
