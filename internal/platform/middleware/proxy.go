// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/taibuivan/fyyur/internal/platform/constants"
)

/*
ProxyTrust decides which peers may report the client address through
X-Real-IP and X-Forwarded-For.

Requests from any other peer are identified by their socket address alone, so
a client cannot pick its own rate limit bucket by sending those headers. A nil
*ProxyTrust trusts nobody.
*/
type ProxyTrust struct {
	prefixes []netip.Prefix
}

/*
NewProxyTrust parses the trusted proxy list.

Parameters:
  - entries: []string (CIDR blocks or single addresses, e.g. "10.0.0.0/8", "127.0.0.1")

Returns:
  - *ProxyTrust: nil when entries is empty
  - error: An entry that is neither a prefix nor an address
*/
func NewProxyTrust(entries []string) (*ProxyTrust, error) {
	prefixes := make([]netip.Prefix, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("middleware: trusted proxy %q: %w", entry, err)
			}
			prefixes = append(prefixes, prefix.Masked())
			continue
		}

		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("middleware: trusted proxy %q: %w", entry, err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}

	if len(prefixes) == 0 {
		return nil, nil
	}
	return &ProxyTrust{prefixes: prefixes}, nil
}

// ClientIP returns the address the request is attributed to.
//
// Behind a trusted peer, X-Real-IP wins; otherwise X-Forwarded-For is walked
// from the right and the first hop that is not itself a trusted proxy is used.
func (trust *ProxyTrust) ClientIP(request *http.Request) string {
	peer := remoteHost(request)
	if !trust.trusts(peer) {
		return peer
	}

	if realIP, ok := parseAddr(request.Header.Get(constants.HeaderXRealIP)); ok {
		return realIP.String()
	}

	hops := strings.Split(request.Header.Get(constants.HeaderXForwardedFor), ",")
	for index := len(hops) - 1; index >= 0; index-- {
		hop, ok := parseAddr(hops[index])
		if !ok {
			break
		}
		if !trust.contains(hop) {
			return hop.String()
		}
	}
	return peer
}

func (trust *ProxyTrust) trusts(host string) bool {
	addr, ok := parseAddr(host)
	return ok && trust.contains(addr)
}

func (trust *ProxyTrust) contains(addr netip.Addr) bool {
	if trust == nil {
		return false
	}
	for _, prefix := range trust.prefixes {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

func parseAddr(value string) (netip.Addr, bool) {
	addr, err := netip.ParseAddr(strings.TrimSpace(value))
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}

func remoteHost(request *http.Request) string {
	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}
	return host
}
