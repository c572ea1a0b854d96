/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package endpoint

import (
	"net"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Well known ports of consensus nodes and mirror nodes
const (
	PortNodePlain   = 50211
	PortNodeTLS     = 50212
	PortMirrorPlain = 5600
	PortMirrorTLS   = 443
)

// Address is a host and port of a consensus or mirror node
type Address struct {
	Host string
	Port int
}

// ParseAddress parses "host:port", optionally prefixed with grpc:// or grpcs://.
// A grpcs:// prefix selects the TLS port counterpart of the given port.
func ParseAddress(url string) (Address, error) {
	hostPort := ToAddress(url)
	host, portStr, err := net.SplitHostPort(hostPort)
	if err != nil {
		return Address{}, errors.Wrapf(err, "invalid node address [%s]", url)
	}
	if host == "" {
		return Address{}, errors.Errorf("invalid node address [%s]: empty host", url)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return Address{}, errors.Errorf("invalid node address [%s]: bad port", url)
	}
	addr := Address{Host: host, Port: port}
	if IsTLSEnabled(url) {
		addr = addr.ToSecure()
	}
	return addr, nil
}

// String returns host:port
func (a Address) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// IsTLS reports whether the port is one of the TLS ports
func (a Address) IsTLS() bool {
	return a.Port == PortNodeTLS || a.Port == PortMirrorTLS
}

// ToSecure maps a plaintext port onto its TLS counterpart.
// Unknown ports are returned unchanged.
func (a Address) ToSecure() Address {
	switch a.Port {
	case PortNodePlain:
		a.Port = PortNodeTLS
	case PortMirrorPlain:
		a.Port = PortMirrorTLS
	}
	return a
}

// ToInsecure maps a TLS port onto its plaintext counterpart.
func (a Address) ToInsecure() Address {
	switch a.Port {
	case PortNodeTLS:
		a.Port = PortNodePlain
	case PortMirrorTLS:
		a.Port = PortMirrorPlain
	}
	return a
}

// IsTLSEnabled is a generic function that expects a URL and verifies if it has
// a prefix HTTPS or GRPCS to return true for TLS Enabled URLs or false otherwise
func IsTLSEnabled(url string) bool {
	tlsURL := strings.ToLower(url)
	if strings.HasPrefix(tlsURL, "https://") || strings.HasPrefix(tlsURL, "grpcs://") {
		return true
	}
	return false
}

// ToAddress is a utility function to trim the GRPC protocol prefix as it is not needed by GO
// if the GRPC protocol is not found, the url is returned unchanged
func ToAddress(url string) string {
	if strings.HasPrefix(url, "grpc://") {
		return strings.TrimPrefix(url, "grpc://")
	}
	if strings.HasPrefix(url, "grpcs://") {
		return strings.TrimPrefix(url, "grpcs://")
	}
	return url
}

//AttemptSecured is a utility function which verifies URL and returns if secured connections needs to established
// for protocol 'grpcs' in URL returns true
// for protocol 'grpc' in URL returns false
// for no protocol mentioned, returns whether the port is a TLS port
func AttemptSecured(url string) bool {
	ok, err := regexp.MatchString(".*(?i)s://", url)
	if ok && err == nil {
		return true
	} else if strings.Contains(url, "://") {
		return false
	}
	addr, err := ParseAddress(url)
	if err != nil {
		return false
	}
	return addr.IsTLS()
}
