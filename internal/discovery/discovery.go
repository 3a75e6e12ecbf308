// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package discovery publishes the relay on the local network over mDNS and
// lets devices find it when no relay address is configured.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/grandcat/zeroconf"
)

const (
	// Service is the mDNS service type of the relay.
	Service = "_clipsync._tcp"
	// Domain is the mDNS domain.
	Domain = "local."
	// ProtocolVersion is published in the TXT record so future devices can
	// skip relays that speak an incompatible API.
	ProtocolVersion = 1

	defaultFindTimeout = 3 * time.Second
)

// ErrRelayNotFound is returned by Find when no relay answered in time.
var ErrRelayNotFound = errors.New("no relay found on the local network")

type registerFunc func(instance, service, domain string, port int, text []string, ifaces []net.Interface) (*zeroconf.Server, error)
type browseFunc func(ctx context.Context, service, domain string, entries chan<- *zeroconf.ServiceEntry) error

// Advertiser keeps the relay's mDNS registration alive until Stop.
type Advertiser struct {
	server *zeroconf.Server
}

// Advertise registers the relay listening on port under instance. version
// is the relay build version.
func Advertise(instance string, port int, version string) (*Advertiser, error) {
	return advertise(zeroconf.Register, instance, port, version)
}

func advertise(register registerFunc, instance string, port int, version string) (*Advertiser, error) {
	if port <= 0 {
		return nil, fmt.Errorf("invalid port %d", port)
	}
	if strings.TrimSpace(instance) == "" {
		instance = "clip-relay"
	}

	txt := []string{
		"proto=" + strconv.Itoa(ProtocolVersion),
		"version=" + version,
	}

	server, err := register(instance, Service, Domain, port, txt, nil)
	if err != nil {
		return nil, fmt.Errorf("register mDNS service: %w", err)
	}

	return &Advertiser{server: server}, nil
}

// Stop withdraws the registration.
func (a *Advertiser) Stop() {
	if a == nil || a.server == nil {
		return
	}
	a.server.Shutdown()
}

// Relay is a relay found on the network.
type Relay struct {
	Instance  string
	HostName  string
	Port      int
	Addresses []string
	Version   string
}

// URL returns the base URL of the relay. IPv4 addresses sort first and are
// preferred; the host name is used when no address was resolved.
func (r Relay) URL() string {
	host := strings.TrimSuffix(r.HostName, ".")
	if len(r.Addresses) > 0 {
		host = r.Addresses[0]
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(r.Port))
}

// Browser looks up relays over mDNS.
type Browser struct {
	browse browseFunc
}

func NewBrowser() (*Browser, error) {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("create mDNS resolver: %w", err)
	}
	return &Browser{browse: resolver.Browse}, nil
}

// Find returns the first relay that answers within timeout. A non-positive
// timeout defaults to three seconds.
func (b *Browser) Find(ctx context.Context, timeout time.Duration) (Relay, error) {
	if timeout <= 0 {
		timeout = defaultFindTimeout
	}

	scanCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	entries := make(chan *zeroconf.ServiceEntry, 8)
	if err := b.browse(scanCtx, Service, Domain, entries); err != nil {
		return Relay{}, fmt.Errorf("browse %s: %w", Service, err)
	}

	for {
		select {
		case <-scanCtx.Done():
			if err := ctx.Err(); err != nil {
				return Relay{}, err
			}
			return Relay{}, ErrRelayNotFound
		case entry, ok := <-entries:
			if !ok {
				// resolver closed the channel; wait for the deadline
				entries = nil
				continue
			}
			if relay, found := parseEntry(entry); found {
				return relay, nil
			}
		}
	}
}

func parseEntry(entry *zeroconf.ServiceEntry) (Relay, bool) {
	if entry == nil || entry.Port <= 0 {
		return Relay{}, false
	}

	txt := txtToMap(entry.Text)
	if proto, err := strconv.Atoi(txt["proto"]); err == nil && proto != ProtocolVersion {
		return Relay{}, false
	}

	var v4, v6 []string
	for _, ip := range entry.AddrIPv4 {
		if ip != nil {
			v4 = append(v4, ip.String())
		}
	}
	for _, ip := range entry.AddrIPv6 {
		if ip != nil && !ip.IsLinkLocalUnicast() {
			v6 = append(v6, ip.String())
		}
	}
	sort.Strings(v4)
	sort.Strings(v6)

	addresses := append(v4, v6...)
	if len(addresses) == 0 && strings.TrimSpace(entry.HostName) == "" {
		return Relay{}, false
	}

	return Relay{
		Instance:  entry.Instance,
		HostName:  entry.HostName,
		Port:      entry.Port,
		Addresses: addresses,
		Version:   txt["version"],
	}, true
}

func txtToMap(records []string) map[string]string {
	out := make(map[string]string, len(records))
	for _, record := range records {
		key, value, _ := strings.Cut(record, "=")
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}
