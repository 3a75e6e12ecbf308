package discovery

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/grandcat/zeroconf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntry(instance string, port int, text []string, ips ...string) *zeroconf.ServiceEntry {
	entry := zeroconf.NewServiceEntry(instance, Service, Domain)
	entry.HostName = "relay.local."
	entry.Port = port
	entry.Text = text
	for _, raw := range ips {
		ip := net.ParseIP(raw)
		if ip.To4() != nil {
			entry.AddrIPv4 = append(entry.AddrIPv4, ip)
		} else {
			entry.AddrIPv6 = append(entry.AddrIPv6, ip)
		}
	}
	return entry
}

// ── Advertise ─────────────────────────────────────────────────────────────────

func TestAdvertise_RegistersService(t *testing.T) {
	var (
		gotInstance, gotService, gotDomain string
		gotPort                            int
		gotTXT                             []string
	)
	register := func(instance, service, domain string, port int, text []string, _ []net.Interface) (*zeroconf.Server, error) {
		gotInstance, gotService, gotDomain, gotPort = instance, service, domain, port
		gotTXT = append([]string(nil), text...)
		return nil, nil
	}

	adv, err := advertise(register, "clip-relay on desk", 8000, "1.2.3")
	require.NoError(t, err)
	require.NotNil(t, adv)

	assert.Equal(t, "clip-relay on desk", gotInstance)
	assert.Equal(t, "_clipsync._tcp", gotService)
	assert.Equal(t, "local.", gotDomain)
	assert.Equal(t, 8000, gotPort)
	assert.ElementsMatch(t, []string{"proto=1", "version=1.2.3"}, gotTXT)

	assert.NotPanics(t, adv.Stop, "nil server is tolerated")
}

func TestAdvertise_Errors(t *testing.T) {
	failing := func(string, string, string, int, []string, []net.Interface) (*zeroconf.Server, error) {
		return nil, errors.New("no multicast")
	}

	_, err := advertise(failing, "x", 8000, "dev")
	assert.ErrorContains(t, err, "no multicast")

	_, err = advertise(failing, "x", 0, "dev")
	assert.ErrorContains(t, err, "invalid port")
}

// ── Find ──────────────────────────────────────────────────────────────────────

func TestFind_ReturnsFirstUsableRelay(t *testing.T) {
	b := &Browser{browse: func(ctx context.Context, service, domain string, entries chan<- *zeroconf.ServiceEntry) error {
		assert.Equal(t, Service, service)
		go func() {
			entries <- newEntry("old", 7000, []string{"proto=0"}, "10.0.0.9")
			entries <- newEntry("relay", 8000, []string{"proto=1", "version=2.0.0"}, "fe80::1", "192.168.1.20", "2001:db8::5")
		}()
		return nil
	}}

	relay, err := b.Find(context.Background(), time.Second)
	require.NoError(t, err)

	assert.Equal(t, "relay", relay.Instance)
	assert.Equal(t, "2.0.0", relay.Version)
	assert.Equal(t, []string{"192.168.1.20", "2001:db8::5"}, relay.Addresses)
	assert.Equal(t, "http://192.168.1.20:8000", relay.URL())
}

func TestFind_Timeout(t *testing.T) {
	b := &Browser{browse: func(ctx context.Context, _, _ string, entries chan<- *zeroconf.ServiceEntry) error {
		go func() {
			<-ctx.Done()
			close(entries)
		}()
		return nil
	}}

	_, err := b.Find(context.Background(), 20*time.Millisecond)
	assert.ErrorIs(t, err, ErrRelayNotFound)
}

func TestFind_ParentCancelled(t *testing.T) {
	b := &Browser{browse: func(context.Context, string, string, chan<- *zeroconf.ServiceEntry) error { return nil }}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Find(ctx, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFind_BrowseError(t *testing.T) {
	b := &Browser{browse: func(context.Context, string, string, chan<- *zeroconf.ServiceEntry) error {
		return errors.New("socket closed")
	}}

	_, err := b.Find(context.Background(), time.Second)
	assert.ErrorContains(t, err, "socket closed")
}

func TestRelay_URL_FallsBackToHostName(t *testing.T) {
	r := Relay{HostName: "desk.local.", Port: 8000}
	assert.Equal(t, "http://desk.local:8000", r.URL())

	r = Relay{Addresses: []string{"2001:db8::5"}, Port: 8000}
	assert.Equal(t, "http://[2001:db8::5]:8000", r.URL())
}
