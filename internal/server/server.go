// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/MKhiriev/go-clip-relay/internal/config"
	"github.com/MKhiriev/go-clip-relay/internal/discovery"
	"github.com/MKhiriev/go-clip-relay/internal/handler"
	"github.com/MKhiriev/go-clip-relay/internal/logger"
)

const shutdownTimeout = 10 * time.Second

type advertiseFunc func(instance string, port int, version string) (*discovery.Advertiser, error)

type server struct {
	httpServer *httpServer
	listener   net.Listener

	advertise bool
	version   string
	announce  advertiseFunc

	logger *logger.Logger
}

// NewServer binds cfg.Address and prepares the HTTP server. The listener is
// open once NewServer returns, so Addr reports the real port even for ":0".
func NewServer(handlers *handler.Handlers, cfg *config.RelayConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	listener, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", cfg.Address, err)
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), listener, cfg, logger),
		listener:   listener,
		advertise:  cfg.Advertise,
		version:    cfg.Version,
		announce:   discovery.Advertise,
		logger:     logger,
	}, nil
}

func (s *server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *server) RunServer(ctx context.Context) error {
	if s.advertise {
		if adv := s.startAdvertising(); adv != nil {
			defer adv.Stop()
		}
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", s.Addr().String()).Msg("Launching HTTP server")
		errCh <- s.httpServer.RunServer()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.httpServer.Shutdown(shutdownCtx)

	if err := <-errCh; err != nil {
		return err
	}
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}

// startAdvertising publishes the relay over mDNS. Failure only disables
// discovery; devices can still use an explicit address.
func (s *server) startAdvertising() *discovery.Advertiser {
	port := 0
	if tcp, ok := s.Addr().(*net.TCPAddr); ok {
		port = tcp.Port
	}

	adv, err := s.announce(instanceName(), port, s.version)
	if err != nil {
		s.logger.Warn().Err(err).Msg("mDNS advertising disabled")
		return nil
	}

	s.logger.Info().Int("port", port).Str("service", discovery.Service).Msg("relay advertised over mDNS")
	return adv
}

func instanceName() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return "clip-relay"
	}
	return "clip-relay on " + host
}
