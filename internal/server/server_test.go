// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-catalog-admin/internal/config"
	"github.com/MKhiriev/go-catalog-admin/internal/handler"
	"github.com/MKhiriev/go-catalog-admin/internal/logger"
	"github.com/MKhiriev/go-catalog-admin/internal/service"
)

func newTestHandlers(t *testing.T, addr string) *handler.Handlers {
	t.Helper()
	h, err := handler.NewHandlers(&service.Services{}, config.StructuredConfig{Server: config.Server{HTTPAddress: addr}}, logger.Nop())
	require.NoError(t, err)
	return h
}

// ── NewServer ──────────────────────────────────────────────────────────────

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoHTTPHandler)
}

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(newTestHandlers(t, ":8080"), config.Server{}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoHTTPAddress)
}

func TestNewServer_UsesAddress(t *testing.T) {
	s, err := NewServer(newTestHandlers(t, "127.0.0.1:3002"), config.Server{HTTPAddress: "127.0.0.1:3002"}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:3002", s.(*server).httpServer.server.Addr)
}

// ── run ────────────────────────────────────────────────────────────────────

func TestRun_StopsWhenContextIsDone(t *testing.T) {
	s, err := NewServer(newTestHandlers(t, "127.0.0.1:0"), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.(*server).run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_ReturnsListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	addr := busy.Addr().String()
	s, err := NewServer(newTestHandlers(t, addr), config.Server{HTTPAddress: addr}, logger.Nop())
	require.NoError(t, err)

	err = s.(*server).run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ListenAndServe")
}
