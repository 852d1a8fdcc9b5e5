package http

import (
	"time"

	"github.com/MKhiriev/go-catalog-admin/internal/config"
	"github.com/MKhiriev/go-catalog-admin/internal/logger"
	"github.com/MKhiriev/go-catalog-admin/internal/service"
	"github.com/MKhiriev/go-catalog-admin/internal/utils"
)

type Handler struct {
	services *service.Services

	// requireAuth puts the resource routes behind the bearer-token middleware.
	requireAuth bool

	// requestTimeout bounds the lifetime of every request context.
	requestTimeout time.Duration

	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().
		Bool("require_auth", cfg.App.RequireAuth).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Msg("http handler created")
	return &Handler{
		services:       services,
		requireAuth:    cfg.App.RequireAuth,
		requestTimeout: cfg.Server.RequestTimeout,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
