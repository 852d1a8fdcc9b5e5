// Package http implements the HTTP transport layer of the catalog admin
// backend.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Every collection returned by [service.Services.Resources] is mounted
// under /api/{collection} with the same five handlers, so categories,
// products and users share one code path. Request tracing, access logging,
// optional bearer authentication and error mapping are handled here before
// requests are delegated to the resource mutators.
package http
