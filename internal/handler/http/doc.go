// Package http implements the HTTP transport layer of the shop API.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Every API request gets a fresh [models.RouteData] and, when the caller
// presents one, a verified API token payload in its context before it reaches
// the feature routers (auth, accounts, vendors, products, cart). Request
// tracing, access logging and sessions are handled at this layer as well.
package http
