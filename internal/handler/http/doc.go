// Package http implements the REST transport of the rich-info server.
//
// It wires the chi router, the request handlers for authentication, teams
// and profile fields, and the middleware chain (trace IDs, access logging,
// gzip, bearer-token auth). Handlers decode requests, call into the service
// layer, and translate service errors to HTTP status codes through the
// error mapper; every 403 carries the same opaque body regardless of the
// denial reason.
package http
