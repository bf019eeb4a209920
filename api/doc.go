// Package api exposes the instruction engine over HTTP.
//
// It owns request-body structural validation, the response envelopes, and the
// middleware chain (request ID, access logging, tracing, panic recovery). The
// domain decision itself is delegated to the settlement package.
package api
