// Package middleware provides the fixed middleware catalog the
// application container assembles its pipeline from:
//
//	file       static-file fallback for not-found GET/HEAD requests
//	validation maps ValidationError failures to 422 responses
//	date       stamps responses with an RFC 7231 Date header
//	type-safe  renders structured HTTPError failures
//	abort      terminal mapper turning any failure into a response
//	sessions   loads and saves the client session
//
// Constructors follow one shape: X[C]() for defaults and
// XWithConfig[C](cfg) for customization, with an optional Skip function
// per request.
package middleware
