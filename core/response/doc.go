// Package response provides handler.Response constructors and the
// structured HTTPError taxonomy. Request-time failures reach clients as
// a status code plus a code/message pair, never as a stack trace.
package response
