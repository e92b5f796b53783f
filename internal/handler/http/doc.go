// Package http implements the HTTP transport of the session auth service.
//
// It wires the chi router, the register, login and logout endpoints, the
// session introspection route and the middleware chain (panic recovery,
// trace ids, access logging, request timeout, session authentication).
// Endpoint logic returns a result or an unexpected error; the error is
// turned into a generic 5xx response in one place.
package http
