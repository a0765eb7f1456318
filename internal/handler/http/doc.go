// Package http implements the HTTP transport layer of the what-to-cook server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request tracing, access
// logging, metrics and response compression are handled in this package
// before requests are delegated to the service layer. Every error leaves the
// package as a JSON body of the form {"error": "<message>"}.
package http
