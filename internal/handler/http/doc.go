// Package http implements the HTTP transport of the city directory.
//
// It exposes route wiring, the city listing handler and the middleware used
// by the REST API. Request tracing, access logging and response compression
// are handled here before requests are delegated to the service layer.
package http
