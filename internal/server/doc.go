// Package server runs the city directory HTTP server, including startup,
// signal handling and graceful shutdown.
package server
