// Package server runs the gateway's REST listener and its gRPC health
// listener side by side and drains both on SIGINT, SIGTERM or SIGQUIT.
package server
