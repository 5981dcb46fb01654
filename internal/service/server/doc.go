// Package server runs the person gRPC server.
package server
