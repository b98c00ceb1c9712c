// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by the
// HTTP bridge. Client ports are implemented by outbound adapters (the remote
// to-do API gateway) and called by the application layer.
package ports
