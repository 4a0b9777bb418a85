// Package service runs long-lived infrastructure (terminal screen, music
// backend) through a common lifecycle with dependency ordering.
package service

// Service is a subsystem owning an external resource
//
// The Hub drives every service through: construct, Init(args), Start, Stop.
// Init receives the args registered under the service name and must not
// launch goroutines; Start may. Stop runs in reverse start order and may be
// called more than once.
type Service interface {
	Name() string

	// Dependencies names services whose Init must complete first, nil for none
	Dependencies() []string

	Init(args ...any) error
	Start() error
	Stop() error
}
