// Package internal documents the eventdeck server internals.
//
// The internal tree is organized by responsibility:
// - api: HTTP handlers, middleware, error bodies, and routing
// - config: environment/file configuration and the logger factory
// - domain: business logic for the events and nudges collections
// - storage: MongoDB repositories behind the domain interfaces
// - metrics, telemetry: prometheus instrumentation and tracing
//
// Code in internal/ is not meant for external import.
package internal
