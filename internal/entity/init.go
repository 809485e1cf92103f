// Package entity registers the console's entity definitions with the
// reconcile registry and provides the typed view-models rendered by the UI.
// Import this package to ensure all entities are registered.
package entity

// Each entity file uses init() to register its definition.
