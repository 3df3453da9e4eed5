// Package storage houses concrete implementations of core.SnapshotStore.
// The port itself lives in the core package to centralize domain contracts;
// keeping only implementations here prevents higher level packages
// (registry, façade) from depending on concrete persistence.
//
// Add additional backends (embedded databases, object stores, etc.) in
// sub-packages without changing any calling code; only the wiring layer
// decides which implementation to instantiate.
package storage
