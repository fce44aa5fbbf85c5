// Package registry contains the in-memory implementation of core.Registry.
//
// The canonical Registry interface lives in the core package to avoid
// dependency cycles and keep domain contracts central. This package provides
// the process-local catalog used by the workspace plus the built-in agent
// descriptors registered at startup.
//
// Registries are explicitly constructed instances passed by reference, never
// package-level singletons, so tests can instantiate isolated catalogs.
package registry
