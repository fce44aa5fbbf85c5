// Package config loads workspace configuration from YAML: the mention
// trigger character, simulation speed, logging, and an optional list of
// additional agent descriptors registered at startup. The agents list is the
// external-integration path: deployments can add dispatchable agents without
// code changes.
package config
