// Package driving defines the interfaces through which transports and
// the CLI drive the core: intake handling and credential bootstrap.
package driving
