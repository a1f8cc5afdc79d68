// Package domain contains the core types of the intake pipeline:
// inbound events, contact records, content kinds, OAuth tokens and the
// error taxonomy. It has no dependencies on adapters or transports.
package domain
