// Package driven defines the interfaces the core depends on: content
// extractors, the media fetcher, the row appender and credential
// storage. Adapters implement these.
package driven
