// Package services contains the core orchestration: the intake
// dispatcher that routes attachments to extractors, collapses
// extraction failures to their sentinel strings and appends the
// derived contact record.
package services
