// Package feedcheck cross-checks the streaming parser against gofeed and
// lists element attributes for inspection.
package feedcheck
