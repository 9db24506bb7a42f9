// Package cli implements the command-line interface for counterscrape.
//
// The cli package provides the Cobra-based root command with support for
// picking the results date, filtering by team, and formatting output as
// aligned text or JSON. It wires together the config, scraper, and match
// packages for one fetch-and-print cycle per invocation.
package cli
