// Package scraper provides HTTP fetching and HTML parsing for HLTV match
// results.
//
// The scraper fetches the public results listing page, keeps the result
// blocks whose Unix-millisecond timestamp falls on the requested calendar
// day, and extracts team names, scores, event, and maps for each. For
// best-of-N series it issues a follow-up fetch to the match-detail page to
// read the list of maps actually played. Matches are processed strictly
// sequentially, one fetch at a time.
package scraper
