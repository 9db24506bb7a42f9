package scraper

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"counterscrape/internal/logger"
	"counterscrape/internal/match"
)

const (
	// BaseURL is the HLTV host all results and match-detail pages live on
	BaseURL   = "https://www.hltv.org"
	UserAgent = "counterscrape/1.0"
	Timeout   = 30 * time.Second

	resultsPath = "/results"
)

// StatusError reports a non-OK HTTP response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d fetching %s", e.StatusCode, e.URL)
}

// Options configures a Scraper. Zero-value fields fall back to package
// defaults.
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Scraper fetches and parses HLTV result pages. The HTTP client is reused
// across fetches.
type Scraper struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// New creates a new Scraper instance
func New(opts Options) *Scraper {
	if opts.BaseURL == "" {
		opts.BaseURL = BaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = UserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = Timeout
	}
	return &Scraper{
		client: &http.Client{
			Timeout: opts.Timeout,
		},
		baseURL:   opts.BaseURL,
		userAgent: opts.UserAgent,
	}
}

// FetchResults fetches the results listing page and returns the matches
// played on refDate's calendar day, in document order. A match whose
// fields cannot be extracted is skipped with a warning rather than
// failing the whole set.
func (s *Scraper) FetchResults(refDate time.Time) (*match.Results, error) {
	resp, err := s.get(s.baseURL + resultsPath)
	if err != nil {
		return nil, fmt.Errorf("fetching results page: %w", err)
	}
	defer resp.Body.Close()

	return s.parseResults(resp.Body, refDate)
}

// parseResults extracts same-day match records from the listing HTML
func (s *Scraper) parseResults(r io.Reader, refDate time.Time) (*match.Results, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	day := match.DayString(refDate)
	results := match.NewResults()

	doc.Find("div.result-con").Each(func(i int, sel *goquery.Selection) {
		raw, ok := sel.Attr("data-zonedgrouping-entry-unix")
		if !ok {
			return
		}
		timestamp, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			logger.Warn("skipping match with bad timestamp", logger.Fields{
				"timestamp": raw,
				"error":     err.Error(),
			})
			return
		}
		if match.Day(timestamp) != day {
			return
		}

		m, err := s.extractMatch(sel, timestamp)
		if err != nil {
			logger.Warn("skipping unparsable match", logger.Fields{
				"timestamp": timestamp,
				"error":     err.Error(),
			})
			return
		}
		results.Add(m)
	})

	return results, nil
}

// extractMatch pulls one match record out of a result-con block
func (s *Scraper) extractMatch(sel *goquery.Selection, timestamp int64) (*match.Match, error) {
	teamOne := strings.TrimSpace(sel.Find(".team1").First().Text())
	teamTwo := strings.TrimSpace(sel.Find(".team2").First().Text())
	if teamOne == "" || teamTwo == "" {
		return nil, errors.New("missing team name")
	}

	scoreBlob := sel.Find(".result-score").First().Text()
	scoreOne, scoreTwo, err := splitScores(scoreBlob)
	if err != nil {
		return nil, fmt.Errorf("parsing score %q: %w", scoreBlob, err)
	}

	event := strings.TrimSpace(sel.Find(".event-name").First().Text())

	maps := strings.TrimSpace(sel.Find(".map-text").First().Text())
	if strings.Contains(maps, "bo") {
		// Best-of-N series: the maps played live on the match-detail
		// page, truncated to the number of games actually played
		href, ok := sel.Find("a.a-reset").First().Attr("href")
		if !ok {
			return nil, errors.New("missing match detail link")
		}
		maps, err = s.FetchMaps(href, scoreOne+scoreTwo)
		if err != nil {
			return nil, fmt.Errorf("fetching map list: %w", err)
		}
	} else {
		maps, err = match.ResolveMap(maps)
		if err != nil {
			return nil, err
		}
	}

	return &match.Match{
		Timestamp:    timestamp,
		TeamOne:      teamOne,
		TeamOneScore: scoreOne,
		TeamTwo:      teamTwo,
		TeamTwoScore: scoreTwo,
		Event:        event,
		Maps:         maps,
	}, nil
}

// FetchMaps fetches a match-detail page and returns the first played map
// names joined by single spaces. Asking for more maps than the page lists
// returns all available entries.
func (s *Scraper) FetchMaps(href string, played int) (string, error) {
	resp, err := s.get(s.baseURL + href)
	if err != nil {
		return "", fmt.Errorf("fetching match page: %w", err)
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	names := make([]string, 0, played)
	doc.Find("div.mapname").Each(func(i int, sel *goquery.Selection) {
		names = append(names, strings.TrimSpace(sel.Text()))
	})

	if played < len(names) {
		names = names[:played]
	}
	return strings.Join(names, " "), nil
}

// splitScores splits a result-score text blob on whitespace and parses
// the first and last tokens, tolerating whatever separators or markup the
// listing renders between the two scores.
func splitScores(blob string) (int, int, error) {
	fields := strings.Fields(blob)
	if len(fields) == 0 {
		return 0, 0, errors.New("empty score")
	}

	one, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("parsing first score: %w", err)
	}
	two, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0, 0, fmt.Errorf("parsing second score: %w", err)
	}
	return one, two, nil
}

// get issues a GET and fails on any non-OK status
func (s *Scraper) get(url string) (*http.Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}
	return resp, nil
}
