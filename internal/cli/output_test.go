package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"counterscrape/internal/match"
)

func testResults() *match.Results {
	r := match.NewResults()
	r.Add(&match.Match{
		Timestamp: 1455990300000, TeamOne: "Astralis", TeamOneScore: 16,
		TeamTwo: "NaVi", TeamTwoScore: 12, Event: "ESL Pro League", Maps: "Mirage",
	})
	return r
}

func TestWriteTextAligned(t *testing.T) {
	var buf bytes.Buffer
	refDate := time.UnixMilli(1455990300000)

	if err := WriteOutput(&buf, testResults(), refDate, FormatText); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	lines := strings.Split(buf.String(), "\n")
	wantLine := "      Astralis      " + " 16 - 12 " + "        NaVi        " + " " + "Mirage       "
	if lines[0] != wantLine {
		t.Errorf("match line = %q, want %q", lines[0], wantLine)
	}

	day := match.DayString(refDate)
	rest := strings.Join(lines[1:], "\n")
	if !strings.Contains(rest, "CS:GO match results for "+day) {
		t.Errorf("missing date summary line in %q", rest)
	}
	if !strings.Contains(rest, "Powered by HLTV.org") {
		t.Errorf("missing attribution line in %q", rest)
	}
}

func TestWriteTextSingleDigitScores(t *testing.T) {
	r := match.NewResults()
	r.Add(&match.Match{
		Timestamp: 1455990300000, TeamOne: "fnatic", TeamOneScore: 2,
		TeamTwo: "dignitas", TeamTwoScore: 1, Event: "IEM Katowice", Maps: "Inferno",
	})

	var buf bytes.Buffer
	if err := WriteOutput(&buf, r, time.UnixMilli(1455990300000), FormatText); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	// Score one left-aligned in 2 columns, score two right-aligned in 2
	line := strings.SplitN(buf.String(), "\n", 2)[0]
	if !strings.Contains(line, " 2  -  1 ") {
		t.Errorf("score columns misaligned in %q", line)
	}
}

func TestWriteTextEmpty(t *testing.T) {
	var buf bytes.Buffer
	refDate := time.Date(2016, time.February, 20, 12, 0, 0, 0, time.Local)

	if err := WriteOutput(&buf, match.NewResults(), refDate, FormatText); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	want := "No match results for 20 February 2016\nPowered by HLTV.org\n"
	if buf.String() != want {
		t.Errorf("empty output = %q, want %q", buf.String(), want)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteOutput(&buf, testResults(), time.Now(), FormatJSON); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}

	var decoded match.Results
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	m, ok := decoded.Get(1455990300000)
	if !ok {
		t.Fatal("missing timestamp key in JSON output")
	}
	if m.TeamOne != "Astralis" || m.Maps != "Mirage" {
		t.Errorf("decoded match = %+v", m)
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		s        string
		width    int
		expected string
	}{
		{"NaVi", 20, "        NaVi        "},
		{"Astralis", 20, "      Astralis      "},
		{"abc", 6, " abc  "}, // odd gap goes right
		{"toolongforwidth", 4, "toolongforwidth"},
		{"", 4, "    "},
	}

	for _, tt := range tests {
		if got := center(tt.s, tt.width); got != tt.expected {
			t.Errorf("center(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.expected)
		}
	}
}
