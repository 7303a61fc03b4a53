// Package redact detects and masks secrets in text. Detection is
// layered: gitleaks pattern rules catch known credential formats, and
// a Shannon-entropy gate catches opaque high-entropy tokens the rules
// miss. Either layer alone flags a string.
package redact

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/zricethezav/gitleaks/v8/detect"
)

// candidatePattern matches token-shaped runs worth an entropy check.
var candidatePattern = regexp.MustCompile(`[A-Za-z0-9/+_=-]{10,}`)

// entropyThreshold is the minimum Shannon entropy for a candidate to
// count as a secret. 4.5 sits above common identifiers and below
// typical API keys, which land well past 5.0.
const entropyThreshold = 4.5

// entropyRuleID labels findings produced by the entropy gate rather
// than a gitleaks rule.
const entropyRuleID = "high-entropy"

var (
	detector     *detect.Detector
	detectorOnce sync.Once
)

func getDetector() *detect.Detector {
	detectorOnce.Do(func() {
		d, err := detect.NewDetectorDefaultConfig()
		if err != nil {
			return
		}
		detector = d
	})
	return detector
}

// Finding is one detected secret: which rule flagged it and where it
// sits in the scanned string. Preview is safe to show in diagnostics.
type Finding struct {
	RuleID      string
	Description string
	Preview     string

	start, end int
}

// mask renders a short non-reversible preview of a secret.
func mask(secret string) string {
	const keep = 4
	if len(secret) <= keep {
		return strings.Repeat("*", len(secret))
	}
	return secret[:keep] + strings.Repeat("*", 4) + fmt.Sprintf(" (%d chars)", len(secret))
}

// Findings scans s and returns every detected secret, ordered by
// position. Overlapping detections are reported individually; the
// masking functions merge them.
func Findings(s string) []Finding {
	var findings []Finding

	for _, loc := range candidatePattern.FindAllStringIndex(s, -1) {
		candidate := s[loc[0]:loc[1]]
		if shannonEntropy(candidate) > entropyThreshold {
			findings = append(findings, Finding{
				RuleID:      entropyRuleID,
				Description: "High-entropy token",
				Preview:     mask(candidate),
				start:       loc[0],
				end:         loc[1],
			})
		}
	}

	if d := getDetector(); d != nil {
		for _, f := range d.DetectString(s) {
			if f.Secret == "" {
				continue
			}
			from := 0
			for {
				idx := strings.Index(s[from:], f.Secret)
				if idx < 0 {
					break
				}
				start := from + idx
				findings = append(findings, Finding{
					RuleID:      f.RuleID,
					Description: f.Description,
					Preview:     mask(f.Secret),
					start:       start,
					end:         start + len(f.Secret),
				})
				from = start + len(f.Secret)
			}
		}
	}

	sort.Slice(findings, func(i, j int) bool {
		if findings[i].start != findings[j].start {
			return findings[i].start < findings[j].start
		}
		return findings[i].end < findings[j].end
	})
	return findings
}

// String replaces every detected secret in s with "REDACTED".
func String(s string) string {
	findings := Findings(s)
	if len(findings) == 0 {
		return s
	}

	// Merge overlapping ranges so nested detections redact once.
	type span struct{ start, end int }
	merged := []span{{findings[0].start, findings[0].end}}
	for _, f := range findings[1:] {
		last := &merged[len(merged)-1]
		if f.start <= last.end {
			if f.end > last.end {
				last.end = f.end
			}
			continue
		}
		merged = append(merged, span{f.start, f.end})
	}

	var b strings.Builder
	prev := 0
	for _, r := range merged {
		b.WriteString(s[prev:r.start])
		b.WriteString("REDACTED")
		prev = r.end
	}
	b.WriteString(s[prev:])
	return b.String()
}

// Bytes is a convenience wrapper around String for []byte content.
func Bytes(b []byte) []byte {
	s := string(b)
	redacted := String(s)
	if redacted == s {
		return b
	}
	return []byte(redacted)
}

func shannonEntropy(s string) float64 {
	if len(s) == 0 {
		return 0
	}
	freq := make(map[byte]int)
	for i := range len(s) {
		freq[s[i]]++
	}
	length := float64(len(s))
	var entropy float64
	for _, count := range freq {
		p := float64(count) / length
		entropy -= p * math.Log2(p)
	}
	return entropy
}
