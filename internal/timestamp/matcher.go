package timestamp

import (
	"regexp"
	"strings"

	"setlist/internal/normalize"
)

var (
	// anchorPattern captures the visible label of an anchor wrapper. The
	// label is normally a single clock string, but a known encoding artifact
	// splits an h:mm:ss label into "mm:ss" plus a trailing two-digit
	// fragment just before the wrapper closes.
	anchorPattern = regexp.MustCompile(`(?is)<a[^>]*>\s*(\d{1,2}:\d{2}(?::\d{2})?)(?:\s+(\d{2}))?\s*</a>`)

	clockOnly = regexp.MustCompile(`^\d{1,2}:\d{2}(?::\d{2})?$`)
	mmss      = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

	// plainLinePattern matches a line that starts with a clock string and an
	// optional separator before the song content.
	plainLinePattern = regexp.MustCompile(`^(\d{1,2}:\d{2}(?::\d{2})?)\s*[-:・)/]?\s*(.*)$`)
)

// Match extracts timestamp candidates from one text blob. The blob should
// already be width-folded via normalize.PrepareBlob; markup may be present.
// Anchor-tagged timestamps take priority; the plain-line strategy runs only
// when no anchor yields a candidate.
func Match(blob string) []Candidate {
	if strings.TrimSpace(blob) == "" {
		return nil
	}
	candidates := matchAnchors(blob)
	if len(candidates) == 0 {
		candidates = matchPlainLines(blob)
	}
	return dedupeCandidates(candidates)
}

func matchAnchors(blob string) []Candidate {
	matches := anchorPattern.FindAllStringSubmatchIndex(blob, -1)
	if len(matches) == 0 {
		return nil
	}

	candidates := make([]Candidate, 0, len(matches))
	for i, m := range matches {
		label := blob[m[2]:m[3]]
		fragment := ""
		if m[4] >= 0 {
			fragment = blob[m[4]:m[5]]
		}

		timecode, ok := assembleLabel(label, fragment)
		if !ok {
			continue
		}

		segmentEnd := len(blob)
		if i+1 < len(matches) {
			segmentEnd = matches[i+1][0]
		}
		raw := cutAtBreak(blob[m[1]:segmentEnd])
		content := normalize.CleanContent(raw)
		if content == "" {
			continue
		}
		candidates = append(candidates, Candidate{
			Timecode:   timecode,
			Content:    content,
			RawContent: strings.TrimSpace(raw),
		})
	}
	return candidates
}

// assembleLabel reconstructs the anchor label. A bare clock passes through;
// an "mm:ss" label followed by exactly one two-digit fragment is the split
// h:mm:ss artifact and is reassembled. Any other shape is not a timestamp.
func assembleLabel(label, fragment string) (string, bool) {
	label = strings.TrimSpace(label)
	if fragment == "" {
		if clockOnly.MatchString(label) {
			return label, true
		}
		return "", false
	}
	if mmss.MatchString(label) && len(fragment) == 2 {
		return label + ":" + fragment, true
	}
	return "", false
}

// cutAtBreak truncates trailing anchor content at the next line break or tag
// boundary so one anchor never swallows the following entry.
func cutAtBreak(segment string) string {
	end := len(segment)
	for _, stop := range []string{"\n", "<br", "<a "} {
		if idx := strings.Index(segment, stop); idx >= 0 && idx < end {
			end = idx
		}
	}
	return segment[:end]
}

func matchPlainLines(blob string) []Candidate {
	text := normalize.StripHTML(blob)
	lines := strings.Split(text, "\n")

	var candidates []Candidate
	pending := ""
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := plainLinePattern.FindStringSubmatch(line)
		if m == nil {
			// A bare content line directly after a bare clock line belongs
			// to that clock ("7:22\n八月の夜 / SILENT SIREN").
			if pending != "" {
				if content := normalize.CleanContent(line); content != "" {
					candidates = append(candidates, Candidate{
						Timecode:   pending,
						Content:    content,
						RawContent: line,
					})
				}
				pending = ""
			}
			continue
		}
		rest := strings.TrimSpace(m[2])
		if rest == "" {
			pending = m[1]
			continue
		}
		pending = ""
		content := normalize.CleanContent(rest)
		if content == "" {
			continue
		}
		candidates = append(candidates, Candidate{
			Timecode:   m[1],
			Content:    content,
			RawContent: rest,
		})
	}
	return candidates
}

// dedupeCandidates collapses pairs with identical timecode and
// case-insensitive content, keeping the first occurrence.
func dedupeCandidates(candidates []Candidate) []Candidate {
	if len(candidates) < 2 {
		return candidates
	}
	type key struct {
		timecode string
		content  string
	}
	seen := make(map[key]struct{}, len(candidates))
	out := candidates[:0]
	for _, c := range candidates {
		k := key{c.Timecode, strings.ToLower(c.Content)}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, c)
	}
	return out
}
