package chart

import "regexp"

// Markers embedded in enriched assistant text follow the grammar
// "[[CHART:" + identifier + "]]". Identifiers are restricted to word
// characters, so no escaping is needed. The pipeline and the display layer
// must agree on this shape byte for byte.
var markerRe = regexp.MustCompile(`\[\[CHART:(\w+)\]\]`)

// Marker builds the wire form of a chart marker for a series key.
func Marker(identifier string) string {
	return "[[CHART:" + identifier + "]]"
}

// Segment is one piece of a split message: either plain text or a chart
// reference.
type Segment struct {
	Text  string `json:"text,omitempty"`
	Chart Key    `json:"-"`
	// ChartID carries the raw identifier for serialization; empty for text
	// segments.
	ChartID string `json:"chart,omitempty"`
}

// Split cuts a message into text and chart segments, preserving every byte
// of non-marker text. Empty text segments produced immediately after a
// marker are dropped (they would render as empty paragraphs) unless they
// are the very first segment.
func Split(text string) []Segment {
	var segments []Segment
	last := 0
	for _, loc := range markerRe.FindAllStringSubmatchIndex(text, -1) {
		lead := text[last:loc[0]]
		if lead != "" || len(segments) == 0 {
			segments = append(segments, Segment{Text: lead})
		}
		id := text[loc[2]:loc[3]]
		segments = append(segments, Segment{Chart: ParseKey(id), ChartID: id})
		last = loc[1]
	}
	tail := text[last:]
	if tail != "" || len(segments) == 0 {
		segments = append(segments, Segment{Text: tail})
	}
	return segments
}

// Join reassembles segments into the original message text. Split followed
// by Join is lossless apart from the dropped empty-after-marker segments,
// which carry no bytes.
func Join(segments []Segment) string {
	out := ""
	for _, s := range segments {
		if s.ChartID != "" {
			out += Marker(s.ChartID)
			continue
		}
		out += s.Text
	}
	return out
}

// Strip removes every chart marker from a message, for copy-to-clipboard.
func Strip(text string) string {
	return markerRe.ReplaceAllString(text, "")
}
