package router

import "strings"

// DefaultIndexMarker is the filename that collapses to its parent path.
const DefaultIndexMarker = "index"

// ClassifySegment classifies one extension-stripped path component.
// indexMarker is compared only when non-empty; directory components are
// classified with an empty marker since only a filename can be an index.
//
// Classification is exhaustive: every component is exactly one of
// static, dynamic, catch-all, or index.
func ClassifySegment(raw, indexMarker string) Segment {
	if indexMarker != "" && raw == indexMarker {
		return Segment{Raw: raw, Kind: SegmentIndex}
	}
	if name, ok := catchAllName(raw); ok {
		return Segment{Raw: raw, Name: name, Kind: SegmentCatchAll}
	}
	if name, ok := paramName(raw); ok {
		return Segment{Raw: raw, Name: name, Kind: SegmentDynamic}
	}
	return Segment{Raw: raw, Kind: SegmentStatic}
}

// catchAllName extracts the parameter name from a "[...name]" component.
func catchAllName(raw string) (string, bool) {
	if !strings.HasPrefix(raw, "[...") || !strings.HasSuffix(raw, "]") {
		return "", false
	}
	return raw[len("[...") : len(raw)-1], true
}

// paramName extracts the parameter name from a "[name]" component.
// "[...name]" must be checked first: it also starts with "[".
func paramName(raw string) (string, bool) {
	if !strings.HasPrefix(raw, "[") || !strings.HasSuffix(raw, "]") || len(raw) < 2 {
		return "", false
	}
	return raw[1 : len(raw)-1], true
}
