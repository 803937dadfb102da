package router

import (
	"fmt"
	"sort"
	"strings"
)

// FormatTable renders the route definitions as an aligned, human-readable
// table in the order given. Intended for CLI output and boot logs.
func FormatTable(routes []*RouteDefinition) string {
	if len(routes) == 0 {
		return "no routes\n"
	}

	rows := make([][4]string, 0, len(routes))
	widths := [4]int{len("METHODS"), len("PATTERN"), len("TIER"), len("FILE")}
	for _, def := range routes {
		row := [4]string{methodList(def.Handlers), def.URLPath, PriorityName(def.Priority), def.FilePath}
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
		rows = append(rows, row)
	}

	var b strings.Builder
	writeRow := func(row [4]string) {
		for i, cell := range row {
			b.WriteString(cell)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-len(cell)+2))
			}
		}
		b.WriteString("\n")
	}

	writeRow([4]string{"METHODS", "PATTERN", "TIER", "FILE"})
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}

// methodList summarizes the methods a handler set serves.
func methodList(hs *HandlerSet) string {
	if hs == nil {
		return "-"
	}
	if hs.Dispatcher != nil {
		return "ALL"
	}
	methods := make([]string, 0, len(hs.Methods))
	for method := range hs.Methods {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return strings.Join(methods, ",")
}

// Summary returns a one-line count by tier, e.g. "7 routes (4 static, 2
// dynamic, 1 catch-all)".
func Summary(routes []*RouteDefinition) string {
	counts := map[int]int{}
	for _, def := range routes {
		counts[def.Priority]++
	}
	return fmt.Sprintf("%d routes (%d static, %d dynamic, %d catch-all)",
		len(routes), counts[PriorityStatic], counts[PriorityDynamic], counts[PriorityCatchAll])
}
