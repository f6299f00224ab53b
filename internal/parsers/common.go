// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parsers

import (
	"regexp"
	"strconv"

	"github.com/playbymail/oldworldimport/internal/model"
	"github.com/playbymail/oldworldimport/internal/xmldom"
)

// rxTurnSeriesTag matches the T{turn} element names used for sparse
// time-series (spec §3 "Time-series", §4.4 "Time-series parsing").
// T-* (a negative turn written as e.g. "T-1") never matches, so it
// naturally falls through to being ignored rather than parsed as a
// turn. If a negative turn reached the bundle another way, validation
// (spec §4.5) only warns about it and insertTimeSeries skips it.
var rxTurnSeriesTag = regexp.MustCompile(`^T(\d+)$`)

// sentinelRef reads an optional integer reference attribute and
// applies spec §3 invariant 3 / §4.4's sentinel rule: -1 becomes nil,
// never zero, never an allocated id. A present-but-unparseable value
// is still an error.
func sentinelRef(n *xmldom.Node, name string) (*model.SourceID, error) {
	v, err := n.OptionalIntAttr(name)
	if err != nil {
		return nil, err
	}
	if v == nil || *v == -1 {
		return nil, nil
	}
	id := model.SourceID(*v)
	return &id, nil
}

// requiredID reads a required integer id attribute (commonly "ID").
func requiredID(n *xmldom.Node, name string) (model.SourceID, error) {
	v, err := n.RequiredIntAttr(name)
	if err != nil {
		return 0, err
	}
	return model.SourceID(v), nil
}

// TurnValue is one sparse sample parsed from a T{n} child element.
type TurnValue struct {
	Turn  int
	Value int
}

// parseTimeSeriesNode iterates the element children of seriesRoot
// whose tag matches T{n} and emits (turn, value) pairs in document
// order (spec §4.4, §5: "inserted in source order"). A child whose
// text isn't a parseable integer is skipped rather than aborting the
// whole parse — time-series parsing is best-effort the way most of
// the extended/nested data is (spec §4.5 marks most families
// "advisory").
func parseTimeSeriesNode(seriesRoot *xmldom.Node) []TurnValue {
	if seriesRoot == nil {
		return nil
	}
	var out []TurnValue
	for _, child := range seriesRoot.Children {
		m := rxTurnSeriesTag.FindStringSubmatch(child.Tag)
		if m == nil {
			continue
		}
		turn, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		value, err := strconv.Atoi(child.TrimmedText())
		if err != nil {
			continue
		}
		out = append(out, TurnValue{Turn: turn, Value: value})
	}
	return out
}

// dedupLastWins collapses items sharing the same composite key,
// keeping the last occurrence but preserving first-seen ordering for
// the surviving entries (spec §4.4, §4.7: "last-wins deduplication").
func dedupLastWins[T any, K comparable](items []T, keyOf func(T) K) []T {
	if len(items) == 0 {
		return items
	}
	order := make([]K, 0, len(items))
	latest := make(map[K]T, len(items))
	for _, item := range items {
		k := keyOf(item)
		if _, seen := latest[k]; !seen {
			order = append(order, k)
		}
		latest[k] = item
	}
	out := make([]T, len(order))
	for i, k := range order {
		out[i] = latest[k]
	}
	return out
}
