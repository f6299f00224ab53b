// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parsers

import (
	"github.com/playbymail/oldworldimport/internal/model"
	"github.com/playbymail/oldworldimport/internal/xmldom"
)

// seriesPointsFromRoot turns parseTimeSeriesNode's output into tagged
// TimeSeriesPoint_t rows for one owner, under the given series name
// (spec §3 "Time-series": normalized to `(owner_id, snapshot_id, turn,
// value)` tuples; SPEC_FULL's single timeseries_points table carries
// the series name alongside so one table backs every sparse history).
func seriesPointsFromRoot(series string, owner model.SourceID, root *xmldom.Node) []*model.TimeSeriesPoint_t {
	tvs := parseTimeSeriesNode(root)
	if len(tvs) == 0 {
		return nil
	}
	out := make([]*model.TimeSeriesPoint_t, 0, len(tvs))
	for _, tv := range tvs {
		out = append(out, &model.TimeSeriesPoint_t{Series: series, OwnerID: owner, Turn: tv.Turn, Value: tv.Value})
	}
	return out
}

// ParsePlayerPointsHistory extracts each <Player>'s <Points> series
// (spec §8 scenario 5: "player 0's points history has <T2>0</T2><T5>3</T5>").
func ParsePlayerPointsHistory(doc *xmldom.Document) ([]*model.TimeSeriesPoint_t, error) {
	var out []*model.TimeSeriesPoint_t
	for _, n := range doc.Root.ChildrenByTag("Player") {
		playerID, err := requiredID(n, "ID")
		if err != nil {
			return nil, err
		}
		out = append(out, seriesPointsFromRoot("player_points", playerID, n.FirstChild("Points"))...)
	}
	return out, nil
}

// ParseCityYieldHistory extracts each <City>'s <YieldHistory> series,
// one sub-series per named good (spec §3 "City extended": yields
// carry a history counterpart to the current-turn snapshot in §4.4).
func ParseCityYieldHistory(doc *xmldom.Document) ([]*model.TimeSeriesPoint_t, error) {
	var out []*model.TimeSeriesPoint_t
	for _, n := range doc.Root.ChildrenByTag("City") {
		cityID, err := requiredID(n, "ID")
		if err != nil {
			return nil, err
		}
		histNode := n.FirstChild("YieldHistory")
		if histNode == nil {
			continue
		}
		for _, good := range histNode.Children {
			out = append(out, seriesPointsFromRoot("city_yield_history:"+good.Tag, cityID, good)...)
		}
	}
	return out, nil
}
