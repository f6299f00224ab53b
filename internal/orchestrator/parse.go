// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package orchestrator

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/playbymail/oldworldimport/internal/config"
	"github.com/playbymail/oldworldimport/internal/model"
	"github.com/playbymail/oldworldimport/internal/parsers"
	"github.com/playbymail/oldworldimport/internal/xmldom"
)

func parseSnapshot(doc *xmldom.Document) (*model.Snapshot_t, error) {
	return parsers.ParseSnapshot(doc)
}

// parseBundle runs the entity-family parsers in bounded parallel waves
// (spec §4.4, §4.9, §5): foundation, then affiliations, then
// extended/nested data. Each wave must finish before the next starts,
// since later waves' parsers don't depend on earlier data but the
// store's multi-pass insert order does (spec §4.8) and keeping parse
// waves aligned with it keeps the whole pipeline easy to reason about.
func parseBundle(ctx context.Context, doc *xmldom.Document, cfg *config.Config) (*model.Bundle_t, error) {
	snap, err := parsers.ParseSnapshot(doc)
	if err != nil {
		return nil, err
	}
	b := &model.Bundle_t{Snapshot: snap}

	if err := runWave(ctx, cfg,
		func() (err error) { b.Players, err = parsers.ParsePlayers(doc, cfg.DynastyNormalization); return },
		func() (err error) { b.Characters, err = parsers.ParseCharacters(doc); return },
		func() (err error) { b.Tiles, err = parsers.ParseTiles(doc, snap.MapWidth); return },
		func() (err error) { b.Cities, err = parsers.ParseCities(doc); return },
	); err != nil {
		return nil, err
	}

	if err := runWave(ctx, cfg,
		func() (err error) { b.Families, err = parsers.ParseFamilies(doc); return },
		func() (err error) { b.Religions, err = parsers.ParseReligions(doc); return },
		func() (err error) { b.Tribes, err = parsers.ParseTribes(doc); return },
	); err != nil {
		return nil, err
	}

	var playerPoints, cityYieldHistory []*model.TimeSeriesPoint_t
	if err := runWave(ctx, cfg,
		func() (err error) {
			b.CharacterStats, b.CharacterTraits, b.CharacterRelationships, b.CharacterMarriages, err = parsers.ParseCharacterExtended(doc)
			return
		},
		func() (err error) {
			b.CityYields, b.CityCulture, b.CityReligions, b.CityProductionQueue, b.CityCompletedProjects, err = parsers.ParseCityExtended(doc)
			return
		},
		func() (err error) {
			b.TileOwnershipHistory, b.TileVisibility, err = parsers.ParseTileExtended(doc)
			return
		},
		func() (err error) {
			b.PlayerResources, b.PlayerTechnologyProgress, b.PlayerTechnologyCompleted, b.PlayerTechnologyStates,
				b.PlayerCouncilPositions, b.PlayerLaws, b.PlayerGoals, err = parsers.ParsePlayerExtended(doc)
			return
		},
		func() (err error) { playerPoints, err = parsers.ParsePlayerPointsHistory(doc); return },
		func() (err error) { cityYieldHistory, err = parsers.ParseCityYieldHistory(doc); return },
	); err != nil {
		return nil, err
	}
	// Merged after the wave, not inside it: two tasks writing the same
	// b.TimeSeries slice header concurrently would race (spec §4.4, §9).
	b.TimeSeries = append(b.TimeSeries, playerPoints...)
	b.TimeSeries = append(b.TimeSeries, cityYieldHistory...)

	return b, nil
}

// runWave runs every task concurrently, bounded by cfg.Worker.PoolSize
// (0 means GOMAXPROCS), and returns the first error encountered. All
// tasks in a wave write disjoint Bundle_t fields, so no further
// synchronization is needed between them (spec §4.4).
func runWave(ctx context.Context, cfg *config.Config, tasks ...func() error) error {
	poolSize := cfg.Worker.PoolSize
	if poolSize <= 0 {
		poolSize = runtime.GOMAXPROCS(0)
	}
	sem := semaphore.NewWeighted(int64(poolSize))
	g, gctx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		task := task
		if err := sem.Acquire(gctx, 1); err != nil {
			return err
		}
		g.Go(func() error {
			defer sem.Release(1)
			return task()
		})
	}
	return g.Wait()
}
