// Copyright 2025 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logics

import (
	"context"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gorse-io/movierec/base/log"
	"github.com/gorse-io/movierec/common/heap"
	"github.com/gorse-io/movierec/config"
	"github.com/gorse-io/movierec/dataset"
	"github.com/juju/errors"
	"github.com/samber/lo"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// Engine serves recommendations from the current snapshot. Recommendations
// never take locks: each call loads the snapshot once and only reads it.
// Reload publishes a new snapshot after it is completely built.
//
// Every recommender returns an empty slice if k <= 0.
type Engine struct {
	config   *config.Config
	filter   *ItemFilter
	snapshot *atomic.Pointer[Snapshot]
}

// NewEngine prepares the first snapshot. It fails with ErrEmptyCatalog if the
// catalog is empty.
func NewEngine(ctx context.Context, cfg *config.Config, catalog *dataset.Catalog, interactions *dataset.Interactions) (*Engine, error) {
	if cfg == nil {
		cfg = config.GetDefaultConfig()
	}
	filter, err := NewItemFilter(cfg.Recommend.ItemFilter)
	if err != nil {
		return nil, errors.Trace(err)
	}
	s, err := Prepare(ctx, cfg, catalog, interactions)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return &Engine{
		config:   cfg,
		filter:   filter,
		snapshot: atomic.NewPointer(s),
	}, nil
}

// Reload replaces the snapshot. The previous snapshot stays in place if
// preparation fails.
func (e *Engine) Reload(ctx context.Context, catalog *dataset.Catalog, interactions *dataset.Interactions) error {
	s, err := Prepare(ctx, e.config, catalog, interactions)
	if err != nil {
		log.Logger().Error("failed to reload snapshot", zap.Error(err))
		return errors.Trace(err)
	}
	e.snapshot.Store(s)
	return nil
}

// Snapshot returns the current snapshot.
func (e *Engine) Snapshot() *Snapshot {
	return e.snapshot.Load()
}

// Item returns an item of the current catalog.
func (e *Engine) Item(itemId int) (dataset.Item, error) {
	return e.snapshot.Load().catalog.Get(itemId)
}

// RecommendByUser recommends items rated by the most similar users. Users
// without ratings get RecommendPopular(k). Items are ranked by score
// descending, then item id ascending. Items no neighbor has rated are never
// returned, so the result may be shorter than k.
func (e *Engine) RecommendByUser(userId, k int) []Recommendation {
	RecommendTotalVec.WithLabelValues(StrategyUser).Inc()
	if k <= 0 {
		return []Recommendation{}
	}
	s := e.snapshot.Load()
	row, ok := s.matrix.RowOf(userId)
	if !ok {
		RecommendFallbackTotal.Inc()
		log.Logger().Debug("fallback to popular items for unknown user", zap.Int("user_id", userId))
		return e.recommendPopular(s, k)
	}

	// find nearest neighbors
	similarities := s.userSimilarity[row]
	neighbors := heap.NewTopKFilter[int, float64](e.config.Recommend.NumNeighbors)
	for other := 0; other < s.matrix.NumUsers(); other++ {
		if other != row {
			neighbors.Push(other, similarities[other])
		}
	}

	// accumulate weighted ratings of unrated items
	rated := s.matrix.Rated(row)
	scores := make(map[int]float64)
	for _, neighbor := range neighbors.PopAll() {
		ratings := s.matrix.Row(neighbor.Value)
		unrated := s.matrix.Rated(neighbor.Value).Difference(rated)
		for col, ok := unrated.NextSet(0); ok; col, ok = unrated.NextSet(col + 1) {
			scores[int(col)] += ratings[col] * neighbor.Weight
		}
	}
	candidates := heap.NewTopKFilter[int, float64](k)
	for col, score := range scores {
		if score == 0 {
			continue
		}
		if item := s.catalog.At(col); e.filter.Accept(item) {
			candidates.Push(item.ItemId, score)
		}
	}
	return e.toRecommendations(s, candidates.PopAll())
}

// RecommendByItems recommends items similar to seed items. Each seed
// contributes its k+ContentExtra most similar items and scores are summed
// across seeds. Unknown seeds are skipped; if no seed is known the result is
// empty. Repeated seeds count once.
func (e *Engine) RecommendByItems(seedIds []int, k int) []Recommendation {
	RecommendTotalVec.WithLabelValues(StrategyItems).Inc()
	return e.recommendByItems(e.snapshot.Load(), seedIds, k)
}

func (e *Engine) recommendByItems(s *Snapshot, seedIds []int, k int) []Recommendation {
	if k <= 0 {
		return []Recommendation{}
	}
	scores := make(map[int]float64)
	for _, seedId := range lo.Uniq(seedIds) {
		pos, ok := s.catalog.IndexOf(seedId)
		if !ok {
			log.Logger().Debug("skip unknown seed item", zap.Int("item_id", seedId))
			continue
		}
		similar := heap.NewTopKFilter[int, float64](k + e.config.Recommend.ContentExtra)
		for other, similarity := range s.itemSimilarity[pos] {
			if other != pos {
				similar.Push(s.catalog.At(other).ItemId, similarity)
			}
		}
		for _, elem := range similar.PopAll() {
			scores[elem.Value] += elem.Weight
		}
	}
	candidates := heap.NewTopKFilter[int, float64](k)
	for itemId, score := range scores {
		pos, _ := s.catalog.IndexOf(itemId)
		if e.filter.Accept(s.catalog.At(pos)) {
			candidates.Push(itemId, score)
		}
	}
	return e.toRecommendations(s, candidates.PopAll())
}

// RecommendByTitles recommends items similar to items with the given titles.
// Unknown titles are skipped.
func (e *Engine) RecommendByTitles(titles []string, k int) []Recommendation {
	RecommendTotalVec.WithLabelValues(StrategyItems).Inc()
	s := e.snapshot.Load()
	seedIds := make([]int, 0, len(titles))
	for _, title := range titles {
		if item, err := s.catalog.FindByTitle(title); err == nil {
			seedIds = append(seedIds, item.ItemId)
		}
	}
	return e.recommendByItems(s, seedIds, k)
}

// RecommendByGenres recommends the highest rated items tagged with any of
// genres. Genre names are matched ignoring case. Items are ranked by rating
// descending, then title ascending.
func (e *Engine) RecommendByGenres(genres []string, k int) []Recommendation {
	RecommendTotalVec.WithLabelValues(StrategyGenres).Inc()
	if k <= 0 {
		return []Recommendation{}
	}
	s := e.snapshot.Load()
	wanted := mapset.NewThreadUnsafeSet[string]()
	for _, genre := range genres {
		wanted.Add(strings.ToLower(strings.TrimSpace(genre)))
	}
	return e.rankByRating(s, k, func(item dataset.Item) bool {
		return lo.ContainsBy(item.Genres, func(genre string) bool {
			return wanted.Contains(strings.ToLower(genre))
		})
	})
}

// RecommendPopular recommends the highest rated items. Items are ranked by
// rating descending, then title ascending.
func (e *Engine) RecommendPopular(k int) []Recommendation {
	RecommendTotalVec.WithLabelValues(StrategyPopular).Inc()
	if k <= 0 {
		return []Recommendation{}
	}
	return e.recommendPopular(e.snapshot.Load(), k)
}

func (e *Engine) recommendPopular(s *Snapshot, k int) []Recommendation {
	return e.rankByRating(s, k, func(dataset.Item) bool { return true })
}

func (e *Engine) rankByRating(s *Snapshot, k int, accept func(dataset.Item) bool) []Recommendation {
	result := make([]Recommendation, 0, min(k, len(s.popular)))
	for _, pos := range s.popular {
		if len(result) >= k {
			break
		}
		item := s.catalog.At(pos)
		if accept(item) && e.filter.Accept(item) {
			result = append(result, newRecommendation(item, item.Rating))
		}
	}
	return result
}

func (e *Engine) toRecommendations(s *Snapshot, elems []heap.Elem[int, float64]) []Recommendation {
	result := make([]Recommendation, 0, len(elems))
	for _, elem := range elems {
		item, err := s.catalog.Get(elem.Value)
		if err != nil {
			log.Logger().Error("recommended item missing from catalog", zap.Int("item_id", elem.Value))
			continue
		}
		result = append(result, newRecommendation(item, elem.Weight))
	}
	return result
}
