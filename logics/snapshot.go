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
	"sort"
	"time"

	"github.com/gorse-io/movierec/base/log"
	"github.com/gorse-io/movierec/config"
	"github.com/gorse-io/movierec/dataset"
	"github.com/gorse-io/movierec/model/tfidf"
	"github.com/juju/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var ErrEmptyCatalog = tfidf.ErrEmptyCatalog

// Snapshot is one complete build of the derived data of a catalog and its
// ratings. It is never modified after Prepare returns.
type Snapshot struct {
	catalog        *dataset.Catalog
	interactions   *dataset.Interactions
	matrix         *dataset.UserItemMatrix
	index          *tfidf.Index
	userSimilarity SimilarityMatrix
	itemSimilarity SimilarityMatrix
	// popular lists catalog positions by rating descending, then title ascending.
	popular   []int
	timestamp time.Time
}

// Prepare builds the user-item matrix, the feature index and both similarity
// matrices.
func Prepare(ctx context.Context, cfg *config.Config, catalog *dataset.Catalog, interactions *dataset.Interactions) (*Snapshot, error) {
	if cfg == nil {
		cfg = config.GetDefaultConfig()
	}
	if catalog == nil || catalog.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	if interactions == nil {
		interactions = lo.Must(dataset.NewInteractions(nil))
	}
	startTime := time.Now()
	s := &Snapshot{
		catalog:      catalog,
		interactions: interactions,
		timestamp:    startTime,
	}

	// build user-item matrix
	start := time.Now()
	s.matrix = dataset.NewUserItemMatrix(catalog, interactions)
	PrepareStepSecondsVec.WithLabelValues("user_item_matrix").Set(time.Since(start).Seconds())

	// build feature index
	start = time.Now()
	var err error
	s.index, err = tfidf.Build(catalog.Items(), &tfidf.Options{MaxFeatures: cfg.Feature.MaxFeatures})
	if err != nil {
		return nil, errors.Trace(err)
	}
	PrepareStepSecondsVec.WithLabelValues("feature_index").Set(time.Since(start).Seconds())

	// compute user similarity
	start = time.Now()
	s.userSimilarity, err = Pairwise(ctx, s.matrix.Rows(), cfg.Prepare.NumJobs)
	if err != nil {
		return nil, errors.Trace(err)
	}
	PrepareStepSecondsVec.WithLabelValues("user_similarity").Set(time.Since(start).Seconds())

	// compute item similarity
	start = time.Now()
	s.itemSimilarity, err = PairwiseSparse(ctx, s.index.Vectors(), cfg.Prepare.NumJobs)
	if err != nil {
		return nil, errors.Trace(err)
	}
	PrepareStepSecondsVec.WithLabelValues("item_similarity").Set(time.Since(start).Seconds())

	// rank items by rating
	s.popular = lo.Range(catalog.Len())
	sort.SliceStable(s.popular, func(i, j int) bool {
		a, b := catalog.At(s.popular[i]), catalog.At(s.popular[j])
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		if a.Title != b.Title {
			return a.Title < b.Title
		}
		return a.ItemId < b.ItemId
	})

	PrepareTotalSeconds.Set(time.Since(startTime).Seconds())
	SnapshotSizeVec.WithLabelValues("items").Set(float64(catalog.Len()))
	SnapshotSizeVec.WithLabelValues("users").Set(float64(s.matrix.NumUsers()))
	SnapshotSizeVec.WithLabelValues("ratings").Set(float64(interactions.Len() - s.matrix.NumDropped()))
	SnapshotSizeVec.WithLabelValues("vocabulary").Set(float64(s.index.Dim()))
	log.Logger().Info("prepare snapshot",
		zap.Int("n_items", catalog.Len()),
		zap.Int("n_users", s.matrix.NumUsers()),
		zap.Int("n_ratings", interactions.Len()),
		zap.Int("n_terms", s.index.Dim()),
		zap.Duration("used_time", time.Since(startTime)))
	return s, nil
}

func (s *Snapshot) Catalog() *dataset.Catalog {
	return s.catalog
}

func (s *Snapshot) Interactions() *dataset.Interactions {
	return s.interactions
}

func (s *Snapshot) Matrix() *dataset.UserItemMatrix {
	return s.matrix
}

func (s *Snapshot) Index() *tfidf.Index {
	return s.index
}

// UserSimilarity is indexed by rows of the user-item matrix. Callers must not modify it.
func (s *Snapshot) UserSimilarity() SimilarityMatrix {
	return s.userSimilarity
}

// ItemSimilarity is indexed by catalog positions. Callers must not modify it.
func (s *Snapshot) ItemSimilarity() SimilarityMatrix {
	return s.itemSimilarity
}

func (s *Snapshot) Timestamp() time.Time {
	return s.timestamp
}

// Summary describes the dataset of the snapshot.
func (s *Snapshot) Summary() dataset.Summary {
	return dataset.Summarize(s.catalog, s.interactions)
}
