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
	"slices"

	"github.com/gorse-io/movierec/dataset"
)

// Recommendation is a recommended item.
//
// The meaning of Score depends on the recommender:
//   - RecommendByUser: sum of neighbor ratings weighted by user similarity.
//   - RecommendByItems: sum of item similarities over all seeds. Scores are not
//     normalized by the number of seeds, so more seeds give larger scores.
//   - RecommendByGenres, RecommendPopular: the rating of the item.
type Recommendation struct {
	ItemId int
	Title  string
	Genres []string
	Year   int
	Rating float64
	Score  float64
}

func newRecommendation(item dataset.Item, score float64) Recommendation {
	return Recommendation{
		ItemId: item.ItemId,
		Title:  item.Title,
		Genres: slices.Clone(item.Genres),
		Year:   item.Year,
		Rating: item.Rating,
		Score:  score,
	}
}
