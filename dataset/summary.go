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

package dataset

import (
	"sort"

	"github.com/samber/lo"
)

const numTopGenres = 10

type GenreCount struct {
	Genre string
	Count int
}

// Summary is an overview of a dataset.
type Summary struct {
	NumItems   int
	NumUsers   int
	NumRatings int
	// TopGenres are the most frequent genres, by count descending then name ascending.
	TopGenres []GenreCount
	// RatingHistogram[v-1] is the number of ratings with value v.
	RatingHistogram [MaxRating]int
}

// Summarize counts items, users, ratings and genres.
func Summarize(catalog *Catalog, interactions *Interactions) Summary {
	summary := Summary{
		NumItems:   catalog.Len(),
		NumUsers:   len(interactions.Users()),
		NumRatings: interactions.Len(),
	}
	counts := make(map[string]int)
	for _, item := range catalog.items {
		for _, genre := range item.Genres {
			counts[genre]++
		}
	}
	genres := lo.MapToSlice(counts, func(genre string, count int) GenreCount {
		return GenreCount{Genre: genre, Count: count}
	})
	sort.Slice(genres, func(i, j int) bool {
		if genres[i].Count != genres[j].Count {
			return genres[i].Count > genres[j].Count
		}
		return genres[i].Genre < genres[j].Genre
	})
	if len(genres) > numTopGenres {
		genres = genres[:numTopGenres]
	}
	summary.TopGenres = genres
	for _, r := range interactions.ratings {
		summary.RatingHistogram[r.Value-MinRating]++
	}
	return summary
}
