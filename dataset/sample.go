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
	_ "embed"
	"strings"

	"github.com/gorse-io/movierec/base"
	"github.com/juju/errors"
)

//go:embed movies.csv
var sampleCatalog string

const (
	SampleUsers     = 100
	minSampleRating = 5
	maxSampleRating = 25
)

// sampleRatingWeights are the probabilities of rating values 1 to 5.
var sampleRatingWeights = []float64{0.1, 0.1, 0.2, 0.3, 0.3}

// LoadSampleCatalog returns the built-in catalog of 50 movies.
func LoadSampleCatalog() ([]Item, error) {
	items, err := LoadCatalogCSV(strings.NewReader(sampleCatalog))
	if err != nil {
		return nil, errors.Trace(err)
	}
	return items, nil
}

// GenerateRatings generates synthetic ratings for users 1..numUsers. Each user
// rates between 5 and 24 distinct items. The result only depends on seed.
func GenerateRatings(seed int64, numUsers int, itemIds []int) []Rating {
	rng := base.NewRandomGenerator(seed)
	ratings := make([]Rating, 0)
	for userId := 1; userId <= numUsers; userId++ {
		n := minSampleRating + rng.Intn(maxSampleRating-minSampleRating)
		for _, i := range rng.Sample(0, len(itemIds), n) {
			ratings = append(ratings, Rating{
				UserId: userId,
				ItemId: itemIds[i],
				Value:  MinRating + rng.WeightedChoice(sampleRatingWeights),
			})
		}
	}
	return ratings
}
