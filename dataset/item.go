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
	"math"
	"strings"

	"github.com/gorse-io/movierec/base"
	"github.com/juju/errors"
	"github.com/samber/lo"
)

const (
	MinItemRating = 0
	MaxItemRating = 10
	MinRating     = 1
	MaxRating     = 5
)

// GenreSeparator separates genres in the source form of an item.
const GenreSeparator = "|"

// Item is a movie in the catalog.
type Item struct {
	ItemId      int
	Title       string
	Genres      []string
	Year        int
	Rating      float64
	Description string
}

// GenreString returns genres in the pipe-delimited source form.
func (item Item) GenreString() string {
	return strings.Join(item.Genres, GenreSeparator)
}

// HasGenre reports whether the item is tagged with genre, ignoring case.
func (item Item) HasGenre(genre string) bool {
	return lo.ContainsBy(item.Genres, func(g string) bool {
		return strings.EqualFold(g, genre)
	})
}

func (item Item) validate() error {
	if math.IsNaN(item.Rating) || item.Rating < MinItemRating || item.Rating > MaxItemRating {
		return errors.NotValidf("rating %v of item %d", item.Rating, item.ItemId)
	}
	for _, genre := range item.Genres {
		if err := base.ValidateGenre(genre); err != nil {
			return errors.Annotatef(err, "item %d", item.ItemId)
		}
	}
	return nil
}

// ParseGenres splits pipe-delimited genres. Blank genres are dropped.
func ParseGenres(s string) []string {
	genres := make([]string, 0)
	for _, genre := range strings.Split(s, GenreSeparator) {
		if genre = strings.TrimSpace(genre); genre != "" {
			genres = append(genres, genre)
		}
	}
	return genres
}

// Rating is an observation of a user rating an item.
type Rating struct {
	UserId int
	ItemId int
	Value  int
}

func (r Rating) validate() error {
	if r.Value < MinRating || r.Value > MaxRating {
		return errors.NotValidf("rating %d by user %d on item %d", r.Value, r.UserId, r.ItemId)
	}
	return nil
}
