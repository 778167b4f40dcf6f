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
	"slices"

	"github.com/gorse-io/movierec/base/log"
	"github.com/juju/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type userItem struct {
	userId int
	itemId int
}

// Interactions holds ratings. A (user, item) pair appears at most once: the
// last observation of a pair wins.
type Interactions struct {
	ratings []Rating
}

// NewInteractions validates and deduplicates ratings.
func NewInteractions(ratings []Rating) (*Interactions, error) {
	positions := make(map[userItem]int, len(ratings))
	deduplicated := make([]Rating, 0, len(ratings))
	for _, r := range ratings {
		if err := r.validate(); err != nil {
			return nil, errors.Trace(err)
		}
		key := userItem{userId: r.UserId, itemId: r.ItemId}
		if pos, exist := positions[key]; exist {
			log.Logger().Warn("overwrite duplicated rating",
				zap.Int("user_id", r.UserId),
				zap.Int("item_id", r.ItemId),
				zap.Int("old", deduplicated[pos].Value),
				zap.Int("new", r.Value))
			deduplicated[pos] = r
			continue
		}
		positions[key] = len(deduplicated)
		deduplicated = append(deduplicated, r)
	}
	return &Interactions{ratings: deduplicated}, nil
}

// Len returns the number of distinct (user, item) pairs.
func (s *Interactions) Len() int {
	return len(s.ratings)
}

// Ratings returns a copy of all ratings.
func (s *Interactions) Ratings() []Rating {
	return slices.Clone(s.ratings)
}

// Users returns distinct user ids in ascending order.
func (s *Interactions) Users() []int {
	users := lo.Uniq(lo.Map(s.ratings, func(r Rating, _ int) int {
		return r.UserId
	}))
	slices.Sort(users)
	return users
}
