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

	"github.com/bits-and-blooms/bitset"
	"github.com/gorse-io/movierec/base/log"
	"go.uber.org/zap"
)

// UserItemMatrix is a dense view of ratings. Rows are users in ascending id
// order and columns are catalog positions. Zero means not rated.
type UserItemMatrix struct {
	users     []int
	userIndex map[int]int
	rows      [][]float64
	rated     []*bitset.BitSet
	dropped   int
}

// NewUserItemMatrix pivots interactions against the catalog. Ratings on items
// missing from the catalog are dropped.
func NewUserItemMatrix(catalog *Catalog, interactions *Interactions) *UserItemMatrix {
	m := &UserItemMatrix{userIndex: make(map[int]int)}
	valid := make([]Rating, 0, interactions.Len())
	for _, r := range interactions.ratings {
		if _, ok := catalog.IndexOf(r.ItemId); !ok {
			m.dropped++
			continue
		}
		valid = append(valid, r)
		if _, exist := m.userIndex[r.UserId]; !exist {
			m.userIndex[r.UserId] = 0
			m.users = append(m.users, r.UserId)
		}
	}
	if m.dropped > 0 {
		log.Logger().Warn("drop ratings on unknown items", zap.Int("n_dropped", m.dropped))
	}
	sort.Ints(m.users)
	m.rows = make([][]float64, len(m.users))
	m.rated = make([]*bitset.BitSet, len(m.users))
	for i, userId := range m.users {
		m.userIndex[userId] = i
		m.rows[i] = make([]float64, catalog.Len())
		m.rated[i] = bitset.New(uint(catalog.Len()))
	}
	for _, r := range valid {
		col, _ := catalog.IndexOf(r.ItemId)
		row := m.userIndex[r.UserId]
		m.rows[row][col] = float64(r.Value)
		m.rated[row].Set(uint(col))
	}
	return m
}

// NumUsers returns the number of rows.
func (m *UserItemMatrix) NumUsers() int {
	return len(m.users)
}

// NumDropped returns the number of ratings on unknown items.
func (m *UserItemMatrix) NumDropped() int {
	return m.dropped
}

// UserAt returns the user id of row i.
func (m *UserItemMatrix) UserAt(i int) int {
	return m.users[i]
}

// RowOf returns the row index of a user.
func (m *UserItemMatrix) RowOf(userId int) (int, bool) {
	i, ok := m.userIndex[userId]
	return i, ok
}

// Row returns the ratings of row i. Callers must not modify it.
func (m *UserItemMatrix) Row(i int) []float64 {
	return m.rows[i]
}

// Rated returns the columns rated in row i. Callers must not modify it.
func (m *UserItemMatrix) Rated(i int) *bitset.BitSet {
	return m.rated[i]
}

// Rows returns all rows. Callers must not modify them.
func (m *UserItemMatrix) Rows() [][]float64 {
	return m.rows
}
