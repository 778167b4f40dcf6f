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
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewInteractions(t *testing.T) {
	interactions, err := NewInteractions([]Rating{
		{UserId: 2, ItemId: 1, Value: 3},
		{UserId: 1, ItemId: 1, Value: 4},
		{UserId: 2, ItemId: 1, Value: 5},
		{UserId: 1, ItemId: 2, Value: 1},
	})
	assert.NoError(t, err)
	// the last observation of a pair wins
	assert.Equal(t, 3, interactions.Len())
	assert.Equal(t, []Rating{
		{UserId: 2, ItemId: 1, Value: 5},
		{UserId: 1, ItemId: 1, Value: 4},
		{UserId: 1, ItemId: 2, Value: 1},
	}, interactions.Ratings())
	assert.Equal(t, []int{1, 2}, interactions.Users())
}

func TestNewInteractionsInvalid(t *testing.T) {
	_, err := NewInteractions([]Rating{{UserId: 1, ItemId: 1, Value: 0}})
	assert.True(t, errors.Is(err, errors.NotValid))
	_, err = NewInteractions([]Rating{{UserId: 1, ItemId: 1, Value: 6}})
	assert.True(t, errors.Is(err, errors.NotValid))
}

func TestUserItemMatrix(t *testing.T) {
	catalog, err := NewCatalog([]Item{{ItemId: 10}, {ItemId: 20}, {ItemId: 30}})
	assert.NoError(t, err)
	interactions, err := NewInteractions([]Rating{
		{UserId: 7, ItemId: 30, Value: 2},
		{UserId: 3, ItemId: 10, Value: 5},
		{UserId: 3, ItemId: 20, Value: 4},
		{UserId: 5, ItemId: 99, Value: 1},
	})
	assert.NoError(t, err)
	m := NewUserItemMatrix(catalog, interactions)
	// user 5 only rated an unknown item
	assert.Equal(t, 2, m.NumUsers())
	assert.Equal(t, 1, m.NumDropped())
	assert.Equal(t, 3, m.UserAt(0))
	assert.Equal(t, 7, m.UserAt(1))
	i, ok := m.RowOf(3)
	assert.True(t, ok)
	assert.Equal(t, []float64{5, 4, 0}, m.Row(i))
	assert.Equal(t, uint(2), m.Rated(i).Count())
	assert.True(t, m.Rated(i).Test(0))
	assert.True(t, m.Rated(i).Test(1))
	assert.False(t, m.Rated(i).Test(2))
	i, ok = m.RowOf(7)
	assert.True(t, ok)
	assert.Equal(t, []float64{0, 0, 2}, m.Row(i))
	next, ok := m.Rated(i).NextSet(0)
	assert.True(t, ok)
	assert.Equal(t, uint(2), next)
	_, ok = m.RowOf(5)
	assert.False(t, ok)
	assert.Len(t, m.Rows(), 2)
}
