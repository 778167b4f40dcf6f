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

package tfidf

import (
	"math"
	"testing"

	"github.com/gorse-io/movierec/dataset"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"sci", "fi", "thriller", "thief", "steals", "dreams"},
		Tokenize("Sci-Fi|Thriller A thief who steals from the dreams"))
	assert.Empty(t, Tokenize("a I of the"))
}

func TestBuild(t *testing.T) {
	items := []dataset.Item{
		{ItemId: 10, Genres: []string{"Drama"}, Description: "prison hope"},
		{ItemId: 20, Genres: []string{"Drama"}, Description: "prison prison"},
		{ItemId: 30, Genres: []string{"Comedy"}, Description: ""},
	}
	index, err := Build(items, nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"comedy", "drama", "hope", "prison"}, index.Vocabulary())
	assert.Equal(t, 4, index.Dim())
	assert.Equal(t, 3, index.Len())

	// idf = ln((1+n)/(1+df)) + 1
	idf := index.IDF()
	assert.InDelta(t, math.Log(4.0/2.0)+1, idf[0], 1e-12)
	assert.InDelta(t, math.Log(4.0/3.0)+1, idf[1], 1e-12)
	assert.InDelta(t, math.Log(4.0/2.0)+1, idf[2], 1e-12)
	assert.InDelta(t, math.Log(4.0/3.0)+1, idf[3], 1e-12)

	vec, err := index.Vector(20)
	assert.NoError(t, err)
	assert.Equal(t, []int32{1, 3}, vec.Indices)
	assert.InDelta(t, 1.0, vec.Norm(), 1e-12)
	assert.InDelta(t, 2*vec.Values[0], vec.Values[1], 1e-12)

	vec, err = index.Vector(30)
	assert.NoError(t, err)
	assert.Equal(t, []int32{0}, vec.Indices)
	assert.InDelta(t, 1.0, vec.Values[0], 1e-12)

	_, err = index.Vector(40)
	assert.True(t, errors.Is(err, errors.NotFound))
}

func TestBuildMaxFeatures(t *testing.T) {
	items := []dataset.Item{
		{ItemId: 1, Genres: []string{"Drama"}, Description: "zebra apple"},
		{ItemId: 2, Genres: []string{"Drama"}, Description: "mango"},
	}
	index, err := Build(items, &Options{MaxFeatures: 2})
	assert.NoError(t, err)
	// drama is the most frequent, apple wins the tie
	assert.Equal(t, []string{"apple", "drama"}, index.Vocabulary())
	vec, err := index.Vector(2)
	assert.NoError(t, err)
	assert.Equal(t, []int32{1}, vec.Indices)
}

func TestBuildEmpty(t *testing.T) {
	_, err := Build(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
	_, err = Build([]dataset.Item{{ItemId: 1}, {ItemId: 1}}, nil)
	assert.True(t, errors.Is(err, errors.NotValid))
}

func TestBuildDeterministic(t *testing.T) {
	items, err := dataset.LoadSampleCatalog()
	assert.NoError(t, err)
	a, err := Build(items, nil)
	assert.NoError(t, err)
	b, err := Build(items, nil)
	assert.NoError(t, err)
	assert.Equal(t, a.Vocabulary(), b.Vocabulary())
	assert.Equal(t, a.Vectors(), b.Vectors())
}
