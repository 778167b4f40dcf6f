// Copyright 2020 gorse Project Authors
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

package floats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDot(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{5, 6, 7, 8}
	assert.Equal(t, 70.0, Dot(a, b))
	assert.Panics(t, func() { Dot([]float64{1}, nil) })
}

func TestNorm(t *testing.T) {
	assert.Equal(t, 5.0, Norm([]float64{3, 4}))
	assert.Zero(t, Norm([]float64{0, 0}))
}

func TestCosine(t *testing.T) {
	v := []float64{1, 2, 3}
	assert.Equal(t, 1.0, Cosine(v, v))
	assert.InDelta(t, 1.0, Cosine(v, []float64{2, 4, 6}), 1e-12)
	assert.InDelta(t, -1.0, Cosine(v, []float64{-1, -2, -3}), 1e-12)
	assert.InDelta(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 1}), 1e-12)
	// zero vectors never divide by zero
	assert.Zero(t, Cosine(v, []float64{0, 0, 0}))
	assert.Zero(t, Cosine([]float64{0, 0, 0}, []float64{0, 0, 0}))
	// self-similarity is exact even if rounding falls below one
	w := []float64{0.1, 0.7, 0.3}
	assert.Equal(t, 1.0, Cosine(w, w))
	assert.Equal(t, 1.0, Cosine(w, []float64{0.1, 0.7, 0.3}))
	// results stay within [-1, 1]
	assert.LessOrEqual(t, Cosine(w, []float64{0.2, 1.4, 0.6}), 1.0)
	assert.False(t, math.IsNaN(Cosine(w, []float64{0.2, 1.4, 0.6})))
}

func TestSparseVector(t *testing.T) {
	a := SparseVector{Indices: []int32{0, 2, 5}, Values: []float64{1, 2, 3}}
	b := SparseVector{Indices: []int32{2, 3, 5}, Values: []float64{4, 5, 6}}
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 26.0, a.Dot(b))
	assert.InDelta(t, math.Sqrt(14), a.Norm(), 1e-12)
	assert.Equal(t, []float64{1, 0, 2, 0, 0, 3}, a.Dense(6))

	var indices []int32
	a.ForIntersection(b, func(index int32, _, _ float64) {
		indices = append(indices, index)
	})
	assert.Equal(t, []int32{2, 5}, indices)
}

func TestSparseCosine(t *testing.T) {
	a := SparseVector{Indices: []int32{0, 2, 5}, Values: []float64{1, 2, 3}}
	b := SparseVector{Indices: []int32{2, 3, 5}, Values: []float64{4, 5, 6}}
	assert.Equal(t, 1.0, a.Cosine(a))
	w := SparseVector{Indices: []int32{1, 4, 7}, Values: []float64{0.1, 0.7, 0.3}}
	assert.Equal(t, 1.0, w.Cosine(SparseVector{Indices: []int32{1, 4, 7}, Values: []float64{0.1, 0.7, 0.3}}))
	assert.True(t, w.Equal(w))
	assert.False(t, w.Equal(a))
	assert.InDelta(t, Cosine(a.Dense(6), b.Dense(6)), a.Cosine(b), 1e-12)
	assert.InDelta(t, a.Cosine(b), b.Cosine(a), 1e-12)
	assert.Zero(t, a.Cosine(SparseVector{}))
}
