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

package floats

import (
	"math"
	"slices"
)

// SparseVector stores non-zero values of a vector. Indices are strictly increasing.
type SparseVector struct {
	Indices []int32
	Values  []float64
}

func (vec SparseVector) Len() int {
	return len(vec.Indices)
}

// ForIntersection calls f for every index present in both vectors.
func (vec SparseVector) ForIntersection(other SparseVector, f func(index int32, a, b float64)) {
	i, j := 0, 0
	for i < vec.Len() && j < other.Len() {
		if vec.Indices[i] == other.Indices[j] {
			f(vec.Indices[i], vec.Values[i], other.Values[j])
			i++
			j++
		} else if vec.Indices[i] < other.Indices[j] {
			i++
		} else {
			j++
		}
	}
}

func (vec SparseVector) Dot(other SparseVector) float64 {
	var sum float64
	vec.ForIntersection(other, func(_ int32, a, b float64) {
		sum += a * b
	})
	return sum
}

func (vec SparseVector) Norm() float64 {
	var sum float64
	for _, v := range vec.Values {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Cosine returns the cosine similarity of two sparse vectors. The similarity
// is zero if either vector has zero magnitude and exactly one if both vectors
// are the same nonzero vector.
func (vec SparseVector) Cosine(other SparseVector) float64 {
	return cosine(vec.Dot(other), vec.Norm(), other.Norm(), vec.Equal(other))
}

// Equal reports whether both vectors store the same indices and values.
func (vec SparseVector) Equal(other SparseVector) bool {
	return slices.Equal(vec.Indices, other.Indices) && slices.Equal(vec.Values, other.Values)
}

// Dense expands the vector to n dimensions.
func (vec SparseVector) Dense(n int) []float64 {
	dense := make([]float64, n)
	for i, index := range vec.Indices {
		dense[index] = vec.Values[i]
	}
	return dense
}
