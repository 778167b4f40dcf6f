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
	"slices"

	gonum "gonum.org/v1/gonum/floats"
)

// Dot returns the dot product of two dense vectors.
func Dot(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("floats: slice lengths do not match")
	}
	return gonum.Dot(a, b)
}

// Norm returns the Euclidean norm of a dense vector.
func Norm(a []float64) float64 {
	return gonum.Norm(a, 2)
}

// Cosine returns the cosine similarity of two dense vectors. The similarity
// is zero if either vector has zero magnitude and exactly one if both vectors
// are the same nonzero vector.
func Cosine(a, b []float64) float64 {
	return cosine(Dot(a, b), Norm(a), Norm(b), slices.Equal(a, b))
}

func cosine(dot, normA, normB float64, same bool) float64 {
	if normA == 0 || normB == 0 {
		return 0
	} else if same {
		return 1
	}
	return clamp(dot / (normA * normB))
}

// clamp removes rounding errors outside [-1, 1].
func clamp(x float64) float64 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}
	return x
}
