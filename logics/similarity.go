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

package logics

import (
	"context"

	"github.com/gorse-io/movierec/common/floats"
	"github.com/gorse-io/movierec/common/parallel"
	"github.com/juju/errors"
)

// SimilarityMatrix is a square, symmetric matrix of cosine similarities.
type SimilarityMatrix [][]float64

// Len returns the number of rows.
func (m SimilarityMatrix) Len() int {
	return len(m)
}

// Pairwise computes cosine similarities between all pairs of dense rows. The
// cost is O(n²·d), which is fine for thousands of rows but not beyond. Row i
// is computed by one of jobs workers and mirrored into column i.
func Pairwise(ctx context.Context, rows [][]float64, jobs int) (SimilarityMatrix, error) {
	norms := make([]float64, len(rows))
	for i, row := range rows {
		norms[i] = floats.Norm(row)
	}
	return pairwise(ctx, len(rows), jobs, func(i, j int) float64 {
		if norms[i] == 0 || norms[j] == 0 {
			return 0
		}
		return floats.Cosine(rows[i], rows[j])
	})
}

// PairwiseSparse computes cosine similarities between all pairs of sparse vectors.
func PairwiseSparse(ctx context.Context, vectors []floats.SparseVector, jobs int) (SimilarityMatrix, error) {
	return pairwise(ctx, len(vectors), jobs, func(i, j int) float64 {
		return vectors[i].Cosine(vectors[j])
	})
}

func pairwise(ctx context.Context, n, jobs int, similarity func(i, j int) float64) (SimilarityMatrix, error) {
	matrix := make(SimilarityMatrix, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}
	// upper triangle only, each cell written once
	err := parallel.Parallel(ctx, n, jobs, func(_, i int) error {
		for j := i; j < n; j++ {
			matrix[i][j] = similarity(i, j)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			matrix[i][j] = matrix[j][i]
		}
	}
	return matrix, nil
}
