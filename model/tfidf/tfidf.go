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

// Package tfidf builds sparse TF-IDF feature vectors of catalog items from
// their genres and descriptions.
package tfidf

import (
	"math"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/gorse-io/movierec/common/floats"
	"github.com/gorse-io/movierec/dataset"
	"github.com/juju/errors"
	"github.com/samber/lo"
)

const DefaultMaxFeatures = 5000

var ErrEmptyCatalog = errors.New("empty catalog")

// tokenPattern matches runs of at least two word characters.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

type Options struct {
	// MaxFeatures caps the vocabulary to the most frequent terms in the corpus.
	MaxFeatures int
}

// Index holds one L2-normalized TF-IDF vector per item. Columns are terms of
// the vocabulary in lexicographic order.
type Index struct {
	vocabulary []string
	idf        []float64
	vectors    []floats.SparseVector
	positions  map[int]int
}

// Tokenize lower-cases text, splits it into terms and removes stop words.
func Tokenize(text string) []string {
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)
	return lo.Filter(tokens, func(token string, _ int) bool {
		return !englishStopWords.Contains(token)
	})
}

// Document returns the text indexed for an item.
func Document(item dataset.Item) string {
	return item.GenreString() + " " + item.Description
}

// Build indexes items. Vectors follow the order of items.
func Build(items []dataset.Item, opts *Options) (*Index, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}
	maxFeatures := DefaultMaxFeatures
	if opts != nil && opts.MaxFeatures > 0 {
		maxFeatures = opts.MaxFeatures
	}

	// count corpus frequencies
	dict := dataset.NewFreqDict()
	docs := make([][]int, len(items))
	positions := make(map[int]int, len(items))
	for i, item := range items {
		if _, exist := positions[item.ItemId]; exist {
			return nil, errors.NotValidf("duplicated item %d", item.ItemId)
		}
		positions[item.ItemId] = i
		for _, token := range Tokenize(Document(item)) {
			docs[i] = append(docs[i], dict.Id(token))
		}
	}

	// keep the most frequent terms, ties broken by term
	termIds := lo.Range(dict.Count())
	term := func(id int) string {
		s, _ := dict.String(id)
		return s
	}
	sort.Slice(termIds, func(i, j int) bool {
		fi, fj := dict.Freq(termIds[i]), dict.Freq(termIds[j])
		if fi != fj {
			return fi > fj
		}
		return term(termIds[i]) < term(termIds[j])
	})
	if len(termIds) > maxFeatures {
		termIds = termIds[:maxFeatures]
	}
	vocabulary := lo.Map(termIds, func(id int, _ int) string {
		return term(id)
	})
	sort.Strings(vocabulary)
	columns := make(map[int]int32, len(vocabulary))
	for column, s := range vocabulary {
		id, _ := dict.Lookup(s)
		columns[id] = int32(column)
	}

	// document frequencies
	df := make([]int, len(vocabulary))
	termCounts := make([]map[int32]int, len(items))
	for i, doc := range docs {
		termCounts[i] = make(map[int32]int)
		for _, id := range doc {
			if column, ok := columns[id]; ok {
				termCounts[i][column]++
			}
		}
		for column := range termCounts[i] {
			df[column]++
		}
	}
	idf := make([]float64, len(vocabulary))
	n := float64(len(items))
	for column := range idf {
		idf[column] = math.Log((1+n)/(1+float64(df[column]))) + 1
	}

	// weight and normalize
	vectors := make([]floats.SparseVector, len(items))
	for i, counts := range termCounts {
		indices := lo.Keys(counts)
		slices.Sort(indices)
		values := make([]float64, len(indices))
		for j, column := range indices {
			values[j] = float64(counts[column]) * idf[column]
		}
		vec := floats.SparseVector{Indices: indices, Values: values}
		if norm := vec.Norm(); norm > 0 {
			for j := range values {
				values[j] /= norm
			}
		}
		vectors[i] = vec
	}
	return &Index{
		vocabulary: vocabulary,
		idf:        idf,
		vectors:    vectors,
		positions:  positions,
	}, nil
}

// Dim returns the size of the vocabulary.
func (idx *Index) Dim() int {
	return len(idx.vocabulary)
}

// Vocabulary returns terms in column order.
func (idx *Index) Vocabulary() []string {
	return slices.Clone(idx.vocabulary)
}

// IDF returns the inverse document frequency of each column.
func (idx *Index) IDF() []float64 {
	return slices.Clone(idx.idf)
}

// Len returns the number of indexed items.
func (idx *Index) Len() int {
	return len(idx.vectors)
}

// Vector returns the feature vector of an item.
func (idx *Index) Vector(itemId int) (floats.SparseVector, error) {
	i, ok := idx.positions[itemId]
	if !ok {
		return floats.SparseVector{}, errors.NotFoundf("item %d", itemId)
	}
	return idx.vectors[i], nil
}

// Vectors returns feature vectors in build order. Callers must not modify them.
func (idx *Index) Vectors() []floats.SparseVector {
	return idx.vectors
}
