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
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gorse-io/movierec/base"
	"github.com/juju/errors"
	"github.com/samber/lo"
)

var (
	catalogColumns = []string{"movie_id", "title", "genre", "year", "rating", "description"}
	ratingColumns  = []string{"user_id", "movie_id", "rating"}
)

// LoadCatalogCSV reads items from a CSV stream with the header
// movie_id,title,genre,year,rating,description (in any order).
func LoadCatalogCSV(r io.Reader) ([]Item, error) {
	items := make([]Item, 0)
	err := readCSV(r, catalogColumns, func(line int, fields map[string]string) error {
		itemId, err := strconv.Atoi(fields["movie_id"])
		if err != nil {
			return errors.NotValidf("movie_id %q at line %d", fields["movie_id"], line)
		}
		year, err := strconv.Atoi(fields["year"])
		if err != nil {
			return errors.NotValidf("year %q at line %d", fields["year"], line)
		}
		rating, err := strconv.ParseFloat(fields["rating"], 64)
		if err != nil || math.IsNaN(rating) {
			return errors.NotValidf("rating %q at line %d", fields["rating"], line)
		}
		items = append(items, Item{
			ItemId:      itemId,
			Title:       fields["title"],
			Genres:      ParseGenres(fields["genre"]),
			Year:        year,
			Rating:      rating,
			Description: fields["description"],
		})
		return nil
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	return items, nil
}

// LoadRatingsCSV reads ratings from a CSV stream with the header
// user_id,movie_id,rating (in any order).
func LoadRatingsCSV(r io.Reader) ([]Rating, error) {
	ratings := make([]Rating, 0)
	err := readCSV(r, ratingColumns, func(line int, fields map[string]string) error {
		values := make([]int, len(ratingColumns))
		for i, column := range ratingColumns {
			v, err := strconv.Atoi(fields[column])
			if err != nil {
				return errors.NotValidf("%s %q at line %d", column, fields[column], line)
			}
			values[i] = v
		}
		ratings = append(ratings, Rating{UserId: values[0], ItemId: values[1], Value: values[2]})
		return nil
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	return ratings, nil
}

func readCSV(r io.Reader, columns []string, handle func(line int, fields map[string]string) error) error {
	var (
		header    []string
		handleErr error
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	err := base.ReadLines(sc, ",", func(line int, values []string) bool {
		if line == 0 {
			header = lo.Map(values, func(v string, _ int) string {
				return strings.ToLower(strings.TrimSpace(v))
			})
			for _, column := range columns {
				if !lo.Contains(header, column) {
					handleErr = errors.NotValidf("header without column %q", column)
					return false
				}
			}
			return true
		}
		if len(values) == 1 && strings.TrimSpace(values[0]) == "" {
			return true
		}
		if len(values) != len(header) {
			handleErr = errors.NotValidf("%d fields at line %d", len(values), line)
			return false
		}
		fields := make(map[string]string, len(header))
		for i, name := range header {
			fields[name] = strings.TrimSpace(values[i])
		}
		if handleErr = handle(line, fields); handleErr != nil {
			return false
		}
		return true
	})
	if err != nil {
		return errors.Trace(err)
	}
	if header == nil {
		return errors.NotValidf("empty csv")
	}
	return handleErr
}
