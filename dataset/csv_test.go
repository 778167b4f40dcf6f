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
	"strings"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func TestLoadCatalogCSV(t *testing.T) {
	items, err := LoadCatalogCSV(strings.NewReader("movie_id,title,genre,year,rating,description\n" +
		"8,Inception,Action|Sci-Fi|Thriller,2010,8.7,\"A thief who steals corporate secrets, through dreams.\"\n" +
		"\n" +
		"11,The Matrix,Action|Sci-Fi,1999,8.7,A computer programmer fights.\n"))
	assert.NoError(t, err)
	assert.Equal(t, []Item{
		{ItemId: 8, Title: "Inception", Genres: []string{"Action", "Sci-Fi", "Thriller"}, Year: 2010, Rating: 8.7,
			Description: "A thief who steals corporate secrets, through dreams."},
		{ItemId: 11, Title: "The Matrix", Genres: []string{"Action", "Sci-Fi"}, Year: 1999, Rating: 8.7,
			Description: "A computer programmer fights."},
	}, items)
}

func TestLoadCatalogCSVInvalid(t *testing.T) {
	_, err := LoadCatalogCSV(strings.NewReader(""))
	assert.True(t, errors.Is(err, errors.NotValid))
	_, err = LoadCatalogCSV(strings.NewReader("movie_id,title\n1,Her\n"))
	assert.True(t, errors.Is(err, errors.NotValid))
	_, err = LoadCatalogCSV(strings.NewReader("movie_id,title,genre,year,rating,description\nx,Her,Drama,2013,8.0,d\n"))
	assert.True(t, errors.Is(err, errors.NotValid))
	_, err = LoadCatalogCSV(strings.NewReader("movie_id,title,genre,year,rating,description\n1,Her,Drama,2013,NaN,d\n"))
	assert.True(t, errors.Is(err, errors.NotValid))
	_, err = LoadCatalogCSV(strings.NewReader("movie_id,title,genre,year,rating,description\n1,Her,Drama,2013\n"))
	assert.True(t, errors.Is(err, errors.NotValid))
}

func TestLoadRatingsCSV(t *testing.T) {
	ratings, err := LoadRatingsCSV(strings.NewReader("rating,user_id,movie_id\n5,1,8\n3,2,11\n"))
	assert.NoError(t, err)
	assert.Equal(t, []Rating{{UserId: 1, ItemId: 8, Value: 5}, {UserId: 2, ItemId: 11, Value: 3}}, ratings)
	_, err = LoadRatingsCSV(strings.NewReader("user_id,movie_id,rating\n1,8,five\n"))
	assert.True(t, errors.Is(err, errors.NotValid))
}
