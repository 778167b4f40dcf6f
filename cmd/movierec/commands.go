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

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gorse-io/movierec/logics"
	"github.com/juju/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCommand.AddCommand(userCommand, similarCommand, genresCommand, popularCommand, statsCommand)
}

var userCommand = &cobra.Command{
	Use:   "user <user_id>",
	Short: "Recommend movies rated by similar users",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userId, err := strconv.Atoi(args[0])
		if err != nil {
			return errors.NotValidf("user id %q", args[0])
		}
		engine, err := loadEngine(cmd)
		if err != nil {
			return errors.Trace(err)
		}
		n, _ := cmd.Flags().GetInt("n")
		return renderRecommendations(os.Stdout, engine.RecommendByUser(userId, n))
	},
}

var similarCommand = &cobra.Command{
	Use:   "similar <title_or_id>...",
	Short: "Recommend movies similar to given movies",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine(cmd)
		if err != nil {
			return errors.Trace(err)
		}
		n, _ := cmd.Flags().GetInt("n")
		catalog := engine.Snapshot().Catalog()
		seedIds := make([]int, 0, len(args))
		for _, arg := range args {
			if item, err := catalog.FindByTitle(arg); err == nil {
				seedIds = append(seedIds, item.ItemId)
			} else if itemId, err := strconv.Atoi(arg); err == nil {
				seedIds = append(seedIds, itemId)
			}
		}
		return renderRecommendations(os.Stdout, engine.RecommendByItems(seedIds, n))
	},
}

var genresCommand = &cobra.Command{
	Use:   "genres <genre>...",
	Short: "Recommend top rated movies of genres",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine(cmd)
		if err != nil {
			return errors.Trace(err)
		}
		n, _ := cmd.Flags().GetInt("n")
		return renderRecommendations(os.Stdout, engine.RecommendByGenres(args, n))
	},
}

var popularCommand = &cobra.Command{
	Use:   "popular",
	Short: "Recommend top rated movies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine(cmd)
		if err != nil {
			return errors.Trace(err)
		}
		n, _ := cmd.Flags().GetInt("n")
		return renderRecommendations(os.Stdout, engine.RecommendPopular(n))
	},
}

var statsCommand = &cobra.Command{
	Use:   "stats",
	Short: "Show overview of the dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine(cmd)
		if err != nil {
			return errors.Trace(err)
		}
		snapshot := engine.Snapshot()
		summary := snapshot.Summary()

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Statistic", "Value")
		if err = table.Bulk([][]string{
			{"Movies", strconv.Itoa(summary.NumItems)},
			{"Users", strconv.Itoa(summary.NumUsers)},
			{"Ratings", strconv.Itoa(summary.NumRatings)},
			{"Terms", strconv.Itoa(snapshot.Index().Dim())},
			{"Genres", strings.Join(snapshot.Catalog().Genres(), ", ")},
		}); err != nil {
			return errors.Trace(err)
		}
		if err = table.Render(); err != nil {
			return errors.Trace(err)
		}

		table = tablewriter.NewWriter(os.Stdout)
		table.Header("Genre", "Movies")
		for _, genre := range summary.TopGenres {
			if err = table.Append([]string{genre.Genre, strconv.Itoa(genre.Count)}); err != nil {
				return errors.Trace(err)
			}
		}
		if err = table.Render(); err != nil {
			return errors.Trace(err)
		}

		table = tablewriter.NewWriter(os.Stdout)
		table.Header("Rating", "Count")
		for i, count := range summary.RatingHistogram {
			if err = table.Append([]string{strconv.Itoa(i + 1), strconv.Itoa(count)}); err != nil {
				return errors.Trace(err)
			}
		}
		return errors.Trace(table.Render())
	},
}

func renderRecommendations(w io.Writer, recommendations []logics.Recommendation) error {
	if len(recommendations) == 0 {
		_, err := fmt.Fprintln(w, "no recommendations")
		return errors.Trace(err)
	}
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Title", "Genres", "Year", "Rating", "Score")
	rows := lo.Map(recommendations, func(r logics.Recommendation, _ int) []string {
		return []string{
			strconv.Itoa(r.ItemId),
			r.Title,
			strings.Join(r.Genres, "|"),
			strconv.Itoa(r.Year),
			strconv.FormatFloat(r.Rating, 'f', 1, 64),
			strconv.FormatFloat(r.Score, 'f', 3, 64),
		}
	})
	if err := table.Bulk(rows); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(table.Render())
}
