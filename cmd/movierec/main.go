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
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gorse-io/movierec/base/log"
	"github.com/gorse-io/movierec/cmd/version"
	"github.com/gorse-io/movierec/config"
	"github.com/gorse-io/movierec/dataset"
	"github.com/gorse-io/movierec/logics"
	"github.com/juju/errors"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCommand = &cobra.Command{
	Use:   "movierec",
	Short: "Recommend movies by ratings, descriptions, genres and popularity.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		log.SetLogger(cmd.Flags(), debug)
	},
}

var versionCommand = &cobra.Command{
	Use:   "version",
	Short: "Show version of movierec",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(version.BuildInfo())
	},
}

func init() {
	log.AddFlags(rootCommand.PersistentFlags())
	rootCommand.PersistentFlags().Bool("debug", false, "use debug log mode")
	rootCommand.PersistentFlags().StringP("config", "c", "", "configuration file path")
	rootCommand.PersistentFlags().String("movies", "", "movies csv (built-in sample if empty)")
	rootCommand.PersistentFlags().String("ratings", "", "ratings csv (generated if empty)")
	rootCommand.PersistentFlags().Int64("seed", 42, "random seed of generated ratings")
	rootCommand.PersistentFlags().IntP("n", "n", 5, "number of recommendations")
	rootCommand.AddCommand(versionCommand)
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		log.Logger().Fatal("failed to execute command", zap.Error(err))
	}
}

// loadEngine loads the dataset selected by flags and prepares an engine.
func loadEngine(cmd *cobra.Command) (*logics.Engine, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, errors.Trace(err)
	}

	// load movies
	var items []dataset.Item
	if moviesPath, _ := cmd.Flags().GetString("movies"); moviesPath != "" {
		err = readFile(moviesPath, "loading movies", func(r io.Reader) error {
			items, err = dataset.LoadCatalogCSV(r)
			return err
		})
	} else {
		items, err = dataset.LoadSampleCatalog()
	}
	if err != nil {
		return nil, errors.Trace(err)
	}
	catalog, err := dataset.NewCatalog(items)
	if err != nil {
		return nil, errors.Trace(err)
	}

	// load ratings
	var ratings []dataset.Rating
	if ratingsPath, _ := cmd.Flags().GetString("ratings"); ratingsPath != "" {
		err = readFile(ratingsPath, "loading ratings", func(r io.Reader) error {
			ratings, err = dataset.LoadRatingsCSV(r)
			return err
		})
		if err != nil {
			return nil, errors.Trace(err)
		}
	} else {
		seed, _ := cmd.Flags().GetInt64("seed")
		ratings = dataset.GenerateRatings(seed, dataset.SampleUsers, lo.Map(items, func(item dataset.Item, _ int) int {
			return item.ItemId
		}))
	}
	interactions, err := dataset.NewInteractions(ratings)
	if err != nil {
		return nil, errors.Trace(err)
	}

	engine, err := logics.NewEngine(context.Background(), cfg, catalog, interactions)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return engine, nil
}

func readFile(path, description string, read func(io.Reader) error) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Trace(err)
	}
	defer file.Close()
	stat, err := file.Stat()
	if err != nil {
		return errors.Trace(err)
	}
	bar := progressbar.DefaultBytes(stat.Size(), description)
	reader := progressbar.NewReader(file, bar)
	if err = read(&reader); err != nil {
		return errors.Annotatef(err, "read %s", path)
	}
	return errors.Trace(bar.Finish())
}
