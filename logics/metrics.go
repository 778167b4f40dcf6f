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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	LabelStep     = "step"
	LabelData     = "data"
	LabelStrategy = "strategy"
)

const (
	StrategyUser    = "user"
	StrategyItems   = "items"
	StrategyGenres  = "genres"
	StrategyPopular = "popular"
)

var (
	PrepareStepSecondsVec = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "movierec",
		Subsystem: "engine",
		Name:      "prepare_step_seconds",
	}, []string{LabelStep})
	PrepareTotalSeconds = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "movierec",
		Subsystem: "engine",
		Name:      "prepare_total_seconds",
	})
	SnapshotSizeVec = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "movierec",
		Subsystem: "engine",
		Name:      "snapshot_size",
	}, []string{LabelData})
	RecommendTotalVec = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "movierec",
		Subsystem: "engine",
		Name:      "recommend_total",
	}, []string{LabelStrategy})
	RecommendFallbackTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "movierec",
		Subsystem: "engine",
		Name:      "recommend_fallback_total",
	})
)
