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
	"reflect"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/gorse-io/movierec/base/log"
	"github.com/gorse-io/movierec/dataset"
	"github.com/juju/errors"
	"go.uber.org/zap"
)

// ItemFilter keeps items satisfying a boolean expression over `item`, for
// example `item.Year >= 1990 && "Drama" in item.Genres`.
type ItemFilter struct {
	program *vm.Program
}

// NewItemFilter compiles an expression. An empty expression accepts every item.
func NewItemFilter(expression string) (*ItemFilter, error) {
	if expression == "" {
		return &ItemFilter{}, nil
	}
	program, err := expr.Compile(expression, expr.Env(map[string]any{
		"item": dataset.Item{},
	}))
	if err != nil {
		return nil, errors.NotValidf("item filter %q: %v", expression, err)
	}
	if program.Node().Type().Kind() != reflect.Bool {
		return nil, errors.NotValidf("item filter %q must return bool", expression)
	}
	return &ItemFilter{program: program}, nil
}

// Accept reports whether item passes the filter. Items failing evaluation are rejected.
func (f *ItemFilter) Accept(item dataset.Item) bool {
	if f == nil || f.program == nil {
		return true
	}
	result, err := expr.Run(f.program, map[string]any{
		"item": item,
	})
	if err != nil {
		log.Logger().Error("evaluate item filter", zap.Int("item_id", item.ItemId), zap.Error(err))
		return false
	}
	return result.(bool)
}
