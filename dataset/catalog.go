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
	"slices"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/juju/errors"
)

// Catalog holds immutable items. Positions of items follow the load order and
// are used as dense indices by derived matrices.
type Catalog struct {
	items  []Item
	index  map[int]int
	titles map[string]int
}

// NewCatalog validates and indexes items. Duplicated item ids are rejected.
func NewCatalog(items []Item) (*Catalog, error) {
	c := &Catalog{
		items:  make([]Item, 0, len(items)),
		index:  make(map[int]int, len(items)),
		titles: make(map[string]int, len(items)),
	}
	for _, item := range items {
		if err := item.validate(); err != nil {
			return nil, errors.Trace(err)
		}
		if _, exist := c.index[item.ItemId]; exist {
			return nil, errors.NotValidf("duplicated item %d", item.ItemId)
		}
		item.Genres = slices.Clone(item.Genres)
		c.index[item.ItemId] = len(c.items)
		if _, exist := c.titles[item.Title]; !exist {
			c.titles[item.Title] = len(c.items)
		}
		c.items = append(c.items, item)
	}
	return c, nil
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns a copy of all items in load order.
func (c *Catalog) Items() []Item {
	return slices.Clone(c.items)
}

// At returns the item at position i.
func (c *Catalog) At(i int) Item {
	return c.items[i]
}

// IndexOf returns the position of an item.
func (c *Catalog) IndexOf(itemId int) (int, bool) {
	i, ok := c.index[itemId]
	return i, ok
}

// Get returns the item with itemId.
func (c *Catalog) Get(itemId int) (Item, error) {
	i, ok := c.index[itemId]
	if !ok {
		return Item{}, errors.NotFoundf("item %d", itemId)
	}
	return c.items[i], nil
}

// FindByTitle returns the first item with the exact title.
func (c *Catalog) FindByTitle(title string) (Item, error) {
	i, ok := c.titles[title]
	if !ok {
		return Item{}, errors.NotFoundf("item %q", title)
	}
	return c.items[i], nil
}

// Genres returns distinct genres in ascending order.
func (c *Catalog) Genres() []string {
	genres := mapset.NewThreadUnsafeSet[string]()
	for _, item := range c.items {
		genres.Append(item.Genres...)
	}
	result := genres.ToSlice()
	sort.Strings(result)
	return result
}
