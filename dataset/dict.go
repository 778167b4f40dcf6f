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

// FreqDict assigns dense ids to strings in order of first occurrence and
// counts how many times each string was added.
type FreqDict struct {
	ids    map[string]int
	values []string
	counts []int
}

func NewFreqDict() *FreqDict {
	return &FreqDict{ids: make(map[string]int)}
}

func (d *FreqDict) Count() int {
	return len(d.values)
}

// Id returns the id of s and increases its frequency.
func (d *FreqDict) Id(s string) int {
	if id, ok := d.ids[s]; ok {
		d.counts[id]++
		return id
	}
	id := len(d.values)
	d.ids[s] = id
	d.values = append(d.values, s)
	d.counts = append(d.counts, 1)
	return id
}

// Lookup returns the id of s without counting it.
func (d *FreqDict) Lookup(s string) (int, bool) {
	id, ok := d.ids[s]
	return id, ok
}

func (d *FreqDict) String(id int) (string, bool) {
	if id < 0 || id >= len(d.values) {
		return "", false
	}
	return d.values[id], true
}

func (d *FreqDict) Freq(id int) int {
	if id < 0 || id >= len(d.counts) {
		return 0
	}
	return d.counts[id]
}
