// Copyright 2024 ecodeclub
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

package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/ecodeclub/eshop/internal/shipping/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestQuoteCache(t *testing.T) {
	t.Parallel()
	now := time.UnixMilli(1712000000000)
	clock := func() time.Time { return now }
	c := newQuoteCacheWithClock(10*time.Minute, 4, clock)

	opts := []domain.Option{{ServiceID: "ground", Name: "陆运", Cost: 995, ETA: "5-7天"}}
	c.Set("k1", opts)

	got, ok := c.Get("k1")
	assert.True(t, ok)
	assert.Equal(t, opts, got)

	// 返回的是副本, 调用方修改不影响缓存
	got[0].Cost = 1
	again, ok := c.Get("k1")
	assert.True(t, ok)
	assert.Equal(t, int64(995), again[0].Cost)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestQuoteCacheExpiry(t *testing.T) {
	t.Parallel()
	now := time.UnixMilli(1712000000000)
	c := newQuoteCacheWithClock(10*time.Minute, 4, func() time.Time { return now })
	c.Set("k1", []domain.Option{{ServiceID: "ground", Cost: 995}})

	now = now.Add(10*time.Minute + time.Second)
	_, ok := c.Get("k1")
	assert.False(t, ok)
}

func TestQuoteCacheSweep(t *testing.T) {
	t.Parallel()
	now := time.UnixMilli(1712000000000)
	c := newQuoteCacheWithClock(10*time.Minute, 2, func() time.Time { return now })
	c.Set("k1", []domain.Option{{ServiceID: "ground", Cost: 995}})
	c.Set("k2", []domain.Option{{ServiceID: "ground", Cost: 1095}})
	assert.Len(t, c.entries, 2)

	// 超过软上限时清掉已过期条目
	now = now.Add(11 * time.Minute)
	c.Set("k3", []domain.Option{{ServiceID: "ground", Cost: 1195}})
	assert.Len(t, c.entries, 1)
	_, ok := c.Get("k3")
	assert.True(t, ok)
}

func TestQuoteCacheConcurrent(t *testing.T) {
	t.Parallel()
	c := NewQuoteCache(10*time.Minute, 64)
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(i int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d", j%16)
				c.Set(key, []domain.Option{{ServiceID: "ground", Cost: int64(j)}})
				c.Get(key)
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
