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
	"sync"
	"time"

	"github.com/ecodeclub/eshop/internal/shipping/internal/domain"
)

// QuoteCache 承运商报价的进程内缓存。
// 纯性能优化: 未命中重新询价必须得到同样的结果, 所以超时条目直接当作不存在。
// 超过软上限时对全部条目做一次过期清扫, 不维护LRU顺序。
type QuoteCache struct {
	mu        sync.RWMutex
	entries   map[string]entry
	ttl       time.Duration
	softBound int
	now       func() time.Time
}

type entry struct {
	options  []domain.Option
	expireAt time.Time
}

func NewQuoteCache(ttl time.Duration, softBound int) *QuoteCache {
	return newQuoteCacheWithClock(ttl, softBound, time.Now)
}

func newQuoteCacheWithClock(ttl time.Duration, softBound int, now func() time.Time) *QuoteCache {
	return &QuoteCache{
		entries:   make(map[string]entry),
		ttl:       ttl,
		softBound: softBound,
		now:       now,
	}
}

func (c *QuoteCache) Get(key string) ([]domain.Option, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || c.now().After(e.expireAt) {
		return nil, false
	}
	res := make([]domain.Option, len(e.options))
	copy(res, e.options)
	return res, true
}

func (c *QuoteCache) Set(key string, options []domain.Option) {
	stored := make([]domain.Option, len(options))
	copy(stored, options)
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.softBound {
		c.sweep()
	}
	c.entries[key] = entry{
		options:  stored,
		expireAt: c.now().Add(c.ttl),
	}
}

func (c *QuoteCache) sweep() {
	now := c.now()
	for k, e := range c.entries {
		if now.After(e.expireAt) {
			delete(c.entries, k)
		}
	}
}
