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

// Package sequencenumber 订单、优惠券等业务序列号的生成器。
package sequencenumber

import (
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

const snLength = 32

type TimestampFunc func(time.Time) int64

type ShortUUIDFunc func() string

// Generator 生成带毫秒时间戳前缀的业务序列号, 便于排查问题时按时间定位。
type Generator struct {
	timestampFunc TimestampFunc
	shortUUIDFunc ShortUUIDFunc
}

func NewGeneratorWith(timestampFunc TimestampFunc, shortUUIDFunc ShortUUIDFunc) *Generator {
	return &Generator{
		timestampFunc: timestampFunc,
		shortUUIDFunc: shortUUIDFunc,
	}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(
		func(t time.Time) int64 { return t.UnixMilli() },
		func() string { return shortuuid.New() })
}

// Generate 生成32位序列号: 毫秒时间戳 + id后四位 + shortuuid补齐。
func (g *Generator) Generate(id int64) (string, error) {
	timestamp := g.timestampFunc(time.Now())
	lastFour := fmt.Sprintf("%04d", id%10000)
	uuid := g.shortUUIDFunc()
	return fmt.Sprintf("%d%s%s", timestamp, lastFour, uuid)[:snLength], nil
}
