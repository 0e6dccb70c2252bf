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

package domain

import "github.com/ecodeclub/eshop/internal/pkg/money"

type Kind uint8

func (k Kind) ToUint8() uint8 {
	return uint8(k)
}

const (
	KindPercentage Kind = 1 // 按比例, Value为万分比, 2500表示25%
	KindFixed      Kind = 2 // 固定金额, Value单位为分
)

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusDisabled Status = 1
	StatusActive   Status = 2
)

// UsageUnlimited 不限使用次数。
const UsageUnlimited int64 = -1

type Coupon struct {
	ID   int64
	Code string
	Kind Kind
	// Value 折扣值, 按Kind解释: 百分比为万分比, 固定金额为分
	Value      int64
	Status     Status
	UsageLimit int64
	UsageCount int64
	// ExpiresAt 过期时间毫秒数, 0表示永不过期
	ExpiresAt int64
}

// Exhausted 用完即废: 达到使用上限后任何校验一律失败。
func (c Coupon) Exhausted() bool {
	return c.UsageLimit != UsageUnlimited && c.UsageCount >= c.UsageLimit
}

func (c Coupon) Expired(nowMilli int64) bool {
	return c.ExpiresAt > 0 && c.ExpiresAt <= nowMilli
}

// Discount 计算在折扣基数base上的折扣金额。
// 折扣基数为 商品小计+运费, 见结算模块; 结果不为负且不超过基数。
func (c Coupon) Discount(base int64) int64 {
	if base <= 0 {
		return 0
	}
	switch c.Kind {
	case KindPercentage:
		return money.Clamp(money.RateOf(base, c.Value), base)
	case KindFixed:
		return money.Clamp(money.Min(c.Value, base), base)
	default:
		return 0
	}
}
