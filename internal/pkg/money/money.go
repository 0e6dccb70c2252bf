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

// Package money 金额运算。全仓库的金额单位为分, 999表示9.99元。
// 所有按比例的运算在每一步都四舍五入到分, 避免累计误差。
package money

// BpsBase 万分比基数, 2500表示25%, 450表示4.5%。
const BpsBase = 10000

// RateOf 按万分比比例计算金额, 四舍五入到分。
func RateOf(amount int64, bps int64) int64 {
	if amount <= 0 || bps <= 0 {
		return 0
	}
	r := amount * bps
	q := r / BpsBase
	if (r%BpsBase)*2 >= BpsBase {
		q++
	}
	return q
}

// Clamp 把金额限制在 [0, max] 区间内, 折扣不允许超过折扣基数。
func Clamp(amount, max int64) int64 {
	if amount < 0 {
		return 0
	}
	if amount > max {
		return max
	}
	return amount
}

// Min 返回两个金额中较小者。
func Min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
