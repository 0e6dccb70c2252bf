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

// PickupServiceID 到店自提, 永远免运费且排在选项首位。
const PickupServiceID = "pickup"

// Option 一种具名配送方式的报价。
type Option struct {
	ServiceID string
	Name      string
	// Cost 运费, 单位为分
	Cost int64
	// ETA 送达时间的展示文案, 只用于收据展示, 不参与计算
	ETA string
}

// Quote 一次运费报价的完整结果。
// UsedFallback 为 true 表示承运商实时询价失败, 使用了静态兜底价目表,
// 调用方必须把该标记透出给用户。
type Quote struct {
	Options      []Option
	DestState    string
	UsedFallback bool
}

// SelectOption 按服务标识挑选配送方式, 空标识选中首个(自提)选项。
func (q Quote) SelectOption(serviceID string) (Option, bool) {
	if serviceID == "" && len(q.Options) > 0 {
		return q.Options[0], true
	}
	for _, opt := range q.Options {
		if opt.ServiceID == serviceID {
			return opt, true
		}
	}
	return Option{}, false
}

// Package 包裹的计费属性, 由规格尺寸和数量推算。
type Package struct {
	WeightOz int64
	// 长宽高, 单位为英寸
	Length int64
	Width  int64
	Height int64
}
