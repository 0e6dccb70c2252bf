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

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusOffShelf Status = 1 // 下架
	StatusOnShelf  Status = 2 // 上架
)

// Product 商品, 只下架不删除。
type Product struct {
	ID       int64
	SN       string
	Name     string
	Desc     string
	Variants []Variant
	Status   Status
}

// Variant 商品规格, 一个商品有多个规格(尺寸), 各自有独立的单价和库存。
type Variant struct {
	ID        int64
	ProductID int64
	SN        string
	Name      string
	// Size 尺寸标签, 配送模块根据它推算包裹重量和箱型
	Size   string
	Price  int64
	Stock  int64
	Status Status
}
