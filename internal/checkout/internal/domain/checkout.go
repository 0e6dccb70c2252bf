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

// QuoteRequest 报价请求。价格和库存一律以服务端当前值为准,
// 不信任客户端回显
type QuoteRequest struct {
	VariantSN string
	Quantity  int64
	DestZip   string
	// State 显式州码, 为空时由邮编推导
	State      string
	CouponCode string
	// ShippingServiceID 为空表示选第一个选项(免费自提)
	ShippingServiceID string
}

// CommitRequest 提交请求。支付授权已在外部完成,
// CapturedAmount为客户端回显的扣款金额, 仅用于核对
type CommitRequest struct {
	QuoteRequest
	AuthRef        string
	CapturedAmount int64
	Customer       Customer
	Address        Address
	Notes          string
}

type Customer struct {
	Name  string
	Email string
	Phone string
}

type Address struct {
	Street string
	City   string
	State  string
	Zip    string
}

// ShippingOption 透出给前端的配送选项。
type ShippingOption struct {
	ServiceID string
	Name      string
	Cost      int64
	ETA       string
}

// Breakdown 一次结算的金额明细, 单位全部为分。
// Total = Subtotal + Shipping + Tax - TotalDiscount
type Breakdown struct {
	Subtotal           int64
	Shipping           int64
	Tax                int64
	TaxRate            int64
	TaxJurisdiction    string
	CouponDiscount     int64
	SubscriberDiscount int64
	TotalDiscount      int64
	Total              int64
	// UsedFallbackRates 运费来自静态兜底价目表而非承运商实时报价
	UsedFallbackRates bool
	Options           []ShippingOption
}

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	// StatusCancelled 已取消, 只作记录, 不回滚库存
	StatusCancelled Status = 1
	// StatusCompleted 已完成, 提交成功后的默认状态
	StatusCompleted Status = 2
	// StatusShipped 已发货
	StatusShipped Status = 3
)

// Order 订单快照, 落库时固化当时的全部金额明细。
type Order struct {
	ID  int64
	SN  string
	UID int64

	VariantID   int64
	VariantSN   string
	ItemName    string
	Quantity    int64
	UnitPrice   int64
	CouponID    int64
	CouponCode  string
	ShippingSvc string

	Breakdown Breakdown

	AuthRef  string
	Customer Customer
	Address  Address
	Notes    string
	Status   Status
	Ctime    int64
}
