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

package web

type QuoteReq struct {
	VariantSN         string `json:"variantSN"`
	Quantity          int64  `json:"quantity"`
	DestZip           string `json:"destZip"`
	State             string `json:"state,omitempty"`
	CouponCode        string `json:"couponCode,omitempty"`
	ShippingServiceID string `json:"shippingServiceId,omitempty"`
}

type ShippingOptionVO struct {
	ServiceID string `json:"serviceId"`
	Name      string `json:"name"`
	Cost      int64  `json:"cost"`
	ETA       string `json:"eta"`
}

type BreakdownVO struct {
	Subtotal           int64              `json:"subtotal"`
	Shipping           int64              `json:"shipping"`
	Tax                int64              `json:"tax"`
	TaxRate            int64              `json:"taxRate"`
	TaxJurisdiction    string             `json:"taxJurisdiction"`
	CouponDiscount     int64              `json:"couponDiscount"`
	SubscriberDiscount int64              `json:"subscriberDiscount"`
	TotalDiscount      int64              `json:"totalDiscount"`
	Total              int64              `json:"total"`
	UsedFallbackRates  bool               `json:"usedFallbackRates"`
	Options            []ShippingOptionVO `json:"options"`
}

type CustomerVO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type AddressVO struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

type CommitReq struct {
	RequestID string `json:"requestId"`
	QuoteReq
	AuthRef        string     `json:"authRef"`
	CapturedAmount int64      `json:"capturedAmount"`
	Customer       CustomerVO `json:"customer"`
	Address        AddressVO  `json:"address"`
	Notes          string     `json:"notes,omitempty"`
}

type CommitResp struct {
	OrderSN   string      `json:"orderSN"`
	Status    uint8       `json:"status"`
	Breakdown BreakdownVO `json:"breakdown"`
}

type ListOrdersReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type OrderVO struct {
	SN          string      `json:"sn"`
	ItemName    string      `json:"itemName"`
	VariantSN   string      `json:"variantSN"`
	Quantity    int64       `json:"quantity"`
	UnitPrice   int64       `json:"unitPrice"`
	CouponCode  string      `json:"couponCode,omitempty"`
	ShippingSvc string      `json:"shippingSvc"`
	Breakdown   BreakdownVO `json:"breakdown"`
	Customer    CustomerVO  `json:"customer"`
	Address     AddressVO   `json:"address"`
	Notes       string      `json:"notes,omitempty"`
	Status      uint8       `json:"status"`
	Ctime       int64       `json:"ctime"`
}

type ListOrdersResp struct {
	Total  int64     `json:"total"`
	Orders []OrderVO `json:"orders"`
}

type RetrieveOrderDetailReq struct {
	SN string `json:"sn"`
}

type UpdateOrderStatusReq struct {
	ID     int64 `json:"id"`
	Status uint8 `json:"status"`
}
