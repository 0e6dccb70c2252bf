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

import "github.com/ecodeclub/eshop/internal/coupon/internal/domain"

// ValidateCouponReq base为调用方的折扣基数(商品小计+运费), 单位为分
type ValidateCouponReq struct {
	Code string `json:"code"`
	Base int64  `json:"base"`
}

type ValidateCouponResp struct {
	Code     string `json:"code"`
	Discount int64  `json:"discount"`
}

type SaveCouponReq struct {
	Coupon Coupon `json:"coupon"`
}

type SaveCouponResp struct {
	ID int64 `json:"id"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

type ListCouponsReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListCouponsResp struct {
	Total   int64    `json:"total,omitempty"`
	Coupons []Coupon `json:"coupons,omitempty"`
}

type Coupon struct {
	ID         int64  `json:"id,omitempty"`
	Code       string `json:"code"`
	Kind       uint8  `json:"kind"`
	Value      int64  `json:"value"`
	Status     uint8  `json:"status,omitempty"`
	UsageLimit int64  `json:"usageLimit"`
	UsageCount int64  `json:"usageCount,omitempty"`
	ExpiresAt  int64  `json:"expiresAt,omitempty"`
}

func newCoupon(c domain.Coupon) Coupon {
	return Coupon{
		ID:         c.ID,
		Code:       c.Code,
		Kind:       c.Kind.ToUint8(),
		Value:      c.Value,
		Status:     c.Status.ToUint8(),
		UsageLimit: c.UsageLimit,
		UsageCount: c.UsageCount,
		ExpiresAt:  c.ExpiresAt,
	}
}

func (c Coupon) toDomain() domain.Coupon {
	res := domain.Coupon{
		ID:         c.ID,
		Code:       c.Code,
		Kind:       domain.Kind(c.Kind),
		Value:      c.Value,
		Status:     domain.Status(c.Status),
		UsageLimit: c.UsageLimit,
		UsageCount: c.UsageCount,
		ExpiresAt:  c.ExpiresAt,
	}
	if res.Status == 0 {
		res.Status = domain.StatusActive
	}
	if res.UsageLimit == 0 {
		res.UsageLimit = domain.UsageUnlimited
	}
	return res
}
