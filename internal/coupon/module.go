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

package coupon

import (
	"github.com/ecodeclub/eshop/internal/coupon/internal/domain"
	"github.com/ecodeclub/eshop/internal/coupon/internal/service"
	"github.com/ecodeclub/eshop/internal/coupon/internal/web"
)

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Service      = service.Service
	Coupon       = domain.Coupon
	Kind         = domain.Kind
	Status       = domain.Status
)

const (
	KindPercentage = domain.KindPercentage
	KindFixed      = domain.KindFixed
	StatusDisabled = domain.StatusDisabled
	StatusActive   = domain.StatusActive
	UsageUnlimited = domain.UsageUnlimited
)

var ErrCouponInvalid = service.ErrCouponInvalid

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
}
