//go:build wireinject

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

package ioc

import (
	"github.com/ecodeclub/eshop/internal/checkout"
	"github.com/ecodeclub/eshop/internal/coupon"
	"github.com/ecodeclub/eshop/internal/notification"
	"github.com/ecodeclub/eshop/internal/payment"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/ecodeclub/eshop/internal/shipping"
	"github.com/ecodeclub/eshop/internal/subscription"
	"github.com/ecodeclub/eshop/internal/tax"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitSession)

func InitApp() (*App, error) {
	wire.Build(
		BaseSet,
		product.InitModule,
		wire.FieldsOf(new(*product.Module), "Hdl", "AdminHdl"),
		coupon.InitModule,
		wire.FieldsOf(new(*coupon.Module), "Hdl", "AdminHdl"),
		shipping.InitModule,
		tax.InitModule,
		subscription.InitModule,
		wire.FieldsOf(new(*subscription.Module), "Hdl"),
		payment.InitModule,
		notification.InitModule,
		checkout.InitModule,
		wire.FieldsOf(new(*checkout.Module), "Hdl", "AdminHdl"),
		initGinxServer,
		InitAdminServer,
		wire.Struct(new(App), "*"),
	)
	return new(App), nil
}
