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

//go:build wireinject

package checkout

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/eshop/internal/checkout/internal/repository"
	"github.com/ecodeclub/eshop/internal/checkout/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/checkout/internal/service"
	"github.com/ecodeclub/eshop/internal/checkout/internal/web"
	"github.com/ecodeclub/eshop/internal/coupon"
	"github.com/ecodeclub/eshop/internal/notification"
	"github.com/ecodeclub/eshop/internal/payment"
	"github.com/ecodeclub/eshop/internal/pkg/sequencenumber"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/ecodeclub/eshop/internal/shipping"
	"github.com/ecodeclub/eshop/internal/subscription"
	"github.com/ecodeclub/eshop/internal/tax"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component,
	cache ecache.Cache,
	productM *product.Module,
	couponM *coupon.Module,
	shippingM *shipping.Module,
	taxM *tax.Module,
	subscriptionM *subscription.Module,
	paymentM *payment.Module,
	notificationM *notification.Module) (*Module, error) {
	wire.Build(
		initConfig,
		InitTablesOnce,
		repository.NewOrderRepository,
		sequencenumber.NewGenerator,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.FieldsOf(new(*product.Module), "Svc"),
		wire.FieldsOf(new(*coupon.Module), "Svc"),
		wire.FieldsOf(new(*shipping.Module), "Svc"),
		wire.FieldsOf(new(*tax.Module), "Svc"),
		wire.FieldsOf(new(*subscription.Module), "Svc"),
		wire.FieldsOf(new(*payment.Module), "Svc"),
		wire.FieldsOf(new(*notification.Module), "Relay"),
		wire.Struct(new(Module), "*"))
	return new(Module), nil
}

func initConfig() service.Config {
	var cfg service.Config
	err := econf.UnmarshalKey("checkout", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}
