// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package checkout

import (
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
	"github.com/gotomicro/ego/core/econf"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component, cache ecache.Cache, productM *product.Module, couponM *coupon.Module, shippingM *shipping.Module, taxM *tax.Module, subscriptionM *subscription.Module, paymentM *payment.Module, notificationM *notification.Module) (*Module, error) {
	config := initConfig()
	v := productM.Svc
	v2 := couponM.Svc
	v3 := shippingM.Svc
	v4 := taxM.Svc
	v5 := subscriptionM.Svc
	v6 := paymentM.Svc
	v7 := notificationM.Relay
	orderDAO := InitTablesOnce(db)
	orderRepository := repository.NewOrderRepository(orderDAO)
	generator := sequencenumber.NewGenerator()
	serviceService := service.NewService(config, v, v2, v3, v4, v5, v6, v7, orderRepository, generator)
	v8 := web.NewHandler(serviceService, cache)
	v9 := web.NewAdminHandler(serviceService)
	module := &Module{
		Hdl:      v8,
		AdminHdl: v9,
		Svc:      serviceService,
	}
	return module, nil
}

// wire.go:

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
