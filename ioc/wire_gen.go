// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

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

// Injectors from wire.go:

func InitApp() (*App, error) {
	cmdable := InitRedis()
	provider := InitSession(cmdable)
	v := InitDB()
	module, err := product.InitModule(v)
	if err != nil {
		return nil, err
	}
	v2 := module.Hdl
	couponModule, err := coupon.InitModule(v)
	if err != nil {
		return nil, err
	}
	v3 := couponModule.Hdl
	cache := InitCache(cmdable)
	shippingModule, err := shipping.InitModule()
	if err != nil {
		return nil, err
	}
	taxModule, err := tax.InitModule()
	if err != nil {
		return nil, err
	}
	subscriptionModule, err := subscription.InitModule(v)
	if err != nil {
		return nil, err
	}
	paymentModule, err := payment.InitModule()
	if err != nil {
		return nil, err
	}
	mq := InitMQ()
	notificationModule, err := notification.InitModule(mq)
	if err != nil {
		return nil, err
	}
	checkoutModule, err := checkout.InitModule(v, cache, module, couponModule, shippingModule, taxModule, subscriptionModule, paymentModule, notificationModule)
	if err != nil {
		return nil, err
	}
	v4 := checkoutModule.Hdl
	v5 := subscriptionModule.Hdl
	component := initGinxServer(provider, v2, v3, v4, v5)
	v6 := module.AdminHdl
	v7 := couponModule.AdminHdl
	v8 := checkoutModule.AdminHdl
	adminServer := InitAdminServer(v6, v7, v8)
	app := &App{
		Web:   component,
		Admin: adminServer,
	}
	return app, nil
}

// wire.go:

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitSession)
