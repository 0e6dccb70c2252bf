// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package payment

import (
	"github.com/ecodeclub/eshop/internal/payment/internal/service"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

// Injectors from wire.go:

func InitModule() (*Module, error) {
	v := initService()
	module := &Module{
		Svc: v,
	}
	return module, nil
}

func InitService() Service {
	v := initService()
	return v
}

// wire.go:

var ServiceSet = wire.NewSet(initService)

func initService() service.Service {
	return service.NewHTTPService(econf.GetString("payment.processor.verifyURL"), econf.GetDuration("payment.processor.timeout"))
}
