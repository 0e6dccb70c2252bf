// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package tax

import (
	"github.com/ecodeclub/eshop/internal/tax/internal/service"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

// Injectors from wire.go:

func InitModule() (*Module, error) {
	config := initConfig()
	v := service.NewService(config)
	module := &Module{
		Svc: v,
	}
	return module, nil
}

func InitService() Service {
	config := initConfig()
	v := service.NewService(config)
	return v
}

// wire.go:

var ServiceSet = wire.NewSet(
	initConfig, service.NewService,
)

func initConfig() service.Config {
	var cfg service.Config
	err := econf.UnmarshalKey("tax", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}
