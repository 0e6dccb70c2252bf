// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package shipping

import (
	"github.com/ecodeclub/eshop/internal/shipping/internal/repository/cache"
	"github.com/ecodeclub/eshop/internal/shipping/internal/service"
	"github.com/ecodeclub/eshop/internal/shipping/internal/service/carrier"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

// Injectors from wire.go:

func InitModule() (*Module, error) {
	config := initConfig()
	client := initClient()
	quoteCache := initQuoteCache()
	v := service.NewService(config, client, quoteCache)
	module := &Module{
		Svc: v,
	}
	return module, nil
}

func InitService() Service {
	config := initConfig()
	client := initClient()
	quoteCache := initQuoteCache()
	v := service.NewService(config, client, quoteCache)
	return v
}

// wire.go:

var ServiceSet = wire.NewSet(
	initConfig,
	initClient,
	initQuoteCache, service.NewService,
)

func initConfig() service.Config {
	var cfg service.Config
	err := econf.UnmarshalKey("shipping", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func initClient() carrier.Client {
	return carrier.NewHTTPClient(econf.GetString("shipping.gateway.rateURL"), econf.GetDuration("shipping.gateway.timeout"))
}

func initQuoteCache() *cache.QuoteCache {
	return cache.NewQuoteCache(econf.GetDuration("shipping.cache.ttl"), econf.GetInt("shipping.cache.softBound"))
}
