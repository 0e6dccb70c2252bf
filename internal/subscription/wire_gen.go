// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package subscription

import (
	"github.com/ecodeclub/eshop/internal/subscription/internal/repository"
	"github.com/ecodeclub/eshop/internal/subscription/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/subscription/internal/service"
	"github.com/ecodeclub/eshop/internal/subscription/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component) (*Module, error) {
	subscriptionDAO := InitTablesOnce(db)
	subscriptionRepository := repository.NewSubscriptionRepository(subscriptionDAO)
	serviceService := service.NewService(subscriptionRepository)
	v := web.NewHandler(serviceService)
	module := &Module{
		Hdl: v,
		Svc: serviceService,
	}
	return module, nil
}

func InitService(db *egorm.Component) Service {
	subscriptionDAO := InitTablesOnce(db)
	subscriptionRepository := repository.NewSubscriptionRepository(subscriptionDAO)
	v := service.NewService(subscriptionRepository)
	return v
}

// wire.go:

var ServiceSet = wire.NewSet(
	InitTablesOnce, repository.NewSubscriptionRepository, service.NewService,
)

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.SubscriptionDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewSubscriptionGORMDAO(db)
}
