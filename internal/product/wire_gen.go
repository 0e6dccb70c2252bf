// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package product

import (
	"github.com/ecodeclub/eshop/internal/product/internal/repository"
	"github.com/ecodeclub/eshop/internal/product/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/product/internal/service"
	"github.com/ecodeclub/eshop/internal/product/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component) (*Module, error) {
	productDAO := InitTablesOnce(db)
	productRepository := repository.NewProductRepository(productDAO)
	serviceService := service.NewService(productRepository)
	v := web.NewHandler(serviceService)
	v2 := web.NewAdminHandler(serviceService)
	module := &Module{
		Hdl:      v,
		AdminHdl: v2,
		Svc:      serviceService,
	}
	return module, nil
}

func InitService(db *egorm.Component) Service {
	productDAO := InitTablesOnce(db)
	productRepository := repository.NewProductRepository(productDAO)
	v := service.NewService(productRepository)
	return v
}

// wire.go:

var ServiceSet = wire.NewSet(
	InitTablesOnce, repository.NewProductRepository, service.NewService,
)

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ProductDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewProductGORMDAO(db)
}
