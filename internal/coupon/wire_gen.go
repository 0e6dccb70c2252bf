// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package coupon

import (
	"github.com/ecodeclub/eshop/internal/coupon/internal/repository"
	"github.com/ecodeclub/eshop/internal/coupon/internal/repository/dao"
	"github.com/ecodeclub/eshop/internal/coupon/internal/service"
	"github.com/ecodeclub/eshop/internal/coupon/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"sync"
)

// Injectors from wire.go:

func InitModule(db *egorm.Component) (*Module, error) {
	couponDAO := InitTablesOnce(db)
	couponRepository := repository.NewCouponRepository(couponDAO)
	serviceService := service.NewService(couponRepository)
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
	couponDAO := InitTablesOnce(db)
	couponRepository := repository.NewCouponRepository(couponDAO)
	v := service.NewService(couponRepository)
	return v
}

// wire.go:

var ServiceSet = wire.NewSet(
	InitTablesOnce, repository.NewCouponRepository, service.NewService,
)

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.CouponDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewCouponGORMDAO(db)
}
