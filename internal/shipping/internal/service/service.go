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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/eshop/internal/pkg/zipcode"
	"github.com/ecodeclub/eshop/internal/shipping/internal/domain"
	"github.com/ecodeclub/eshop/internal/shipping/internal/repository/cache"
	"github.com/ecodeclub/eshop/internal/shipping/internal/service/carrier"
	"github.com/gotomicro/ego/core/elog"
)

// ErrUnserviceableDestination 目的地不在可配送范围内。
var ErrUnserviceableDestination = errors.New("目的地不支持配送")

//go:generate mockgen -source=./service.go -package=shippingmocks -destination=../../mocks/shipping.mock.go -typed Service
type Service interface {
	// Quote 对目的地询运费。承运商实时询价失败时回退到静态价目表,
	// 只有目的地不可配送才返回错误
	Quote(ctx context.Context, destZip, size string, quantity int64) (domain.Quote, error)
}

type Config struct {
	OriginZip string `yaml:"originZip"`
}

func NewService(cfg Config, client carrier.Client, quoteCache *cache.QuoteCache) Service {
	return &service{
		originZip: cfg.OriginZip,
		client:    client,
		cache:     quoteCache,
		logger:    elog.DefaultLogger,
	}
}

type service struct {
	originZip string
	client    carrier.Client
	cache     *cache.QuoteCache
	logger    *elog.Component
}

// 每种尺寸的单件重量, 单位为盎司。
var unitWeightOz = map[string]int64{
	"small":  16,
	"medium": 24,
	"large":  40,
	"family": 64,
}

// 打包辅料的固定重量。
const packagingAllowanceOz = 8

// 箱型按数量分三档: 1件、2件、3件及以上。
var boxTiers = []struct {
	minQuantity           int64
	length, width, height int64
}{
	{3, 16, 12, 8},
	{2, 12, 10, 6},
	{1, 10, 8, 4},
}

// 偏远州/属地的固定附加费, 单位为分, 在承运商基础运费之上叠加。
var remoteSurcharge = map[string]int64{
	"AK": 1500,
	"HI": 1500,
	"PR": 1200,
	"GU": 1200,
	"VI": 1200,
}

func (s *service) Quote(ctx context.Context, destZip, size string, quantity int64) (domain.Quote, error) {
	state, ok := zipcode.StateOf(destZip)
	if !ok || !zipcode.IsDomestic(state) {
		return domain.Quote{}, fmt.Errorf("%w: %s", ErrUnserviceableDestination, destZip)
	}

	pkg := buildPackage(size, quantity)
	key := s.cacheKey(destZip, pkg)

	options, cached := s.cache.Get(key)
	usedFallback := false
	if !cached {
		var err error
		options, err = s.client.Estimate(ctx, s.originZip, destZip, pkg)
		if err != nil {
			// 结算不能只因实时询价失败而失败, 回退到静态价目表并透出标记
			s.logger.Warn("承运商询价失败, 使用兜底价目表",
				elog.FieldErr(err),
				elog.String("destZip", destZip))
			options = fallbackOptions()
			usedFallback = true
		} else {
			s.cache.Set(key, options)
		}
	}

	return domain.Quote{
		Options:      s.assemble(options, state),
		DestState:    state,
		UsedFallback: usedFallback,
	}, nil
}

// assemble 自提选项永远免费且排在首位, 偏远地区在承运商运费上叠加附加费。
func (s *service) assemble(options []domain.Option, state string) []domain.Option {
	res := make([]domain.Option, 0, len(options)+1)
	res = append(res, domain.Option{
		ServiceID: domain.PickupServiceID,
		Name:      "到店自提",
		Cost:      0,
		ETA:       "随时",
	})
	surcharge := remoteSurcharge[state]
	for _, opt := range options {
		opt.Cost += surcharge
		res = append(res, opt)
	}
	return res
}

func (s *service) cacheKey(destZip string, pkg domain.Package) string {
	return fmt.Sprintf("%s|%s|%d|%dx%dx%d", s.originZip, destZip, pkg.WeightOz, pkg.Length, pkg.Width, pkg.Height)
}

// buildPackage 重量随数量线性增长再加固定打包辅料, 箱型按数量分档。
func buildPackage(size string, quantity int64) domain.Package {
	unit, ok := unitWeightOz[size]
	if !ok {
		unit = unitWeightOz["medium"]
	}
	pkg := domain.Package{WeightOz: unit*quantity + packagingAllowanceOz}
	for _, tier := range boxTiers {
		if quantity >= tier.minQuantity {
			pkg.Length, pkg.Width, pkg.Height = tier.length, tier.width, tier.height
			break
		}
	}
	return pkg
}

// fallbackOptions 静态兜底价目表, 承运商不可达时使用。
func fallbackOptions() []domain.Option {
	return []domain.Option{
		{ServiceID: "ground", Name: "陆运", Cost: 995, ETA: "5-7个工作日"},
		{ServiceID: "expedited", Name: "加急", Cost: 1895, ETA: "2-3个工作日"},
		{ServiceID: "overnight", Name: "次日达", Cost: 3995, ETA: "1个工作日"},
	}
}
