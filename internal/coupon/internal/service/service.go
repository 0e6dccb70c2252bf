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
	"time"

	"github.com/ecodeclub/eshop/internal/coupon/internal/domain"
	"github.com/ecodeclub/eshop/internal/coupon/internal/repository"
	"github.com/ecodeclub/eshop/internal/coupon/internal/repository/dao"
)

// ErrCouponInvalid 兑换码不存在、已停用、已过期或已用完。
// 校验失败不产生任何部分折扣。
var ErrCouponInvalid = errors.New("优惠券不可用")

//go:generate mockgen -source=./service.go -package=couponmocks -destination=../../mocks/coupon.mock.go -typed Service
type Service interface {
	// Validate 校验兑换码是否可用, 幂等且无副作用,
	// 报价和提交两条路径使用完全相同的规则
	Validate(ctx context.Context, code string) (domain.Coupon, error)
	Save(ctx context.Context, c domain.Coupon) (int64, error)
	Disable(ctx context.Context, id int64) error
	ListCoupons(ctx context.Context, offset, limit int) (int64, []domain.Coupon, error)
}

func NewService(repo repository.CouponRepository) Service {
	return &service{repo: repo, now: func() int64 { return time.Now().UnixMilli() }}
}

func newServiceWithClock(repo repository.CouponRepository, now func() int64) Service {
	return &service{repo: repo, now: now}
}

type service struct {
	repo repository.CouponRepository
	now  func() int64
}

func (s *service) Validate(ctx context.Context, code string) (domain.Coupon, error) {
	c, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, dao.ErrCouponNotFound) {
			return domain.Coupon{}, ErrCouponInvalid
		}
		return domain.Coupon{}, err
	}
	if c.Status != domain.StatusActive || c.Expired(s.now()) || c.Exhausted() {
		return domain.Coupon{}, ErrCouponInvalid
	}
	return c, nil
}

func (s *service) Save(ctx context.Context, c domain.Coupon) (int64, error) {
	return s.repo.Save(ctx, c)
}

func (s *service) Disable(ctx context.Context, id int64) error {
	return s.repo.UpdateStatus(ctx, id, domain.StatusDisabled)
}

func (s *service) ListCoupons(ctx context.Context, offset, limit int) (int64, []domain.Coupon, error) {
	return s.repo.FindCoupons(ctx, offset, limit)
}
