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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/coupon/internal/domain"
	"github.com/ecodeclub/eshop/internal/coupon/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

type CouponRepository interface {
	FindByCode(ctx context.Context, code string) (domain.Coupon, error)
	Save(ctx context.Context, c domain.Coupon) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	FindCoupons(ctx context.Context, offset, limit int) (int64, []domain.Coupon, error)
}

func NewCouponRepository(d dao.CouponDAO) CouponRepository {
	return &couponRepository{dao: d}
}

type couponRepository struct {
	dao dao.CouponDAO
}

func (r *couponRepository) FindByCode(ctx context.Context, code string) (domain.Coupon, error) {
	c, err := r.dao.FindByCode(ctx, code)
	if err != nil {
		return domain.Coupon{}, err
	}
	return r.toDomain(c), nil
}

func (r *couponRepository) Save(ctx context.Context, c domain.Coupon) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(c))
}

func (r *couponRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return r.dao.UpdateStatus(ctx, id, status.ToUint8())
}

func (r *couponRepository) FindCoupons(ctx context.Context, offset, limit int) (int64, []domain.Coupon, error) {
	var (
		eg      errgroup.Group
		coupons []dao.Coupon
		total   int64
	)
	eg.Go(func() error {
		var err error
		coupons, err = r.dao.FindCoupons(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = r.dao.CountCoupons(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return 0, nil, err
	}
	return total, slice.Map(coupons, func(idx int, src dao.Coupon) domain.Coupon {
		return r.toDomain(src)
	}), nil
}

func (r *couponRepository) toDomain(c dao.Coupon) domain.Coupon {
	return domain.Coupon{
		ID:         c.Id,
		Code:       c.Code,
		Kind:       domain.Kind(c.Kind),
		Value:      c.Value,
		Status:     domain.Status(c.Status),
		UsageLimit: c.UsageLimit,
		UsageCount: c.UsageCount,
		ExpiresAt:  c.ExpiresAt,
	}
}

func (r *couponRepository) toEntity(c domain.Coupon) dao.Coupon {
	return dao.Coupon{
		Id:         c.ID,
		Code:       c.Code,
		Kind:       c.Kind.ToUint8(),
		Value:      c.Value,
		Status:     c.Status.ToUint8(),
		UsageLimit: c.UsageLimit,
		UsageCount: c.UsageCount,
		ExpiresAt:  c.ExpiresAt,
	}
}
