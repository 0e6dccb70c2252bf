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
	"github.com/ecodeclub/eshop/internal/checkout/internal/domain"
	"github.com/ecodeclub/eshop/internal/checkout/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotFound       = dao.ErrOrderNotFound
	ErrDuplicatePaymentRef = dao.ErrDuplicatePaymentRef
	ErrInsufficientStock   = dao.ErrInsufficientStock
	ErrCouponExhausted     = dao.ErrCouponExhausted
)

type OrderRepository interface {
	CommitOrder(ctx context.Context, o domain.Order) (int64, error)
	FindByUIDAndSN(ctx context.Context, uid int64, sn string) (domain.Order, error)
	FindByUID(ctx context.Context, uid int64, offset, limit int) (int64, []domain.Order, error)
	FindOrders(ctx context.Context, offset, limit int) (int64, []domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
}

func NewOrderRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{dao: d}
}

type orderRepository struct {
	dao dao.OrderDAO
}

func (r *orderRepository) CommitOrder(ctx context.Context, o domain.Order) (int64, error) {
	return r.dao.CommitOrder(ctx, r.toEntity(o), o.CouponID)
}

func (r *orderRepository) FindByUIDAndSN(ctx context.Context, uid int64, sn string) (domain.Order, error) {
	o, err := r.dao.FindByUIDAndSN(ctx, uid, sn)
	if err != nil {
		return domain.Order{}, err
	}
	return r.toDomain(o), nil
}

func (r *orderRepository) FindByUID(ctx context.Context, uid int64, offset, limit int) (int64, []domain.Order, error) {
	var (
		eg     errgroup.Group
		total  int64
		orders []dao.Order
	)
	eg.Go(func() error {
		var err error
		total, err = r.dao.CountByUID(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		orders, err = r.dao.FindByUID(ctx, uid, offset, limit)
		return err
	})
	if err := eg.Wait(); err != nil {
		return 0, nil, err
	}
	return total, slice.Map(orders, func(_ int, o dao.Order) domain.Order {
		return r.toDomain(o)
	}), nil
}

func (r *orderRepository) FindOrders(ctx context.Context, offset, limit int) (int64, []domain.Order, error) {
	var (
		eg     errgroup.Group
		total  int64
		orders []dao.Order
	)
	eg.Go(func() error {
		var err error
		total, err = r.dao.CountOrders(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		orders, err = r.dao.FindOrders(ctx, offset, limit)
		return err
	})
	if err := eg.Wait(); err != nil {
		return 0, nil, err
	}
	return total, slice.Map(orders, func(_ int, o dao.Order) domain.Order {
		return r.toDomain(o)
	}), nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return r.dao.UpdateStatus(ctx, id, status.ToUint8())
}

func (r *orderRepository) toEntity(o domain.Order) dao.Order {
	return dao.Order{
		Id:          o.ID,
		Sn:          o.SN,
		Uid:         o.UID,
		VariantId:   o.VariantID,
		VariantSn:   o.VariantSN,
		ItemName:    o.ItemName,
		Quantity:    o.Quantity,
		UnitPrice:   o.UnitPrice,
		CouponId:    o.CouponID,
		CouponCode:  o.CouponCode,
		ShippingSvc: o.ShippingSvc,

		Subtotal:           o.Breakdown.Subtotal,
		Shipping:           o.Breakdown.Shipping,
		Tax:                o.Breakdown.Tax,
		TaxRate:            o.Breakdown.TaxRate,
		TaxJurisdiction:    o.Breakdown.TaxJurisdiction,
		CouponDiscount:     o.Breakdown.CouponDiscount,
		SubscriberDiscount: o.Breakdown.SubscriberDiscount,
		Total:              o.Breakdown.Total,
		UsedFallbackRates:  o.Breakdown.UsedFallbackRates,

		AuthRef:       o.AuthRef,
		CustomerName:  o.Customer.Name,
		CustomerEmail: o.Customer.Email,
		CustomerPhone: o.Customer.Phone,
		AddrStreet:    o.Address.Street,
		AddrCity:      o.Address.City,
		AddrState:     o.Address.State,
		AddrZip:       o.Address.Zip,
		Notes:         o.Notes,
		Status:        o.Status.ToUint8(),
	}
}

func (r *orderRepository) toDomain(o dao.Order) domain.Order {
	return domain.Order{
		ID:          o.Id,
		SN:          o.Sn,
		UID:         o.Uid,
		VariantID:   o.VariantId,
		VariantSN:   o.VariantSn,
		ItemName:    o.ItemName,
		Quantity:    o.Quantity,
		UnitPrice:   o.UnitPrice,
		CouponID:    o.CouponId,
		CouponCode:  o.CouponCode,
		ShippingSvc: o.ShippingSvc,

		Breakdown: domain.Breakdown{
			Subtotal:           o.Subtotal,
			Shipping:           o.Shipping,
			Tax:                o.Tax,
			TaxRate:            o.TaxRate,
			TaxJurisdiction:    o.TaxJurisdiction,
			CouponDiscount:     o.CouponDiscount,
			SubscriberDiscount: o.SubscriberDiscount,
			TotalDiscount:      o.CouponDiscount + o.SubscriberDiscount,
			Total:              o.Total,
			UsedFallbackRates:  o.UsedFallbackRates,
		},

		AuthRef: o.AuthRef,
		Customer: domain.Customer{
			Name:  o.CustomerName,
			Email: o.CustomerEmail,
			Phone: o.CustomerPhone,
		},
		Address: domain.Address{
			Street: o.AddrStreet,
			City:   o.AddrCity,
			State:  o.AddrState,
			Zip:    o.AddrZip,
		},
		Notes:  o.Notes,
		Status: domain.Status(o.Status),
		Ctime:  o.Ctime,
	}
}
