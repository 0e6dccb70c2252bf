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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/checkout/internal/domain"
	"github.com/ecodeclub/eshop/internal/checkout/internal/repository"
	"github.com/ecodeclub/eshop/internal/coupon"
	"github.com/ecodeclub/eshop/internal/notification"
	"github.com/ecodeclub/eshop/internal/payment"
	"github.com/ecodeclub/eshop/internal/pkg/money"
	"github.com/ecodeclub/eshop/internal/pkg/sequencenumber"
	"github.com/ecodeclub/eshop/internal/product"
	"github.com/ecodeclub/eshop/internal/shipping"
	"github.com/ecodeclub/eshop/internal/subscription"
	"github.com/ecodeclub/eshop/internal/tax"
	"github.com/gotomicro/ego/core/elog"
)

var (
	// ErrInvalidQuantity 数量必须在1和当前库存之间
	ErrInvalidQuantity = errors.New("购买数量非法")
	// ErrUnknownShippingService 指定的配送方式不在报价选项里
	ErrUnknownShippingService = errors.New("配送方式不存在")
	// ErrMissingAuthRef 提交必须携带支付授权凭据
	ErrMissingAuthRef = errors.New("缺少支付授权凭据")
	// ErrTotalMismatch 服务端重算的金额与支付授权金额对不上, 订单不落库
	ErrTotalMismatch = errors.New("订单金额与支付金额不一致")

	ErrInsufficientInventory = repository.ErrInsufficientStock
	ErrDuplicatePaymentRef   = repository.ErrDuplicatePaymentRef
	ErrOrderNotFound         = repository.ErrOrderNotFound
)

//go:generate mockgen -source=./service.go -package=checkoutmocks -destination=../../mocks/checkout.mock.go -typed Service
type Service interface {
	// Quote 报价。只读, 相同输入在外部数据不变时结果完全一致,
	// 提交路径用同一套计算
	Quote(ctx context.Context, req domain.QuoteRequest, uid int64) (domain.Breakdown, error)
	// Commit 重算金额、与支付授权核对, 然后在单个事务里
	// 落订单、扣库存、加优惠券使用次数
	Commit(ctx context.Context, req domain.CommitRequest, uid int64) (domain.Order, error)
	FindOrdersByUID(ctx context.Context, uid int64, offset, limit int) (int64, []domain.Order, error)
	FindOrderByUIDAndSN(ctx context.Context, uid int64, sn string) (domain.Order, error)
	ListOrders(ctx context.Context, offset, limit int) (int64, []domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status domain.Status) error
}

type Config struct {
	// SubscriberDiscountBps 订阅者在商品小计上的折扣, 万分比
	SubscriberDiscountBps int64 `yaml:"subscriberDiscountBps"`
	// AmountTolerance 与支付金额核对允许的最大偏差, 单位为分
	AmountTolerance int64 `yaml:"amountTolerance"`
}

func NewService(cfg Config,
	productSvc product.Service,
	couponSvc coupon.Service,
	shippingSvc shipping.Service,
	taxSvc tax.Service,
	subscriptionSvc subscription.Service,
	paymentSvc payment.Service,
	relay notification.Relay,
	repo repository.OrderRepository,
	snGenerator *sequencenumber.Generator) Service {
	if cfg.SubscriberDiscountBps <= 0 {
		cfg.SubscriberDiscountBps = 1000
	}
	if cfg.AmountTolerance <= 0 {
		cfg.AmountTolerance = 1
	}
	return &service{
		cfg:             cfg,
		productSvc:      productSvc,
		couponSvc:       couponSvc,
		shippingSvc:     shippingSvc,
		taxSvc:          taxSvc,
		subscriptionSvc: subscriptionSvc,
		paymentSvc:      paymentSvc,
		relay:           relay,
		repo:            repo,
		snGenerator:     snGenerator,
		logger:          elog.DefaultLogger,
	}
}

type service struct {
	cfg             Config
	productSvc      product.Service
	couponSvc       coupon.Service
	shippingSvc     shipping.Service
	taxSvc          tax.Service
	subscriptionSvc subscription.Service
	paymentSvc      payment.Service
	relay           notification.Relay
	repo            repository.OrderRepository
	snGenerator     *sequencenumber.Generator
	logger          *elog.Component
}

// quoteOutcome 一次金额计算的完整结果, 报价路径只要breakdown,
// 提交路径还需要规格、优惠券和选中的配送方式
type quoteOutcome struct {
	breakdown domain.Breakdown
	variant   product.Variant
	coupon    coupon.Coupon
	option    shipping.Option
}

func (s *service) Quote(ctx context.Context, req domain.QuoteRequest, uid int64) (domain.Breakdown, error) {
	outcome, err := s.evaluate(ctx, req, uid)
	if err != nil {
		return domain.Breakdown{}, err
	}
	quoteCounter.Inc()
	return outcome.breakdown, nil
}

func (s *service) Commit(ctx context.Context, req domain.CommitRequest, uid int64) (domain.Order, error) {
	if req.AuthRef == "" {
		return domain.Order{}, ErrMissingAuthRef
	}
	outcome, err := s.evaluate(ctx, req.QuoteRequest, uid)
	if err != nil {
		return domain.Order{}, err
	}

	// 与处理方记录和客户端回显双重核对, 任何一边对不上都不落库
	captured, err := s.paymentSvc.CapturedAmount(ctx, req.AuthRef)
	if err != nil {
		return domain.Order{}, err
	}
	total := outcome.breakdown.Total
	if absDiff(total, captured) > s.cfg.AmountTolerance ||
		absDiff(total, req.CapturedAmount) > s.cfg.AmountTolerance {
		commitCounter.WithLabelValues("total_mismatch").Inc()
		return domain.Order{}, fmt.Errorf("%w: 应付%d 授权%d 回显%d",
			ErrTotalMismatch, total, captured, req.CapturedAmount)
	}

	sn, err := s.snGenerator.Generate(uid)
	if err != nil {
		return domain.Order{}, err
	}
	order := domain.Order{
		SN:          sn,
		UID:         uid,
		VariantID:   outcome.variant.ID,
		VariantSN:   outcome.variant.SN,
		ItemName:    outcome.variant.Name,
		Quantity:    req.Quantity,
		UnitPrice:   outcome.variant.Price,
		CouponID:    outcome.coupon.ID,
		CouponCode:  outcome.coupon.Code,
		ShippingSvc: outcome.option.ServiceID,
		Breakdown:   outcome.breakdown,
		AuthRef:     req.AuthRef,
		Customer:    req.Customer,
		Address:     req.Address,
		Notes:       req.Notes,
		Status:      domain.StatusCompleted,
	}
	id, err := s.repo.CommitOrder(ctx, order)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicatePaymentRef):
			commitCounter.WithLabelValues("duplicate_auth_ref").Inc()
		case errors.Is(err, repository.ErrInsufficientStock):
			commitCounter.WithLabelValues("insufficient_stock").Inc()
		case errors.Is(err, repository.ErrCouponExhausted):
			commitCounter.WithLabelValues("coupon_exhausted").Inc()
			// 守卫失败对外统一表现为优惠券不可用
			return domain.Order{}, fmt.Errorf("%w: %s", coupon.ErrCouponInvalid, outcome.coupon.Code)
		}
		return domain.Order{}, err
	}
	order.ID = id

	// 尽力而为, 通知失败不影响已提交的订单
	s.relay.Notify(ctx, notification.Event{
		Name:    notification.EventNameOrderConfirmed,
		OrderSN: order.SN,
		Payload: map[string]any{
			"customerEmail": order.Customer.Email,
			"itemName":      order.ItemName,
			"quantity":      order.Quantity,
			"total":         order.Breakdown.Total,
		},
	})
	commitCounter.WithLabelValues("committed").Inc()
	if order.Breakdown.UsedFallbackRates {
		fallbackCommitCounter.Inc()
	}
	return order, nil
}

func (s *service) evaluate(ctx context.Context, req domain.QuoteRequest, uid int64) (quoteOutcome, error) {
	if req.Quantity < 1 {
		return quoteOutcome{}, ErrInvalidQuantity
	}
	variant, err := s.productSvc.FindVariantBySN(ctx, req.VariantSN)
	if err != nil {
		return quoteOutcome{}, fmt.Errorf("商品规格非法: %w", err)
	}
	if req.Quantity > variant.Stock {
		return quoteOutcome{}, fmt.Errorf("%w: 库存%d 需求%d",
			ErrInsufficientInventory, variant.Stock, req.Quantity)
	}
	subtotal := variant.Price * req.Quantity

	shippingQuote, err := s.shippingSvc.Quote(ctx, req.DestZip, variant.Size, req.Quantity)
	if err != nil {
		return quoteOutcome{}, err
	}
	option, ok := shippingQuote.SelectOption(req.ShippingServiceID)
	if !ok {
		return quoteOutcome{}, fmt.Errorf("%w: %s", ErrUnknownShippingService, req.ShippingServiceID)
	}
	// 折扣和税的基数都是 商品小计+运费
	base := subtotal + option.Cost

	var c coupon.Coupon
	var couponDiscount int64
	if req.CouponCode != "" {
		c, err = s.couponSvc.Validate(ctx, req.CouponCode)
		if err != nil {
			return quoteOutcome{}, err
		}
		couponDiscount = c.Discount(base)
	}

	var subscriberDiscount int64
	if uid > 0 {
		isSubscriber, serr := s.subscriptionSvc.IsSubscriber(ctx, uid)
		if serr != nil {
			// 查不到订阅状态按非订阅者计, 宁可少折不可错折
			s.logger.Warn("查询订阅状态失败", elog.FieldErr(serr), elog.Int64("uid", uid))
		} else if isSubscriber {
			subscriberDiscount = money.RateOf(subtotal, s.cfg.SubscriberDiscountBps)
		}
	}

	taxQuote, err := s.taxSvc.Estimate(ctx, base, req.DestZip, req.State)
	if err != nil {
		return quoteOutcome{}, err
	}

	totalDiscount := money.Clamp(couponDiscount+subscriberDiscount, base)
	breakdown := domain.Breakdown{
		Subtotal:           subtotal,
		Shipping:           option.Cost,
		Tax:                taxQuote.Amount,
		TaxRate:            taxQuote.Rate,
		TaxJurisdiction:    taxQuote.Jurisdiction,
		CouponDiscount:     couponDiscount,
		SubscriberDiscount: subscriberDiscount,
		TotalDiscount:      totalDiscount,
		Total:              base + taxQuote.Amount - totalDiscount,
		UsedFallbackRates:  shippingQuote.UsedFallback,
		Options: slice.Map(shippingQuote.Options, func(_ int, opt shipping.Option) domain.ShippingOption {
			return domain.ShippingOption{
				ServiceID: opt.ServiceID,
				Name:      opt.Name,
				Cost:      opt.Cost,
				ETA:       opt.ETA,
			}
		}),
	}
	return quoteOutcome{
		breakdown: breakdown,
		variant:   variant,
		coupon:    c,
		option:    option,
	}, nil
}

func (s *service) FindOrdersByUID(ctx context.Context, uid int64, offset, limit int) (int64, []domain.Order, error) {
	return s.repo.FindByUID(ctx, uid, offset, limit)
}

func (s *service) FindOrderByUIDAndSN(ctx context.Context, uid int64, sn string) (domain.Order, error) {
	return s.repo.FindByUIDAndSN(ctx, uid, sn)
}

func (s *service) ListOrders(ctx context.Context, offset, limit int) (int64, []domain.Order, error) {
	return s.repo.FindOrders(ctx, offset, limit)
}

func (s *service) UpdateOrderStatus(ctx context.Context, id int64, status domain.Status) error {
	return s.repo.UpdateStatus(ctx, id, status)
}

func absDiff(a, b int64) int64 {
	if a > b {
		return a - b
	}
	return b - a
}
