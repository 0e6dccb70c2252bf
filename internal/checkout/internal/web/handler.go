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

package web

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/checkout/internal/domain"
	"github.com/ecodeclub/eshop/internal/checkout/internal/service"
	"github.com/ecodeclub/eshop/internal/coupon"
	"github.com/ecodeclub/eshop/internal/payment"
	"github.com/ecodeclub/eshop/internal/shipping"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc   service.Service
	cache ecache.Cache
}

func NewHandler(svc service.Service, cache ecache.Cache) *Handler {
	return &Handler{svc: svc, cache: cache}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	checkout := server.Group("/checkout")
	checkout.POST("/quote", ginx.BS[QuoteReq](h.Quote))
	checkout.POST("/commit", ginx.BS[CommitReq](h.Commit))
	order := server.Group("/order")
	order.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	order.POST("/detail", ginx.BS[RetrieveOrderDetailReq](h.RetrieveOrderDetail))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// Quote 报价。只读, 不占库存不占券
func (h *Handler) Quote(ctx *ginx.Context, req QuoteReq, sess session.Session) (ginx.Result, error) {
	breakdown, err := h.svc.Quote(ctx.Request.Context(), toQuoteRequest(req), sess.Claims().Uid)
	if err != nil {
		return h.quoteErrorResult(err)
	}
	return ginx.Result{
		Data: toBreakdownVO(breakdown),
	}, nil
}

// Commit 提交订单。requestId用于挡住客户端重试造成的重复提交,
// 支付凭据唯一索引兜底
func (h *Handler) Commit(ctx *ginx.Context, req CommitReq, sess session.Session) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return invalidInputResult, fmt.Errorf("请求ID错误: %w", err)
	}
	order, err := h.svc.Commit(ctx.Request.Context(), domain.CommitRequest{
		QuoteRequest:   toQuoteRequest(req.QuoteReq),
		AuthRef:        req.AuthRef,
		CapturedAmount: req.CapturedAmount,
		Customer: domain.Customer{
			Name:  req.Customer.Name,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
		},
		Address: domain.Address{
			Street: req.Address.Street,
			City:   req.Address.City,
			State:  req.Address.State,
			Zip:    req.Address.Zip,
		},
		Notes: req.Notes,
	}, sess.Claims().Uid)
	if err != nil {
		return h.commitErrorResult(err)
	}
	return ginx.Result{
		Data: CommitResp{
			OrderSN:   order.SN,
			Status:    order.Status.ToUint8(),
			Breakdown: toBreakdownVO(order.Breakdown),
		},
	}, nil
}

func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	total, orders, err := h.svc.FindOrdersByUID(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(_ int, o domain.Order) OrderVO {
				return toOrderVO(o)
			}),
		},
	}, nil
}

func (h *Handler) RetrieveOrderDetail(ctx *ginx.Context, req RetrieveOrderDetailReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrderByUIDAndSN(ctx.Request.Context(), sess.Claims().Uid, req.SN)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return orderNotFoundResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: toOrderVO(order),
	}, nil
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}
	key := fmt.Sprintf("checkout:commit:%s", requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return fmt.Errorf("重复请求")
	}
	if err := h.cache.Set(ctx, key, requestID, 0); err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	return nil
}

func (h *Handler) quoteErrorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrInvalidQuantity):
		return invalidInputResult, nil
	case errors.Is(err, service.ErrInsufficientInventory):
		return insufficientInventoryResult, nil
	case errors.Is(err, shipping.ErrUnserviceableDestination):
		return unserviceableDestResult, nil
	case errors.Is(err, service.ErrUnknownShippingService):
		return unknownShippingServiceResult, nil
	case errors.Is(err, coupon.ErrCouponInvalid):
		return couponInvalidResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) commitErrorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrMissingAuthRef):
		return invalidInputResult, nil
	case errors.Is(err, service.ErrTotalMismatch):
		return totalMismatchResult, nil
	case errors.Is(err, service.ErrDuplicatePaymentRef):
		return duplicatePaymentRefResult, nil
	case errors.Is(err, payment.ErrAuthorizationNotFound):
		return paymentVerifyFailedResult, nil
	case errors.Is(err, payment.ErrProcessorUnavailable):
		return systemErrorResult, err
	default:
		return h.quoteErrorResult(err)
	}
}

func toQuoteRequest(req QuoteReq) domain.QuoteRequest {
	return domain.QuoteRequest{
		VariantSN:         req.VariantSN,
		Quantity:          req.Quantity,
		DestZip:           req.DestZip,
		State:             req.State,
		CouponCode:        req.CouponCode,
		ShippingServiceID: req.ShippingServiceID,
	}
}

func toBreakdownVO(b domain.Breakdown) BreakdownVO {
	return BreakdownVO{
		Subtotal:           b.Subtotal,
		Shipping:           b.Shipping,
		Tax:                b.Tax,
		TaxRate:            b.TaxRate,
		TaxJurisdiction:    b.TaxJurisdiction,
		CouponDiscount:     b.CouponDiscount,
		SubscriberDiscount: b.SubscriberDiscount,
		TotalDiscount:      b.TotalDiscount,
		Total:              b.Total,
		UsedFallbackRates:  b.UsedFallbackRates,
		Options: slice.Map(b.Options, func(_ int, opt domain.ShippingOption) ShippingOptionVO {
			return ShippingOptionVO{
				ServiceID: opt.ServiceID,
				Name:      opt.Name,
				Cost:      opt.Cost,
				ETA:       opt.ETA,
			}
		}),
	}
}

func toOrderVO(o domain.Order) OrderVO {
	return OrderVO{
		SN:          o.SN,
		ItemName:    o.ItemName,
		VariantSN:   o.VariantSN,
		Quantity:    o.Quantity,
		UnitPrice:   o.UnitPrice,
		CouponCode:  o.CouponCode,
		ShippingSvc: o.ShippingSvc,
		Breakdown:   toBreakdownVO(o.Breakdown),
		Customer: CustomerVO{
			Name:  o.Customer.Name,
			Email: o.Customer.Email,
			Phone: o.Customer.Phone,
		},
		Address: AddressVO{
			Street: o.Address.Street,
			City:   o.Address.City,
			State:  o.Address.State,
			Zip:    o.Address.Zip,
		},
		Notes:  o.Notes,
		Status: o.Status.ToUint8(),
		Ctime:  o.Ctime,
	}
}
