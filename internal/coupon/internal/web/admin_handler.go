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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/eshop/internal/coupon/internal/domain"
	"github.com/ecodeclub/eshop/internal/coupon/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/coupon")
	g.POST("/save", ginx.B[SaveCouponReq](h.SaveCoupon))
	g.POST("/disable", ginx.B[IDReq](h.DisableCoupon))
	g.POST("/list", ginx.B[ListCouponsReq](h.ListCoupons))
}

func (h *AdminHandler) SaveCoupon(ctx *ginx.Context, req SaveCouponReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx.Request.Context(), req.Coupon.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SaveCouponResp{ID: id},
	}, nil
}

func (h *AdminHandler) DisableCoupon(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.svc.Disable(ctx.Request.Context(), req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) ListCoupons(ctx *ginx.Context, req ListCouponsReq) (ginx.Result, error) {
	total, coupons, err := h.svc.ListCoupons(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListCouponsResp{
			Total: total,
			Coupons: slice.Map(coupons, func(idx int, src domain.Coupon) Coupon {
				return newCoupon(src)
			}),
		},
	}, nil
}
