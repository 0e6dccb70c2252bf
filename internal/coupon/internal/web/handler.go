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
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/eshop/internal/coupon/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/coupon")
	g.POST("/validate", ginx.B[ValidateCouponReq](h.ValidateCoupon))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

// ValidateCoupon 只做校验和试算, 不增加使用次数。
// 折扣基数由调用方传入, 与结算模块口径一致(商品小计+运费)。
func (h *Handler) ValidateCoupon(ctx *ginx.Context, req ValidateCouponReq) (ginx.Result, error) {
	c, err := h.svc.Validate(ctx.Request.Context(), req.Code)
	if err != nil {
		if errors.Is(err, service.ErrCouponInvalid) {
			return couponInvalidResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ValidateCouponResp{
			Code:     c.Code,
			Discount: c.Discount(req.Base),
		},
	}, nil
}
