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
	"github.com/ecodeclub/eshop/internal/checkout/internal/domain"
	"github.com/ecodeclub/eshop/internal/checkout/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

// AdminHandler 后台订单管理。只改履约状态, 永远不碰金额
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/list", ginx.B[ListOrdersReq](h.ListOrders))
	g.POST("/status", ginx.B[UpdateOrderStatusReq](h.UpdateOrderStatus))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) ListOrders(ctx *ginx.Context, req ListOrdersReq) (ginx.Result, error) {
	total, orders, err := h.svc.ListOrders(ctx.Request.Context(), req.Offset, req.Limit)
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

func (h *AdminHandler) UpdateOrderStatus(ctx *ginx.Context, req UpdateOrderStatusReq) (ginx.Result, error) {
	err := h.svc.UpdateOrderStatus(ctx.Request.Context(), req.ID, domain.Status(req.Status))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
