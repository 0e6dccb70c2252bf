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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/eshop/internal/product/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 管理后台的商品维护接口
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/product")
	g.POST("/save", ginx.B[SaveReq](h.SaveProduct))
	g.POST("/publish", ginx.B[IDReq](h.PublishProduct))
	g.POST("/unpublish", ginx.B[IDReq](h.UnpublishProduct))
}

func (h *AdminHandler) SaveProduct(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, err := h.svc.SaveProduct(ctx.Request.Context(), req.Product.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SaveResp{ID: id},
	}, nil
}

func (h *AdminHandler) PublishProduct(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.svc.PublishProduct(ctx.Request.Context(), req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) UnpublishProduct(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.svc.UnpublishProduct(ctx.Request.Context(), req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
