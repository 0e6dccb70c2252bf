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

	"github.com/ecodeclub/eshop/internal/subscription/internal/domain"
	"github.com/ecodeclub/eshop/internal/subscription/internal/repository"
	"github.com/ecodeclub/eshop/internal/subscription/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/subscription")
	g.POST("/create", ginx.BS[CreateSubscriptionReq](h.CreateSubscription))
	g.POST("/cancel", ginx.BS[CancelSubscriptionReq](h.CancelSubscription))
	g.POST("/detail", ginx.BS[RetrieveSubscriptionReq](h.RetrieveSubscription))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// CreateSubscription 记录一个已在支付处理方开通的订阅。
// 续费扣款由处理方负责, 这里只维护权益状态
func (h *Handler) CreateSubscription(ctx *ginx.Context, req CreateSubscriptionReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx.Request.Context(), domain.Subscription{
		UID:          sess.Claims().Uid,
		ProcessorRef: req.ProcessorRef,
		PeriodStart:  req.PeriodStart,
		PeriodEnd:    req.PeriodEnd,
	})
	if err != nil {
		if errors.Is(err, service.ErrActiveSubscriptionExists) {
			return subscriptionExistsResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CreateSubscriptionResp{ID: id},
	}, nil
}

func (h *Handler) CancelSubscription(ctx *ginx.Context, _ CancelSubscriptionReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Cancel(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return subscriptionNotFoundResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) RetrieveSubscription(ctx *ginx.Context, _ RetrieveSubscriptionReq, sess session.Session) (ginx.Result, error) {
	sub, err := h.svc.FindByUID(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return subscriptionNotFoundResult, nil
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: SubscriptionVO{
			ID:           sub.ID,
			ProcessorRef: sub.ProcessorRef,
			Status:       sub.Status.ToUint8(),
			PeriodStart:  sub.PeriodStart,
			PeriodEnd:    sub.PeriodEnd,
		},
	}, nil
}
