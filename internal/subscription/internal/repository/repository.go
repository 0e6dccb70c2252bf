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

	"github.com/ecodeclub/eshop/internal/subscription/internal/domain"
	"github.com/ecodeclub/eshop/internal/subscription/internal/repository/dao"
)

var (
	ErrSubscriptionNotFound     = dao.ErrSubscriptionNotFound
	ErrActiveSubscriptionExists = dao.ErrActiveSubscriptionExists
)

type SubscriptionRepository interface {
	CreateActive(ctx context.Context, sub domain.Subscription) (int64, error)
	FindActiveByUID(ctx context.Context, uid int64) (domain.Subscription, error)
	CancelByUID(ctx context.Context, uid int64) error
}

func NewSubscriptionRepository(d dao.SubscriptionDAO) SubscriptionRepository {
	return &subscriptionRepository{dao: d}
}

type subscriptionRepository struct {
	dao dao.SubscriptionDAO
}

func (r *subscriptionRepository) CreateActive(ctx context.Context, sub domain.Subscription) (int64, error) {
	return r.dao.CreateActive(ctx, r.toEntity(sub))
}

func (r *subscriptionRepository) FindActiveByUID(ctx context.Context, uid int64) (domain.Subscription, error) {
	sub, err := r.dao.FindActiveByUID(ctx, uid)
	if err != nil {
		return domain.Subscription{}, err
	}
	return r.toDomain(sub), nil
}

func (r *subscriptionRepository) CancelByUID(ctx context.Context, uid int64) error {
	return r.dao.CancelByUID(ctx, uid)
}

func (r *subscriptionRepository) toEntity(sub domain.Subscription) dao.Subscription {
	return dao.Subscription{
		Id:           sub.ID,
		Uid:          sub.UID,
		ProcessorRef: sub.ProcessorRef,
		Status:       sub.Status.ToUint8(),
		PeriodStart:  sub.PeriodStart,
		PeriodEnd:    sub.PeriodEnd,
	}
}

func (r *subscriptionRepository) toDomain(sub dao.Subscription) domain.Subscription {
	return domain.Subscription{
		ID:           sub.Id,
		UID:          sub.Uid,
		ProcessorRef: sub.ProcessorRef,
		Status:       domain.Status(sub.Status),
		PeriodStart:  sub.PeriodStart,
		PeriodEnd:    sub.PeriodEnd,
	}
}
