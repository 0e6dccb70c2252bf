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
	"time"

	"github.com/ecodeclub/eshop/internal/subscription/internal/domain"
	"github.com/ecodeclub/eshop/internal/subscription/internal/repository"
)

var ErrActiveSubscriptionExists = repository.ErrActiveSubscriptionExists

//go:generate mockgen -source=./service.go -package=subscriptionmocks -destination=../../mocks/subscription.mock.go -typed Service
type Service interface {
	// IsSubscriber 用户当前是否享有订阅权益。
	// 没有订阅不是错误, 只返回false
	IsSubscriber(ctx context.Context, uid int64) (bool, error)
	Create(ctx context.Context, sub domain.Subscription) (int64, error)
	Cancel(ctx context.Context, uid int64) error
	FindByUID(ctx context.Context, uid int64) (domain.Subscription, error)
}

func NewService(repo repository.SubscriptionRepository) Service {
	return newServiceWithClock(repo, func() int64 {
		return time.Now().UnixMilli()
	})
}

func newServiceWithClock(repo repository.SubscriptionRepository, nowMilli func() int64) Service {
	return &service{repo: repo, nowMilli: nowMilli}
}

type service struct {
	repo     repository.SubscriptionRepository
	nowMilli func() int64
}

func (s *service) IsSubscriber(ctx context.Context, uid int64) (bool, error) {
	sub, err := s.repo.FindActiveByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return false, nil
		}
		return false, err
	}
	return sub.Entitled(s.nowMilli()), nil
}

func (s *service) Create(ctx context.Context, sub domain.Subscription) (int64, error) {
	return s.repo.CreateActive(ctx, sub)
}

func (s *service) Cancel(ctx context.Context, uid int64) error {
	return s.repo.CancelByUID(ctx, uid)
}

func (s *service) FindByUID(ctx context.Context, uid int64) (domain.Subscription, error) {
	return s.repo.FindActiveByUID(ctx, uid)
}
