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
	"testing"

	"github.com/ecodeclub/eshop/internal/subscription/internal/domain"
	"github.com/ecodeclub/eshop/internal/subscription/internal/repository"
	"github.com/ecodeclub/eshop/internal/subscription/internal/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscriptionRepository struct {
	subs   map[int64]domain.Subscription
	nextID int64
}

func newFakeSubscriptionRepository() *fakeSubscriptionRepository {
	return &fakeSubscriptionRepository{subs: make(map[int64]domain.Subscription), nextID: 1}
}

func (f *fakeSubscriptionRepository) CreateActive(_ context.Context, sub domain.Subscription) (int64, error) {
	if existing, ok := f.subs[sub.UID]; ok && existing.Status == domain.StatusActive {
		return 0, repository.ErrActiveSubscriptionExists
	}
	sub.ID = f.nextID
	f.nextID++
	sub.Status = domain.StatusActive
	f.subs[sub.UID] = sub
	return sub.ID, nil
}

func (f *fakeSubscriptionRepository) FindActiveByUID(_ context.Context, uid int64) (domain.Subscription, error) {
	sub, ok := f.subs[uid]
	if !ok || sub.Status != domain.StatusActive {
		return domain.Subscription{}, dao.ErrSubscriptionNotFound
	}
	return sub, nil
}

func (f *fakeSubscriptionRepository) CancelByUID(_ context.Context, uid int64) error {
	sub, ok := f.subs[uid]
	if !ok || sub.Status != domain.StatusActive {
		return dao.ErrSubscriptionNotFound
	}
	sub.Status = domain.StatusCancelled
	f.subs[uid] = sub
	return nil
}

const nowMilli = int64(1_700_000_000_000)

func newTestService(repo repository.SubscriptionRepository) Service {
	return newServiceWithClock(repo, func() int64 {
		return nowMilli
	})
}

func TestIsSubscriber(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		sub  *domain.Subscription
		want bool
	}{
		{
			name: "无订阅",
			want: false,
		},
		{
			name: "生效中且周期未结束",
			sub: &domain.Subscription{
				UID: 7, ProcessorRef: "sub_abc",
				PeriodStart: nowMilli - 1000, PeriodEnd: nowMilli + 1000,
			},
			want: true,
		},
		{
			name: "生效中但周期已过",
			sub: &domain.Subscription{
				UID: 7, ProcessorRef: "sub_abc",
				PeriodStart: nowMilli - 2000, PeriodEnd: nowMilli - 1000,
			},
			want: false,
		},
		{
			name: "周期未知只看状态",
			sub:  &domain.Subscription{UID: 7, ProcessorRef: "sub_abc"},
			want: true,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			repo := newFakeSubscriptionRepository()
			svc := newTestService(repo)
			if tc.sub != nil {
				_, err := svc.Create(context.Background(), *tc.sub)
				require.NoError(t, err)
			}
			got, err := svc.IsSubscriber(context.Background(), 7)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCreateDuplicateActive(t *testing.T) {
	t.Parallel()
	repo := newFakeSubscriptionRepository()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), domain.Subscription{UID: 7, ProcessorRef: "sub_a"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), domain.Subscription{UID: 7, ProcessorRef: "sub_b"})
	assert.ErrorIs(t, err, ErrActiveSubscriptionExists)
}

func TestCancelThenResubscribe(t *testing.T) {
	t.Parallel()
	repo := newFakeSubscriptionRepository()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), domain.Subscription{UID: 7, ProcessorRef: "sub_a"})
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(context.Background(), 7))

	got, err := svc.IsSubscriber(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, got)

	// 取消后可以重新订阅
	_, err = svc.Create(context.Background(), domain.Subscription{UID: 7, ProcessorRef: "sub_b"})
	require.NoError(t, err)
	got, err = svc.IsSubscriber(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, got)
}
