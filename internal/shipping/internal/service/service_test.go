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
	"testing"
	"time"

	"github.com/ecodeclub/eshop/internal/shipping/internal/domain"
	"github.com/ecodeclub/eshop/internal/shipping/internal/repository/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCarrierClient struct {
	options []domain.Option
	err     error
	calls   int
}

func (f *fakeCarrierClient) Estimate(_ context.Context, _, _ string, _ domain.Package) ([]domain.Option, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	res := make([]domain.Option, len(f.options))
	copy(res, f.options)
	return res, nil
}

func newTestService(client *fakeCarrierClient) Service {
	return NewService(
		Config{OriginZip: "11201"},
		client,
		cache.NewQuoteCache(10*time.Minute, 64))
}

func TestQuoteLiveRates(t *testing.T) {
	t.Parallel()
	client := &fakeCarrierClient{options: []domain.Option{
		{ServiceID: "ground", Name: "陆运", Cost: 995, ETA: "5-7天"},
	}}
	svc := newTestService(client)

	quote, err := svc.Quote(context.Background(), "90001", "medium", 2)
	require.NoError(t, err)
	assert.False(t, quote.UsedFallback)
	assert.Equal(t, "CA", quote.DestState)
	require.Len(t, quote.Options, 2)
	// 自提选项永远免费且排在首位
	assert.Equal(t, domain.PickupServiceID, quote.Options[0].ServiceID)
	assert.Equal(t, int64(0), quote.Options[0].Cost)
	assert.Equal(t, int64(995), quote.Options[1].Cost)
}

func TestQuoteCacheHit(t *testing.T) {
	t.Parallel()
	client := &fakeCarrierClient{options: []domain.Option{
		{ServiceID: "ground", Name: "陆运", Cost: 995},
	}}
	svc := newTestService(client)

	first, err := svc.Quote(context.Background(), "90001", "medium", 2)
	require.NoError(t, err)
	second, err := svc.Quote(context.Background(), "90001", "medium", 2)
	require.NoError(t, err)
	// 命中缓存不再询价, 且结果与未命中完全一致
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, first, second)

	// 输入元组不同则重新询价
	_, err = svc.Quote(context.Background(), "90001", "medium", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, client.calls)
}

func TestQuoteFallback(t *testing.T) {
	t.Parallel()
	client := &fakeCarrierClient{err: errors.New("网关超时")}
	svc := newTestService(client)

	quote, err := svc.Quote(context.Background(), "90001", "medium", 1)
	require.NoError(t, err)
	assert.True(t, quote.UsedFallback)
	require.Len(t, quote.Options, 4)
	assert.Equal(t, domain.PickupServiceID, quote.Options[0].ServiceID)
	assert.Equal(t, int64(995), quote.Options[1].Cost)

	// 兜底结果不写缓存, 恢复后下一次询价走实时价
	client.err = nil
	client.options = []domain.Option{{ServiceID: "ground", Name: "陆运", Cost: 1095}}
	quote, err = svc.Quote(context.Background(), "90001", "medium", 1)
	require.NoError(t, err)
	assert.False(t, quote.UsedFallback)
	assert.Equal(t, int64(1095), quote.Options[1].Cost)
}

func TestQuoteRemoteSurcharge(t *testing.T) {
	t.Parallel()
	client := &fakeCarrierClient{options: []domain.Option{
		{ServiceID: "ground", Name: "陆运", Cost: 995},
	}}
	svc := newTestService(client)

	quote, err := svc.Quote(context.Background(), "99501", "medium", 1)
	require.NoError(t, err)
	assert.Equal(t, "AK", quote.DestState)
	// 附加费只加在承运商选项上, 自提不受影响
	assert.Equal(t, int64(0), quote.Options[0].Cost)
	assert.Equal(t, int64(995+1500), quote.Options[1].Cost)
}

func TestQuoteUnserviceableDestination(t *testing.T) {
	t.Parallel()
	svc := newTestService(&fakeCarrierClient{})
	testCases := []struct {
		name string
		zip  string
	}{
		{name: "号段空洞", zip: "00099"},
		{name: "非法邮编", zip: "ABCDE"},
		{name: "太短", zip: "123"},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.Quote(context.Background(), tc.zip, "medium", 1)
			assert.ErrorIs(t, err, ErrUnserviceableDestination)
		})
	}
}

func TestBuildPackage(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		size     string
		quantity int64
		want     domain.Package
	}{
		{
			name:     "单件小箱",
			size:     "small",
			quantity: 1,
			want:     domain.Package{WeightOz: 24, Length: 10, Width: 8, Height: 4},
		},
		{
			name:     "两件中箱",
			size:     "medium",
			quantity: 2,
			want:     domain.Package{WeightOz: 56, Length: 12, Width: 10, Height: 6},
		},
		{
			name:     "三件及以上大箱",
			size:     "large",
			quantity: 5,
			want:     domain.Package{WeightOz: 208, Length: 16, Width: 12, Height: 8},
		},
		{
			name:     "未知尺寸按中等计",
			size:     "jumbo",
			quantity: 1,
			want:     domain.Package{WeightOz: 32, Length: 10, Width: 8, Height: 4},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, buildPackage(tc.size, tc.quantity))
		})
	}
}

func TestSelectOption(t *testing.T) {
	t.Parallel()
	quote := domain.Quote{Options: []domain.Option{
		{ServiceID: domain.PickupServiceID, Cost: 0},
		{ServiceID: "ground", Cost: 995},
	}}

	opt, ok := quote.SelectOption("")
	assert.True(t, ok)
	assert.Equal(t, domain.PickupServiceID, opt.ServiceID)

	opt, ok = quote.SelectOption("ground")
	assert.True(t, ok)
	assert.Equal(t, int64(995), opt.Cost)

	_, ok = quote.SelectOption("drone")
	assert.False(t, ok)
}
