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

	"github.com/ecodeclub/eshop/internal/tax/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate(t *testing.T) {
	t.Parallel()
	svc := NewService(Config{Nexus: map[string]int64{"NY": 450, "NJ": 663}})
	testCases := []struct {
		name    string
		taxable int64
		destZip string
		state   string
		want    domain.Quote
	}{
		{
			name:    "关联州按邮编计税",
			taxable: 2393,
			destZip: "10001",
			want:    domain.Quote{Amount: 108, Rate: 450, Jurisdiction: "NY"},
		},
		{
			name:    "显式州码优先于邮编",
			taxable: 2393,
			destZip: "10001",
			state:   "nj",
			want:    domain.Quote{Amount: 159, Rate: 663, Jurisdiction: "NJ"},
		},
		{
			name:    "无关联州零税额",
			taxable: 2393,
			destZip: "90001",
			want:    domain.Quote{Jurisdiction: "CA", Reason: "商户在该辖区无税务关联"},
		},
		{
			name:    "应税金额为零",
			taxable: 0,
			destZip: "10001",
			want:    domain.Quote{Rate: 450, Jurisdiction: "NY", Reason: "应税金额为零"},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			quote, err := svc.Estimate(context.Background(), tc.taxable, tc.destZip, tc.state)
			require.NoError(t, err)
			assert.Equal(t, tc.want, quote)
		})
	}
}

func TestEstimateUnresolvableDestination(t *testing.T) {
	t.Parallel()
	svc := NewService(Config{})
	_, err := svc.Estimate(context.Background(), 2393, "00099", "")
	assert.ErrorIs(t, err, ErrUnresolvableDestination)
}

func TestEstimateDefaultNexus(t *testing.T) {
	t.Parallel()
	// 未配置时默认只对NY征4.5%
	svc := NewService(Config{})
	quote, err := svc.Estimate(context.Background(), 2393, "10001", "")
	require.NoError(t, err)
	assert.Equal(t, domain.Quote{Amount: 108, Rate: 450, Jurisdiction: "NY"}, quote)
}
