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

package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateOf(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		amount int64
		bps    int64
		want   int64
	}{
		{
			// 23.93元按25%打折, 598.25分四舍五入为598分
			name:   "百分比折扣_四舍",
			amount: 2393,
			bps:    2500,
			want:   598,
		},
		{
			// 23.93元按4.5%计税, 107.685分四舍五入为108分
			name:   "税率_五入",
			amount: 2393,
			bps:    450,
			want:   108,
		},
		{
			name:   "订阅折扣10%",
			amount: 1398,
			bps:    1000,
			want:   140,
		},
		{
			name:   "恰好半分进位",
			amount: 10,
			bps:    500,
			want:   1,
		},
		{
			name:   "零金额",
			amount: 0,
			bps:    2500,
			want:   0,
		},
		{
			name:   "零比例",
			amount: 1000,
			bps:    0,
			want:   0,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, RateOf(tc.amount, tc.bps))
		})
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()
	assert.Equal(t, int64(0), Clamp(-1, 100))
	assert.Equal(t, int64(100), Clamp(250, 100))
	assert.Equal(t, int64(99), Clamp(99, 100))
}

func TestMin(t *testing.T) {
	t.Parallel()
	assert.Equal(t, int64(500), Min(500, 1398))
	assert.Equal(t, int64(1398), Min(2000, 1398))
}
