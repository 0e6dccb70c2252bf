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

package zipcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateOf(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		zip       string
		wantState string
		wantOK    bool
	}{
		{name: "纽约布鲁克林", zip: "11201", wantState: "NY", wantOK: true},
		{name: "加州洛杉矶", zip: "90001", wantState: "CA", wantOK: true},
		{name: "阿拉斯加", zip: "99501", wantState: "AK", wantOK: true},
		{name: "夏威夷", zip: "96815", wantState: "HI", wantOK: true},
		{name: "波多黎各", zip: "00901", wantState: "PR", wantOK: true},
		{name: "带扩展段的邮编", zip: "10001-1234", wantState: "NY", wantOK: true},
		{name: "号段空洞", zip: "00099", wantState: "", wantOK: false},
		{name: "太短", zip: "123", wantState: "", wantOK: false},
		{name: "非数字", zip: "ABCDE", wantState: "", wantOK: false},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			state, ok := StateOf(tc.zip)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantState, state)
		})
	}
}

func TestIsDomestic(t *testing.T) {
	t.Parallel()
	assert.True(t, IsDomestic("NY"))
	assert.True(t, IsDomestic("GU"))
	assert.False(t, IsDomestic("ON"))
	assert.False(t, IsDomestic(""))
}
