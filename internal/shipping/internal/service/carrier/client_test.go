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

package carrier

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/eshop/internal/shipping/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate(t *testing.T) {
	t.Parallel()
	client := NewHTTPClientWith("http://gateway.local/rates", time.Second,
		func(req *http.Request) (*http.Response, error) {
			var body rateRequest
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, "11201", body.OriginZip)
			assert.Equal(t, "90001", body.DestZip)
			assert.Equal(t, int64(56), body.WeightOz)
			return &http.Response{
				StatusCode: http.StatusOK,
				Body: io.NopCloser(strings.NewReader(
					`{"rates":[{"serviceId":"ground","name":"陆运","cost":995,"eta":"5-7天"}]}`)),
			}, nil
		})

	options, err := client.Estimate(context.Background(), "11201", "90001",
		domain.Package{WeightOz: 56, Length: 12, Width: 10, Height: 6})
	require.NoError(t, err)
	assert.Equal(t, []domain.Option{
		{ServiceID: "ground", Name: "陆运", Cost: 995, ETA: "5-7天"},
	}, options)
}

func TestEstimateGatewayError(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		doFunc DoFunc
	}{
		{
			name: "网关不可达",
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return nil, context.DeadlineExceeded
			},
		},
		{
			name: "非200响应",
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusBadGateway,
					Body:       io.NopCloser(strings.NewReader("")),
				}, nil
			},
		},
		{
			name: "响应不可解析",
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(strings.NewReader("<html>")),
				}, nil
			},
		},
		{
			name: "空配送方式列表",
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(strings.NewReader(`{"rates":[]}`)),
				}, nil
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			client := NewHTTPClientWith("http://gateway.local/rates", time.Second, tc.doFunc)
			_, err := client.Estimate(context.Background(), "11201", "90001", domain.Package{})
			assert.Error(t, err)
		})
	}
}
