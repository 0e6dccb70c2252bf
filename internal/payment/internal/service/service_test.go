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
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapturedAmount(t *testing.T) {
	t.Parallel()
	svc := NewHTTPServiceWith("http://processor.local/verify", time.Second,
		func(req *http.Request) (*http.Response, error) {
			var body verifyRequest
			require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, "auth_abc123", body.AuthRef)
			return &http.Response{
				StatusCode: http.StatusOK,
				Body: io.NopCloser(strings.NewReader(
					`{"status":"authorized","amount":1903}`)),
			}, nil
		})

	amount, err := svc.CapturedAmount(context.Background(), "auth_abc123")
	require.NoError(t, err)
	assert.Equal(t, int64(1903), amount)
}

func TestCapturedAmountErrors(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		doFunc  DoFunc
		wantErr error
	}{
		{
			name: "凭据不存在",
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusNotFound,
					Body:       io.NopCloser(strings.NewReader("")),
				}, nil
			},
			wantErr: ErrAuthorizationNotFound,
		},
		{
			name: "授权已撤销",
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusOK,
					Body: io.NopCloser(strings.NewReader(
						`{"status":"voided","amount":1903}`)),
				}, nil
			},
			wantErr: ErrAuthorizationNotFound,
		},
		{
			name: "处理方不可达",
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return nil, context.DeadlineExceeded
			},
			wantErr: ErrProcessorUnavailable,
		},
		{
			name: "处理方5xx",
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusServiceUnavailable,
					Body:       io.NopCloser(strings.NewReader("")),
				}, nil
			},
			wantErr: ErrProcessorUnavailable,
		},
		{
			name: "响应不可解析",
			doFunc: func(_ *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(strings.NewReader("<html>")),
				}, nil
			},
			wantErr: ErrProcessorUnavailable,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc := NewHTTPServiceWith("http://processor.local/verify", time.Second, tc.doFunc)
			_, err := svc.CapturedAmount(context.Background(), "auth_abc123")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
