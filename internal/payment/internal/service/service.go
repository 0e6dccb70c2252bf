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
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrAuthorizationNotFound 处理方明确答复凭据不存在或不可用, 重试没有意义
	ErrAuthorizationNotFound = errors.New("支付授权凭据无效")
	// ErrProcessorUnavailable 处理方暂时联系不上, 属可重试的系统故障
	ErrProcessorUnavailable = errors.New("支付处理方不可达")
)

//go:generate mockgen -source=./service.go -package=paymentmocks -destination=../../mocks/payment.mock.go -typed Service
type Service interface {
	// CapturedAmount 向支付处理方查询授权凭据实际扣款的金额, 单位为分。
	// 订单金额必须与该金额核对一致后才允许落库
	CapturedAmount(ctx context.Context, authRef string) (int64, error)
}

type DoFunc func(req *http.Request) (*http.Response, error)

func NewHTTPService(verifyURL string, timeout time.Duration) Service {
	return NewHTTPServiceWith(verifyURL, timeout, (&http.Client{Timeout: timeout}).Do)
}

func NewHTTPServiceWith(verifyURL string, timeout time.Duration, doFunc DoFunc) Service {
	return &httpService{
		verifyURL: verifyURL,
		timeout:   timeout,
		doFunc:    doFunc,
	}
}

type httpService struct {
	verifyURL string
	timeout   time.Duration
	doFunc    DoFunc
}

type verifyRequest struct {
	AuthRef string `json:"authRef"`
}

type verifyResponse struct {
	Status string `json:"status"`
	Amount int64  `json:"amount"`
}

const statusAuthorized = "authorized"

func (s *httpService) CapturedAmount(ctx context.Context, authRef string) (int64, error) {
	data, err := json.Marshal(verifyRequest{AuthRef: authRef})
	if err != nil {
		return 0, errors.Wrap(err, "序列化核验请求失败")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.verifyURL, bytes.NewReader(data))
	if err != nil {
		return 0, errors.Wrap(err, "构造核验请求失败")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.doFunc(req)
	if err != nil {
		return 0, errors.Wrapf(ErrProcessorUnavailable, "%v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return 0, errors.WithMessagef(ErrAuthorizationNotFound, "authRef=%s", authRef)
	case resp.StatusCode != http.StatusOK:
		return 0, errors.Wrapf(ErrProcessorUnavailable, "处理方响应异常: %d", resp.StatusCode)
	}

	var res verifyResponse
	if err = json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return 0, errors.Wrap(ErrProcessorUnavailable, "解析核验响应失败")
	}
	// 已撤销或已过期的授权是处理方的明确答复, 不是系统故障
	if res.Status != statusAuthorized {
		return 0, errors.WithMessagef(ErrAuthorizationNotFound, "authRef=%s status=%s", authRef, res.Status)
	}
	return res.Amount, nil
}
