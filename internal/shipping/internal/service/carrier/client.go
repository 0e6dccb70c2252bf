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
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ecodeclub/eshop/internal/shipping/internal/domain"
	"github.com/pkg/errors"
)

//go:generate mockgen -source=./client.go -package=carriermocks -destination=./mocks/client.mock.go -typed Client
type Client interface {
	// Estimate 向承运商网关实时询价, 返回具名配送方式列表
	Estimate(ctx context.Context, originZip, destZip string, pkg domain.Package) ([]domain.Option, error)
}

type DoFunc func(req *http.Request) (*http.Response, error)

type httpClient struct {
	rateURL string
	timeout time.Duration
	doFunc  DoFunc
}

func NewHTTPClient(rateURL string, timeout time.Duration) Client {
	return NewHTTPClientWith(rateURL, timeout, (&http.Client{Timeout: timeout}).Do)
}

func NewHTTPClientWith(rateURL string, timeout time.Duration, doFunc DoFunc) Client {
	return &httpClient{
		rateURL: rateURL,
		timeout: timeout,
		doFunc:  doFunc,
	}
}

type rateRequest struct {
	OriginZip string `json:"originZip"`
	DestZip   string `json:"destZip"`
	WeightOz  int64  `json:"weightOz"`
	Length    int64  `json:"length"`
	Width     int64  `json:"width"`
	Height    int64  `json:"height"`
}

type rateResponse struct {
	Rates []struct {
		ServiceID string `json:"serviceId"`
		Name      string `json:"name"`
		Cost      int64  `json:"cost"`
		ETA       string `json:"eta"`
	} `json:"rates"`
}

func (c *httpClient) Estimate(ctx context.Context, originZip, destZip string, pkg domain.Package) ([]domain.Option, error) {
	data, err := json.Marshal(rateRequest{
		OriginZip: originZip,
		DestZip:   destZip,
		WeightOz:  pkg.WeightOz,
		Length:    pkg.Length,
		Width:     pkg.Width,
		Height:    pkg.Height,
	})
	if err != nil {
		return nil, errors.Wrap(err, "序列化询价请求失败")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rateURL, bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "构造询价请求失败")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.doFunc(req)
	if err != nil {
		return nil, errors.Wrap(err, "承运商网关不可达")
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("承运商网关响应异常: %d", resp.StatusCode)
	}

	var res rateResponse
	if err = json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, errors.Wrap(err, "解析询价响应失败")
	}
	if len(res.Rates) == 0 {
		return nil, errors.New("承运商未返回任何配送方式")
	}
	options := make([]domain.Option, 0, len(res.Rates))
	for _, r := range res.Rates {
		options = append(options, domain.Option{
			ServiceID: r.ServiceID,
			Name:      r.Name,
			Cost:      r.Cost,
			ETA:       r.ETA,
		})
	}
	return options, nil
}
