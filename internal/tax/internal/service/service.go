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
	"fmt"
	"strings"

	"github.com/ecodeclub/eshop/internal/pkg/money"
	"github.com/ecodeclub/eshop/internal/pkg/zipcode"
	"github.com/ecodeclub/eshop/internal/tax/internal/domain"
)

// ErrUnresolvableDestination 既没有显式州码, 邮编也定位不到任何州。
var ErrUnresolvableDestination = errors.New("无法确定税务辖区")

//go:generate mockgen -source=./service.go -package=taxmocks -destination=../../mocks/tax.mock.go -typed Service
type Service interface {
	// Estimate 对应税金额计税。taxable 为商品小计加运费, 单位为分。
	// state 非空时优先于邮编推导出的州
	Estimate(ctx context.Context, taxable int64, destZip, state string) (domain.Quote, error)
}

type Config struct {
	// Nexus 州码到税率基点的映射, 只对有税务关联的州征税
	Nexus map[string]int64 `yaml:"nexus"`
}

func NewService(cfg Config) Service {
	nexus := cfg.Nexus
	if len(nexus) == 0 {
		nexus = map[string]int64{"NY": 450}
	}
	return &service{nexus: nexus}
}

type service struct {
	nexus map[string]int64
}

func (s *service) Estimate(_ context.Context, taxable int64, destZip, state string) (domain.Quote, error) {
	jurisdiction := strings.ToUpper(strings.TrimSpace(state))
	if jurisdiction == "" {
		var ok bool
		jurisdiction, ok = zipcode.StateOf(destZip)
		if !ok {
			return domain.Quote{}, fmt.Errorf("%w: %s", ErrUnresolvableDestination, destZip)
		}
	}

	rate, ok := s.nexus[jurisdiction]
	if !ok {
		return domain.Quote{
			Jurisdiction: jurisdiction,
			Reason:       "商户在该辖区无税务关联",
		}, nil
	}
	if taxable <= 0 {
		return domain.Quote{
			Rate:         rate,
			Jurisdiction: jurisdiction,
			Reason:       "应税金额为零",
		}, nil
	}
	return domain.Quote{
		Amount:       money.RateOf(taxable, rate),
		Rate:         rate,
		Jurisdiction: jurisdiction,
	}, nil
}
