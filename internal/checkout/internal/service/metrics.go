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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	quoteCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkout_quote_total",
		Help: "成功报价次数",
	})

	commitCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_commit_total",
		Help: "按结果统计的订单提交次数",
	}, []string{"result"})

	fallbackCommitCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkout_commit_fallback_rates_total",
		Help: "使用兜底运费价目表成交的订单数",
	})
)
