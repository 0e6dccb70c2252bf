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

package web

type CreateSubscriptionReq struct {
	ProcessorRef string `json:"processorRef"`
	PeriodStart  int64  `json:"periodStart"`
	PeriodEnd    int64  `json:"periodEnd"`
}

type CreateSubscriptionResp struct {
	ID int64 `json:"id"`
}

type CancelSubscriptionReq struct{}

type RetrieveSubscriptionReq struct{}

type SubscriptionVO struct {
	ID           int64  `json:"id"`
	ProcessorRef string `json:"processorRef"`
	Status       uint8  `json:"status"`
	PeriodStart  int64  `json:"periodStart"`
	PeriodEnd    int64  `json:"periodEnd"`
}
