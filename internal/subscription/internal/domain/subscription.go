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

package domain

type Status uint8

const (
	// StatusCancelled 已取消
	StatusCancelled Status = 1
	// StatusActive 生效中
	StatusActive Status = 2
)

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

type Subscription struct {
	ID  int64
	UID int64
	// ProcessorRef 支付处理方的订阅凭据
	ProcessorRef string
	Status       Status
	// 当前计费周期, 毫秒时间戳。PeriodEnd为0表示周期未知, 只看状态
	PeriodStart int64
	PeriodEnd   int64
}

// Entitled 是否享有订阅权益: 状态生效且当前周期未结束。
func (s Subscription) Entitled(nowMilli int64) bool {
	if s.Status != StatusActive {
		return false
	}
	return s.PeriodEnd == 0 || s.PeriodEnd >= nowMilli
}
