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

package event

const notificationEventName = "notification_events"

// EventNameOrderConfirmed 订单提交成功。
const EventNameOrderConfirmed = "order_confirmed"

// Event 发给下游通知渠道(邮件等)的事件, 各渠道自行消费。
type Event struct {
	Name    string         `json:"name"`
	OrderSN string         `json:"orderSN"`
	Payload map[string]any `json:"payload"`
}
