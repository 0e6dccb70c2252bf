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

package errs

var (
	SystemError            = ErrorCode{Code: 605001, Msg: "系统错误"}
	InvalidInput           = ErrorCode{Code: 605002, Msg: "参数非法"}
	CouponInvalid          = ErrorCode{Code: 605003, Msg: "优惠券不可用"}
	InsufficientInventory  = ErrorCode{Code: 605004, Msg: "库存不足"}
	UnserviceableDest      = ErrorCode{Code: 605005, Msg: "目的地不支持配送"}
	TotalMismatch          = ErrorCode{Code: 605006, Msg: "订单金额与支付金额不一致"}
	DuplicatePaymentRef    = ErrorCode{Code: 605007, Msg: "支付凭据已被使用"}
	PaymentVerifyFailed    = ErrorCode{Code: 605008, Msg: "支付核验失败"}
	OrderNotFound          = ErrorCode{Code: 605009, Msg: "订单不存在"}
	UnknownShippingService = ErrorCode{Code: 605010, Msg: "配送方式不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
