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

import (
	"github.com/ecodeclub/eshop/internal/checkout/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	couponInvalidResult = ginx.Result{
		Code: errs.CouponInvalid.Code,
		Msg:  errs.CouponInvalid.Msg,
	}
	insufficientInventoryResult = ginx.Result{
		Code: errs.InsufficientInventory.Code,
		Msg:  errs.InsufficientInventory.Msg,
	}
	unserviceableDestResult = ginx.Result{
		Code: errs.UnserviceableDest.Code,
		Msg:  errs.UnserviceableDest.Msg,
	}
	totalMismatchResult = ginx.Result{
		Code: errs.TotalMismatch.Code,
		Msg:  errs.TotalMismatch.Msg,
	}
	duplicatePaymentRefResult = ginx.Result{
		Code: errs.DuplicatePaymentRef.Code,
		Msg:  errs.DuplicatePaymentRef.Msg,
	}
	paymentVerifyFailedResult = ginx.Result{
		Code: errs.PaymentVerifyFailed.Code,
		Msg:  errs.PaymentVerifyFailed.Msg,
	}
	orderNotFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	unknownShippingServiceResult = ginx.Result{
		Code: errs.UnknownShippingService.Code,
		Msg:  errs.UnknownShippingService.Msg,
	}
)
