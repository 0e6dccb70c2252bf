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
	"github.com/ecodeclub/eshop/internal/subscription/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	subscriptionExistsResult = ginx.Result{
		Code: errs.SubscriptionAlreadyExists.Code,
		Msg:  errs.SubscriptionAlreadyExists.Msg,
	}
	subscriptionNotFoundResult = ginx.Result{
		Code: errs.SubscriptionNotFound.Code,
		Msg:  errs.SubscriptionNotFound.Msg,
	}
)
