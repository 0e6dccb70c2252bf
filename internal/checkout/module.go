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

package checkout

import (
	"github.com/ecodeclub/eshop/internal/checkout/internal/domain"
	"github.com/ecodeclub/eshop/internal/checkout/internal/service"
	"github.com/ecodeclub/eshop/internal/checkout/internal/web"
)

type (
	Handler        = web.Handler
	AdminHandler   = web.AdminHandler
	Service        = service.Service
	Config         = service.Config
	QuoteRequest   = domain.QuoteRequest
	CommitRequest  = domain.CommitRequest
	Breakdown      = domain.Breakdown
	Order          = domain.Order
	Status         = domain.Status
	Customer       = domain.Customer
	Address        = domain.Address
	ShippingOption = domain.ShippingOption
)

const (
	StatusCancelled = domain.StatusCancelled
	StatusCompleted = domain.StatusCompleted
	StatusShipped   = domain.StatusShipped
)

var (
	ErrInvalidQuantity        = service.ErrInvalidQuantity
	ErrUnknownShippingService = service.ErrUnknownShippingService
	ErrMissingAuthRef         = service.ErrMissingAuthRef
	ErrTotalMismatch          = service.ErrTotalMismatch
	ErrInsufficientInventory  = service.ErrInsufficientInventory
	ErrDuplicatePaymentRef    = service.ErrDuplicatePaymentRef
	ErrOrderNotFound          = service.ErrOrderNotFound
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
}
