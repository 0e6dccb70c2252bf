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

	"github.com/ecodeclub/eshop/internal/product/internal/domain"
	"github.com/ecodeclub/eshop/internal/product/internal/repository"
)

//go:generate mockgen -source=./service.go -package=productmocks -destination=../../mocks/product.mock.go -typed Service
type Service interface {
	// FindVariantBySN 只返回上架状态的规格, 价格与库存为当前值
	FindVariantBySN(ctx context.Context, sn string) (domain.Variant, error)
	FindVariantByID(ctx context.Context, id int64) (domain.Variant, error)
	FindProductBySN(ctx context.Context, sn string) (domain.Product, error)
	SaveProduct(ctx context.Context, product domain.Product) (int64, error)
	PublishProduct(ctx context.Context, id int64) error
	UnpublishProduct(ctx context.Context, id int64) error
	ListProducts(ctx context.Context, offset, limit int) (int64, []domain.Product, error)
}

func NewService(repo repository.ProductRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.ProductRepository
}

func (s *service) FindVariantBySN(ctx context.Context, sn string) (domain.Variant, error) {
	return s.repo.FindVariantBySN(ctx, sn)
}

func (s *service) FindVariantByID(ctx context.Context, id int64) (domain.Variant, error) {
	return s.repo.FindVariantByID(ctx, id)
}

func (s *service) FindProductBySN(ctx context.Context, sn string) (domain.Product, error) {
	return s.repo.FindProductBySN(ctx, sn)
}

func (s *service) SaveProduct(ctx context.Context, product domain.Product) (int64, error) {
	return s.repo.SaveProduct(ctx, product)
}

func (s *service) PublishProduct(ctx context.Context, id int64) error {
	return s.repo.UpdateProductStatus(ctx, id, domain.StatusOnShelf)
}

func (s *service) UnpublishProduct(ctx context.Context, id int64) error {
	return s.repo.UpdateProductStatus(ctx, id, domain.StatusOffShelf)
}

func (s *service) ListProducts(ctx context.Context, offset, limit int) (int64, []domain.Product, error) {
	return s.repo.FindProducts(ctx, offset, limit)
}
