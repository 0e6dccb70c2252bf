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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/eshop/internal/product/internal/domain"
	"github.com/ecodeclub/eshop/internal/product/internal/repository/dao"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

type ProductRepository interface {
	FindProductBySN(ctx context.Context, sn string) (domain.Product, error)
	FindVariantBySN(ctx context.Context, sn string) (domain.Variant, error)
	FindVariantByID(ctx context.Context, id int64) (domain.Variant, error)
	SaveProduct(ctx context.Context, product domain.Product) (int64, error)
	UpdateProductStatus(ctx context.Context, id int64, status domain.Status) error
	FindProducts(ctx context.Context, offset, limit int) (int64, []domain.Product, error)
}

func NewProductRepository(d dao.ProductDAO) ProductRepository {
	return &productRepository{dao: d}
}

type productRepository struct {
	dao dao.ProductDAO
}

func (p *productRepository) FindProductBySN(ctx context.Context, sn string) (domain.Product, error) {
	product, err := p.dao.FindProductBySN(ctx, sn)
	if err != nil {
		return domain.Product{}, err
	}
	variants, err := p.dao.FindVariantsByProductID(ctx, product.Id)
	if err != nil {
		return domain.Product{}, err
	}
	return p.toDomainProduct(product, variants), nil
}

func (p *productRepository) FindVariantBySN(ctx context.Context, sn string) (domain.Variant, error) {
	variant, err := p.dao.FindVariantBySN(ctx, sn)
	if err != nil {
		return domain.Variant{}, err
	}
	return p.toDomainVariant(variant), nil
}

func (p *productRepository) FindVariantByID(ctx context.Context, id int64) (domain.Variant, error) {
	variant, err := p.dao.FindVariantByID(ctx, id)
	if err != nil {
		return domain.Variant{}, err
	}
	return p.toDomainVariant(variant), nil
}

func (p *productRepository) SaveProduct(ctx context.Context, product domain.Product) (int64, error) {
	entity, variants := p.toEntity(product)
	return p.dao.SaveProduct(ctx, entity, variants)
}

func (p *productRepository) UpdateProductStatus(ctx context.Context, id int64, status domain.Status) error {
	return p.dao.UpdateProductStatus(ctx, id, status.ToUint8())
}

func (p *productRepository) FindProducts(ctx context.Context, offset, limit int) (int64, []domain.Product, error) {
	var (
		eg       errgroup.Group
		products []dao.Product
		total    int64
	)
	eg.Go(func() error {
		var err error
		products, err = p.dao.FindProducts(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = p.dao.CountProducts(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return 0, nil, err
	}
	return total, slice.Map(products, func(idx int, src dao.Product) domain.Product {
		return p.toDomainProduct(src, nil)
	}), nil
}

func (p *productRepository) toDomainProduct(product dao.Product, variants []dao.Variant) domain.Product {
	return domain.Product{
		ID:     product.Id,
		SN:     product.SN,
		Name:   product.Name,
		Desc:   product.Description,
		Status: domain.Status(product.Status),
		Variants: slice.Map(variants, func(idx int, src dao.Variant) domain.Variant {
			return p.toDomainVariant(src)
		}),
	}
}

func (p *productRepository) toDomainVariant(v dao.Variant) domain.Variant {
	return domain.Variant{
		ID:        v.Id,
		ProductID: v.ProductID,
		SN:        v.SN,
		Name:      v.Name,
		Size:      v.Size,
		Price:     v.Price,
		Stock:     v.Stock,
		Status:    domain.Status(v.Status),
	}
}

func (p *productRepository) toEntity(product domain.Product) (dao.Product, []dao.Variant) {
	entity := dao.Product{
		Id:          product.ID,
		SN:          product.SN,
		Name:        product.Name,
		Description: product.Desc,
		Status:      product.Status.ToUint8(),
	}
	if entity.SN == "" {
		entity.SN = shortuuid.New()
	}
	variants := slice.Map(product.Variants, func(idx int, src domain.Variant) dao.Variant {
		v := dao.Variant{
			Id:        src.ID,
			SN:        src.SN,
			ProductID: src.ProductID,
			Name:      src.Name,
			Size:      src.Size,
			Price:     src.Price,
			Stock:     src.Stock,
			Status:    src.Status.ToUint8(),
		}
		if v.SN == "" {
			v.SN = shortuuid.New()
		}
		return v
	})
	return entity, variants
}
