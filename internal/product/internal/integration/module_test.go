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

//go:build e2e

package integration

import (
	"context"
	"testing"

	"github.com/ecodeclub/eshop/internal/product"
	testioc "github.com/ecodeclub/eshop/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

func TestProductModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

type ModuleTestSuite struct {
	suite.Suite
	db  *egorm.Component
	svc product.Service
}

func (s *ModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	m, err := product.InitModule(s.db)
	s.NoError(err)
	s.svc = m.Svc
}

func (s *ModuleTestSuite) TearDownSuite() {
	s.NoError(s.db.Exec("DROP TABLE `products`").Error)
	s.NoError(s.db.Exec("DROP TABLE `variants`").Error)
}

func (s *ModuleTestSuite) TearDownTest() {
	s.NoError(s.db.Exec("TRUNCATE TABLE `products`").Error)
	s.NoError(s.db.Exec("TRUNCATE TABLE `variants`").Error)
}

func (s *ModuleTestSuite) newHotSauce() product.Product {
	return product.Product{
		SN:     "PRD-HOT-SAUCE",
		Name:   "招牌辣酱",
		Desc:   "小批量手工酿造",
		Status: product.StatusOnShelf,
		Variants: []product.Variant{
			{SN: "VAR-SMALL", Name: "小瓶装", Size: "small", Price: 699, Stock: 100, Status: product.StatusOnShelf},
			{SN: "VAR-FAMILY", Name: "家庭装", Size: "family", Price: 1398, Stock: 10, Status: product.StatusOnShelf},
		},
	}
}

func (s *ModuleTestSuite) TestSaveAndRetrieveProduct() {
	ctx := context.Background()
	id, err := s.svc.SaveProduct(ctx, s.newHotSauce())
	s.NoError(err)
	s.True(id > 0)

	p, err := s.svc.FindProductBySN(ctx, "PRD-HOT-SAUCE")
	s.NoError(err)
	s.Equal("招牌辣酱", p.Name)
	s.Len(p.Variants, 2)

	v, err := s.svc.FindVariantBySN(ctx, "VAR-FAMILY")
	s.NoError(err)
	s.Equal(int64(1398), v.Price)
	s.Equal(int64(10), v.Stock)
	s.Equal("family", v.Size)

	v2, err := s.svc.FindVariantByID(ctx, v.ID)
	s.NoError(err)
	s.Equal(v.SN, v2.SN)
}

func (s *ModuleTestSuite) TestUnpublishHidesProduct() {
	ctx := context.Background()
	id, err := s.svc.SaveProduct(ctx, s.newHotSauce())
	s.NoError(err)

	s.NoError(s.svc.UnpublishProduct(ctx, id))
	_, err = s.svc.FindProductBySN(ctx, "PRD-HOT-SAUCE")
	s.ErrorIs(err, gorm.ErrRecordNotFound)

	// 规格不受商品状态影响, 由各自的状态控制
	_, err = s.svc.FindVariantBySN(ctx, "VAR-SMALL")
	s.NoError(err)

	s.NoError(s.svc.PublishProduct(ctx, id))
	_, err = s.svc.FindProductBySN(ctx, "PRD-HOT-SAUCE")
	s.NoError(err)
}

func (s *ModuleTestSuite) TestListProducts() {
	ctx := context.Background()
	p := s.newHotSauce()
	_, err := s.svc.SaveProduct(ctx, p)
	s.NoError(err)

	second := product.Product{SN: "PRD-MILD-SAUCE", Name: "温和辣酱", Status: product.StatusOnShelf}
	_, err = s.svc.SaveProduct(ctx, second)
	s.NoError(err)

	total, list, err := s.svc.ListProducts(ctx, 0, 10)
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(list, 2)
	// 按 id 倒序, 新品在前
	s.Equal("PRD-MILD-SAUCE", list[0].SN)
}
