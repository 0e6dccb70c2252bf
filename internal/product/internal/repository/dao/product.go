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

package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/eshop/internal/product/internal/domain"
	"github.com/ego-component/egorm"
)

type ProductDAO interface {
	FindProductByID(ctx context.Context, id int64) (Product, error)
	FindProductBySN(ctx context.Context, sn string) (Product, error)
	FindVariantBySN(ctx context.Context, sn string) (Variant, error)
	FindVariantByID(ctx context.Context, id int64) (Variant, error)
	FindVariantsByProductID(ctx context.Context, productID int64) ([]Variant, error)
	SaveProduct(ctx context.Context, product Product, variants []Variant) (int64, error)
	UpdateProductStatus(ctx context.Context, id int64, status uint8) error
	FindProducts(ctx context.Context, offset, limit int) ([]Product, error)
	CountProducts(ctx context.Context) (int64, error)
}

func NewProductGORMDAO(db *egorm.Component) ProductDAO {
	return &productGORMDAO{db: db}
}

type productGORMDAO struct {
	db *egorm.Component
}

func (d *productGORMDAO) FindProductByID(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).Where("id = ? AND status = ?", id, domain.StatusOnShelf.ToUint8()).First(&res).Error
	return res, err
}

func (d *productGORMDAO) FindProductBySN(ctx context.Context, sn string) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).Where("sn = ? AND status = ?", sn, domain.StatusOnShelf.ToUint8()).First(&res).Error
	return res, err
}

func (d *productGORMDAO) FindVariantBySN(ctx context.Context, sn string) (Variant, error) {
	var res Variant
	err := d.db.WithContext(ctx).Where("sn = ? AND status = ?", sn, domain.StatusOnShelf.ToUint8()).First(&res).Error
	return res, err
}

func (d *productGORMDAO) FindVariantByID(ctx context.Context, id int64) (Variant, error) {
	var res Variant
	err := d.db.WithContext(ctx).Where("id = ? AND status = ?", id, domain.StatusOnShelf.ToUint8()).First(&res).Error
	return res, err
}

func (d *productGORMDAO) FindVariantsByProductID(ctx context.Context, productID int64) ([]Variant, error) {
	var res []Variant
	err := d.db.WithContext(ctx).Where("product_id = ? AND status = ?", productID, domain.StatusOnShelf.ToUint8()).
		Order("ctime ASC").
		Find(&res).Error
	return res, err
}

// SaveProduct 保存商品及其全部规格, 同一事务内完成。
func (d *productGORMDAO) SaveProduct(ctx context.Context, product Product, variants []Variant) (int64, error) {
	now := time.Now().UnixMilli()
	err := d.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		product.Ctime, product.Utime = now, now
		if err := tx.Save(&product).Error; err != nil {
			return err
		}
		for i := range variants {
			variants[i].ProductID = product.Id
			variants[i].Ctime, variants[i].Utime = now, now
			if err := tx.Save(&variants[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return product.Id, err
}

func (d *productGORMDAO) UpdateProductStatus(ctx context.Context, id int64, status uint8) error {
	return d.db.WithContext(ctx).Model(&Product{}).Where("id = ?", id).
		Updates(map[string]any{
			"Status": status,
			"Utime":  time.Now().UnixMilli(),
		}).Error
}

func (d *productGORMDAO) FindProducts(ctx context.Context, offset, limit int) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).Offset(offset).Limit(limit).Order("id DESC").Find(&res).Error
	return res, err
}

func (d *productGORMDAO) CountProducts(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Product{}).Count(&res).Error
	return res, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Product{}, &Variant{})
}

type Product struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	SN          string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_product_sn;comment:商品序列号"`
	Name        string `gorm:"type:varchar(255);not null;comment:商品名称"`
	Description string `gorm:"not null;comment:商品描述"`
	Status      uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=下架 2=上架"`
	Ctime       int64
	Utime       int64
}

type Variant struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:规格自增ID"`
	SN        string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_variant_sn;comment:规格序列号"`
	ProductID int64  `gorm:"column:product_id;not null;index:idx_product_id;comment:商品自增ID"`
	Name      string `gorm:"type:varchar(255);not null;comment:规格名称"`
	Size      string `gorm:"type:varchar(64);not null;comment:尺寸标签,配送模块据此推算包裹"`
	Price     int64  `gorm:"not null;comment:单价;单位为分, 999表示9.99元"`
	Stock     int64  `gorm:"not null;comment:库存数量,只能由已提交订单的事务扣减"`
	Status    uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:状态 1=下架 2=上架"`
	Ctime     int64
	Utime     int64
}
