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
	"strings"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrCouponNotFound = gorm.ErrRecordNotFound

type CouponDAO interface {
	FindByCode(ctx context.Context, code string) (Coupon, error)
	Save(ctx context.Context, c Coupon) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status uint8) error
	FindCoupons(ctx context.Context, offset, limit int) ([]Coupon, error)
	CountCoupons(ctx context.Context) (int64, error)
}

func NewCouponGORMDAO(db *egorm.Component) CouponDAO {
	return &couponGORMDAO{db: db}
}

type couponGORMDAO struct {
	db *egorm.Component
}

// FindByCode 兑换码统一转大写存储, 查询前同样归一化, 实现大小写不敏感匹配。
func (d *couponGORMDAO) FindByCode(ctx context.Context, code string) (Coupon, error) {
	var res Coupon
	err := d.db.WithContext(ctx).Where("code = ?", strings.ToUpper(code)).First(&res).Error
	return res, err
}

func (d *couponGORMDAO) Save(ctx context.Context, c Coupon) (int64, error) {
	now := time.Now().UnixMilli()
	c.Code = strings.ToUpper(c.Code)
	c.Ctime, c.Utime = now, now
	err := d.db.WithContext(ctx).Save(&c).Error
	return c.Id, err
}

func (d *couponGORMDAO) UpdateStatus(ctx context.Context, id int64, status uint8) error {
	return d.db.WithContext(ctx).Model(&Coupon{}).Where("id = ?", id).
		Updates(map[string]any{
			"Status": status,
			"Utime":  time.Now().UnixMilli(),
		}).Error
}

func (d *couponGORMDAO) FindCoupons(ctx context.Context, offset, limit int) ([]Coupon, error) {
	var res []Coupon
	err := d.db.WithContext(ctx).Offset(offset).Limit(limit).Order("id DESC").Find(&res).Error
	return res, err
}

func (d *couponGORMDAO) CountCoupons(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Coupon{}).Count(&res).Error
	return res, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Coupon{})
}

type Coupon struct {
	Id   int64  `gorm:"primaryKey;autoIncrement;comment:优惠券自增ID"`
	Code string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_coupon_code;comment:兑换码,统一大写存储"`
	Kind uint8  `gorm:"type:tinyint unsigned;not null;comment:折扣类型 1=百分比 2=固定金额"`
	// 百分比时为万分比(2500表示25%), 固定金额时单位为分
	Value      int64 `gorm:"not null;comment:折扣值"`
	Status     uint8 `gorm:"type:tinyint unsigned;not null;default:2;comment:状态 1=停用 2=启用"`
	UsageLimit int64 `gorm:"not null;default:-1;comment:使用上限,-1表示不限"`
	UsageCount int64 `gorm:"not null;default:0;comment:已使用次数,只能由已提交订单的事务加一"`
	ExpiresAt  int64 `gorm:"not null;default:0;comment:过期时间毫秒数,0表示永不过期"`
	Ctime      int64
	Utime      int64
}
