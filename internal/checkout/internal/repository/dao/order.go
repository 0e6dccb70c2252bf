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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound = gorm.ErrRecordNotFound
	// ErrDuplicatePaymentRef 同一个支付授权凭据只允许换一张订单
	ErrDuplicatePaymentRef = errors.New("支付凭据已被使用")
	// ErrInsufficientStock 库存守卫未通过, 整个事务回滚
	ErrInsufficientStock = errors.New("库存不足")
	// ErrCouponExhausted 使用次数守卫未通过, 整个事务回滚
	ErrCouponExhausted = errors.New("优惠券已用完")
)

type OrderDAO interface {
	// CommitOrder 在单个事务里落订单、扣库存、加优惠券使用次数。
	// couponID为0表示本单未用券
	CommitOrder(ctx context.Context, o Order, couponID int64) (int64, error)
	FindByUIDAndSN(ctx context.Context, uid int64, sn string) (Order, error)
	FindByUID(ctx context.Context, uid int64, offset, limit int) ([]Order, error)
	CountByUID(ctx context.Context, uid int64) (int64, error)
	FindOrders(ctx context.Context, offset, limit int) ([]Order, error)
	CountOrders(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status uint8) error
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &orderGORMDAO{db: db}
}

type orderGORMDAO struct {
	db *egorm.Component
}

func (d *orderGORMDAO) CommitOrder(ctx context.Context, o Order, couponID int64) (int64, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		o.Ctime, o.Utime = now, now
		if err := tx.Create(&o).Error; err != nil {
			if isUniqueIndexError(err) {
				return ErrDuplicatePaymentRef
			}
			return err
		}

		// 带条件扣减, 并发超卖靠 stock >= ? 守卫挡住
		res := tx.Exec(
			"UPDATE `variants` SET `stock` = `stock` - ?, `utime` = ? WHERE `id` = ? AND `stock` >= ?",
			o.Quantity, now, o.VariantId, o.Quantity)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientStock
		}

		if couponID > 0 {
			res = tx.Exec(
				"UPDATE `coupons` SET `usage_count` = `usage_count` + 1, `utime` = ? WHERE `id` = ? AND (`usage_limit` = -1 OR `usage_count` < `usage_limit`)",
				now, couponID)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return ErrCouponExhausted
			}
		}
		return nil
	})
	return o.Id, err
}

func isUniqueIndexError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

func (d *orderGORMDAO) FindByUIDAndSN(ctx context.Context, uid int64, sn string) (Order, error) {
	var res Order
	err := d.db.WithContext(ctx).Where("uid = ? AND sn = ?", uid, sn).First(&res).Error
	return res, err
}

func (d *orderGORMDAO) FindByUID(ctx context.Context, uid int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).Where("uid = ?", uid).
		Offset(offset).Limit(limit).Order("id DESC").Find(&res).Error
	return res, err
}

func (d *orderGORMDAO) CountByUID(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).Where("uid = ?", uid).Count(&res).Error
	return res, err
}

func (d *orderGORMDAO) FindOrders(ctx context.Context, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).Offset(offset).Limit(limit).Order("id DESC").Find(&res).Error
	return res, err
}

func (d *orderGORMDAO) CountOrders(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Order{}).Count(&res).Error
	return res, err
}

func (d *orderGORMDAO) UpdateStatus(ctx context.Context, id int64, status uint8) error {
	return d.db.WithContext(ctx).Model(&Order{}).Where("id = ?", id).
		Updates(map[string]any{
			"Status": status,
			"Utime":  time.Now().UnixMilli(),
		}).Error
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Order{})
}

// Order 订单快照。金额单位全部为分, 提交后不随商品价格变动
type Order struct {
	Id  int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	Sn  string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	Uid int64  `gorm:"not null;default:0;index:idx_uid;comment:买家ID,游客下单为0"`

	VariantId   int64  `gorm:"not null;comment:商品规格ID"`
	VariantSn   string `gorm:"type:varchar(64);not null;comment:商品规格序列号"`
	ItemName    string `gorm:"type:varchar(255);not null;comment:商品名快照"`
	Quantity    int64  `gorm:"not null;comment:数量"`
	UnitPrice   int64  `gorm:"not null;comment:下单时单价"`
	CouponId    int64  `gorm:"not null;default:0;comment:优惠券ID,0表示未用券"`
	CouponCode  string `gorm:"type:varchar(64);not null;default:'';comment:兑换码快照"`
	ShippingSvc string `gorm:"type:varchar(64);not null;comment:配送方式"`

	Subtotal           int64  `gorm:"not null;comment:商品小计"`
	Shipping           int64  `gorm:"not null;comment:运费"`
	Tax                int64  `gorm:"not null;comment:税额"`
	TaxRate            int64  `gorm:"not null;default:0;comment:税率基点"`
	TaxJurisdiction    string `gorm:"type:varchar(8);not null;default:'';comment:税务辖区"`
	CouponDiscount     int64  `gorm:"not null;default:0;comment:优惠券折扣"`
	SubscriberDiscount int64  `gorm:"not null;default:0;comment:订阅者折扣"`
	Total              int64  `gorm:"not null;comment:实付金额"`
	UsedFallbackRates  bool   `gorm:"not null;default:false;comment:运费是否来自兜底价目表"`

	AuthRef       string `gorm:"type:varchar(128);not null;uniqueIndex:uniq_payment_auth_ref;comment:支付授权凭据,一单一个"`
	CustomerName  string `gorm:"type:varchar(128);not null;comment:收件人"`
	CustomerEmail string `gorm:"type:varchar(128);not null;comment:邮箱"`
	CustomerPhone string `gorm:"type:varchar(32);not null;default:'';comment:电话"`
	AddrStreet    string `gorm:"type:varchar(255);not null;comment:街道"`
	AddrCity      string `gorm:"type:varchar(128);not null;comment:城市"`
	AddrState     string `gorm:"type:varchar(8);not null;comment:州"`
	AddrZip       string `gorm:"type:varchar(16);not null;comment:邮编"`
	Notes         string `gorm:"type:varchar(512);not null;default:'';comment:备注"`

	Status uint8 `gorm:"type:tinyint unsigned;not null;default:2;comment:状态 1=已取消 2=已完成 3=已发货"`
	Ctime  int64
	Utime  int64
}
