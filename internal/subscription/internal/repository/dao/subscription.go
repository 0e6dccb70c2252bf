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
	"gorm.io/gorm"
)

var (
	ErrSubscriptionNotFound = gorm.ErrRecordNotFound
	// ErrActiveSubscriptionExists 同一用户同时最多只能有一个生效中的订阅
	ErrActiveSubscriptionExists = errors.New("用户已存在生效中的订阅")
)

const (
	statusCancelled = 1
	statusActive    = 2
)

type SubscriptionDAO interface {
	CreateActive(ctx context.Context, sub Subscription) (int64, error)
	FindActiveByUID(ctx context.Context, uid int64) (Subscription, error)
	CancelByUID(ctx context.Context, uid int64) error
}

func NewSubscriptionGORMDAO(db *egorm.Component) SubscriptionDAO {
	return &subscriptionGORMDAO{db: db}
}

type subscriptionGORMDAO struct {
	db *egorm.Component
}

// CreateActive 先查后插放在同一事务里, 保证至多一个生效中订阅。
func (d *subscriptionGORMDAO) CreateActive(ctx context.Context, sub Subscription) (int64, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&Subscription{}).
			Where("uid = ? AND status = ?", sub.Uid, statusActive).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrActiveSubscriptionExists
		}
		now := time.Now().UnixMilli()
		sub.Status = statusActive
		sub.Ctime, sub.Utime = now, now
		return tx.Create(&sub).Error
	})
	return sub.Id, err
}

func (d *subscriptionGORMDAO) FindActiveByUID(ctx context.Context, uid int64) (Subscription, error) {
	var res Subscription
	err := d.db.WithContext(ctx).
		Where("uid = ? AND status = ?", uid, statusActive).
		First(&res).Error
	return res, err
}

func (d *subscriptionGORMDAO) CancelByUID(ctx context.Context, uid int64) error {
	res := d.db.WithContext(ctx).Model(&Subscription{}).
		Where("uid = ? AND status = ?", uid, statusActive).
		Updates(map[string]any{
			"Status": statusCancelled,
			"Utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Subscription{})
}

type Subscription struct {
	Id           int64  `gorm:"primaryKey;autoIncrement;comment:订阅自增ID"`
	Uid          int64  `gorm:"not null;index:idx_uid;comment:用户ID"`
	ProcessorRef string `gorm:"type:varchar(128);not null;comment:支付处理方的订阅凭据"`
	Status       uint8  `gorm:"type:tinyint unsigned;not null;default:2;comment:状态 1=已取消 2=生效中"`
	PeriodStart  int64  `gorm:"not null;default:0;comment:当前周期开始毫秒数"`
	PeriodEnd    int64  `gorm:"not null;default:0;comment:当前周期结束毫秒数,0表示未知"`
	Ctime        int64
	Utime        int64
}
