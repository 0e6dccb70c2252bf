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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=./mocks/relay.mock.go -typed Relay
type Relay interface {
	// Notify 尽力而为地投递事件。投递失败只记日志,
	// 绝不反过来影响触发它的业务流程
	Notify(ctx context.Context, evt Event)
}

type relay struct {
	producer mq.Producer
	logger   *elog.Component
}

func NewRelay(q mq.MQ) (Relay, error) {
	p, err := q.Producer(notificationEventName)
	if err != nil {
		return nil, err
	}
	return &relay{
		producer: p,
		logger:   elog.DefaultLogger,
	}, nil
}

func (r *relay) Notify(ctx context.Context, evt Event) {
	if err := r.produce(ctx, evt); err != nil {
		r.logger.Error("投递通知事件失败",
			elog.FieldErr(err),
			elog.String("name", evt.Name),
			elog.String("orderSN", evt.OrderSN))
	}
}

func (r *relay) produce(ctx context.Context, evt Event) error {
	data, err := json.Marshal(&evt)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	_, err = r.producer.Produce(ctx, &mq.Message{
		Value: data,
	})
	return err
}
