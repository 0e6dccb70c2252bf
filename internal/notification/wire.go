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

//go:build wireinject

package notification

import (
	"github.com/ecodeclub/eshop/internal/notification/internal/event"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
)

var RelaySet = wire.NewSet(event.NewRelay)

func InitModule(q mq.MQ) (*Module, error) {
	wire.Build(
		RelaySet,
		wire.Struct(new(Module), "*"))
	return new(Module), nil
}

func InitRelay(q mq.MQ) (Relay, error) {
	wire.Build(RelaySet)
	return nil, nil
}
