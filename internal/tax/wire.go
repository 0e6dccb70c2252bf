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

package tax

import (
	"github.com/ecodeclub/eshop/internal/tax/internal/service"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

var ServiceSet = wire.NewSet(
	initConfig,
	service.NewService)

func InitModule() (*Module, error) {
	wire.Build(
		ServiceSet,
		wire.Struct(new(Module), "*"))
	return new(Module), nil
}

func InitService() Service {
	wire.Build(ServiceSet)
	return nil
}

func initConfig() service.Config {
	var cfg service.Config
	err := econf.UnmarshalKey("tax", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}
