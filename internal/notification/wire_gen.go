// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package notification

import (
	"github.com/ecodeclub/eshop/internal/notification/internal/event"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitModule(q mq.MQ) (*Module, error) {
	v, err := event.NewRelay(q)
	if err != nil {
		return nil, err
	}
	module := &Module{
		Relay: v,
	}
	return module, nil
}

func InitRelay(q mq.MQ) (Relay, error) {
	v, err := event.NewRelay(q)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// wire.go:

var RelaySet = wire.NewSet(event.NewRelay)
