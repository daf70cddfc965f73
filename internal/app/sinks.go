package app

import (
	"context"

	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/domain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/broker"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/external/chain"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/feed"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/logger"
	"github.com/AniekanabasiUmoh/pontiff-protocol-sub002/internal/infrastructure/search"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// InitFeedHub creates the websocket feed and runs it for the app lifetime
func (a *application) InitFeedHub(lc fx.Lifecycle, log *logger.Logger) *feed.Hub {
	hub := feed.NewHub(log)
	ctx, cancel := context.WithCancel(a.ctx)
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go hub.Run(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
	return hub
}

// InitEventSinks builds every enabled settlement sink; the live feed is always on
func (a *application) InitEventSinks(lc fx.Lifecycle, hub *feed.Hub, log *logger.Logger) ([]domain.EventSink, error) {
	sinks := []domain.EventSink{hub}

	if a.config.Chain.Enabled {
		sinks = append(sinks, chain.NewNotifier(chain.Config{
			URL:      a.config.Chain.URL,
			APIKey:   a.config.Chain.APIKey,
			Timeout:  a.config.Chain.Timeout,
			RetryMax: a.config.Chain.RetryMax,
		}, log))
	}

	if a.config.RabbitMQ.Enabled {
		publisher := broker.NewPublisher(a.config.RabbitMQ.Exchange,
			broker.AMQPDialer(a.config.RabbitMQ.URL, a.config.RabbitMQ.Exchange), log)
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return publisher.Close()
			},
		})
		sinks = append(sinks, publisher)
	}

	if a.config.Elasticsearch.Enabled {
		indexer, err := search.NewIndexer(a.ctx, search.Config{
			Addresses: a.config.Elasticsearch.Addresses,
			Username:  a.config.Elasticsearch.Username,
			Password:  a.config.Elasticsearch.Password,
			Index:     a.config.Elasticsearch.Index,
		}, log)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, indexer)
	}

	names := make([]string, 0, len(sinks))
	for _, s := range sinks {
		names = append(names, s.Name())
	}
	log.Info("Settlement sinks configured", zap.Strings("sinks", names))
	return sinks, nil
}
