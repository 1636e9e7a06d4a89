// Package redis propaga invalidaciones de caché entre procesos mediante pub/sub de Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jhoicas/surgishop-scanner/internal/application/ports"
)

// Config conexión y canal de invalidación.
type Config struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

// NewClient abre el cliente y verifica la conexión con PING.
func NewClient(ctx context.Context, cfg Config) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// Publisher implementa ports.CacheInvalidator publicando el doctype modificado.
type Publisher struct {
	client  *goredis.Client
	channel string
}

var _ ports.CacheInvalidator = (*Publisher)(nil)

// NewPublisher construye el publicador sobre un cliente existente.
func NewPublisher(client *goredis.Client, channel string) *Publisher {
	return &Publisher{client: client, channel: channel}
}

// Publish envía el doctype por el canal de invalidación.
func (p *Publisher) Publish(ctx context.Context, docType string) error {
	if err := p.client.Publish(ctx, p.channel, docType).Err(); err != nil {
		return fmt.Errorf("publicar invalidación %q: %w", docType, err)
	}
	return nil
}

// Subscriber escucha el canal y ejecuta el manejador registrado para cada doctype.
type Subscriber struct {
	client  *goredis.Client
	channel string
	log     zerolog.Logger

	mu       sync.RWMutex
	handlers map[string]func()
}

// NewSubscriber construye el suscriptor; los manejadores se agregan con Handle.
func NewSubscriber(client *goredis.Client, channel string, log zerolog.Logger) *Subscriber {
	return &Subscriber{
		client:   client,
		channel:  channel,
		log:      log,
		handlers: make(map[string]func()),
	}
}

// Handle registra fn para los mensajes con el doctype indicado.
func (s *Subscriber) Handle(docType string, fn func()) {
	s.mu.Lock()
	s.handlers[docType] = fn
	s.mu.Unlock()
}

// Run bloquea hasta que ctx se cancela. ready (opcional) se cierra cuando la suscripción está activa.
func (s *Subscriber) Run(ctx context.Context, ready chan<- struct{}) error {
	pubsub := s.client.Subscribe(ctx, s.channel)
	defer pubsub.Close()

	// Receive confirma la suscripción antes de consumir mensajes.
	if _, err := pubsub.Receive(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("suscribirse a %s: %w", s.channel, err)
	}
	if ready != nil {
		close(ready)
	}
	s.log.Info().Str("channel", s.channel).Msg("suscrito a invalidaciones de caché")

	msgs := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			s.dispatch(msg.Payload)
		}
	}
}

func (s *Subscriber) dispatch(docType string) {
	s.mu.RLock()
	fn, ok := s.handlers[docType]
	s.mu.RUnlock()
	if !ok {
		s.log.Debug().Str("doctype", docType).Msg("invalidación sin manejador")
		return
	}
	s.log.Debug().Str("doctype", docType).Msg("invalidación recibida")
	fn()
}
