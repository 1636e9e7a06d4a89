package redis_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/surgishop-scanner/internal/domain/entity"
	"github.com/jhoicas/surgishop-scanner/internal/infrastructure/redis"
)

const channel = "surgishop:cache-invalidate"

func newConfig(mr *miniredis.Miniredis) redis.Config {
	return redis.Config{Addr: mr.Addr(), Channel: channel}
}

// ──────────────────────────────────────────────────────────────────────────────
// Conexión
// ──────────────────────────────────────────────────────────────────────────────

func TestNewClient_ConectaConPing(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := redis.NewClient(context.Background(), newConfig(mr))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
}

func TestNewClient_ServidorCaido(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := redis.NewClient(context.Background(), redis.Config{Addr: addr})
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Publicación y suscripción
// ──────────────────────────────────────────────────────────────────────────────

func TestSubscriber_EjecutaManejadorDelDoctype(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := redis.NewClient(ctx, newConfig(mr))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	var settingsHits, otherHits atomic.Int32
	sub := redis.NewSubscriber(client, channel, zerolog.Nop())
	sub.Handle(entity.SettingsDocType, func() { settingsHits.Add(1) })
	sub.Handle("Otro", func() { otherHits.Add(1) })

	ready := make(chan struct{})
	done := make(chan error, 1)
	go func() { done <- sub.Run(ctx, ready) }()

	select {
	case <-ready:
	case <-time.After(2 * time.Second):
		t.Fatal("la suscripción no quedó activa")
	}

	pub := redis.NewPublisher(client, channel)
	require.NoError(t, pub.Publish(ctx, entity.SettingsDocType))
	require.NoError(t, pub.Publish(ctx, "Sin manejador"))

	assert.Eventually(t, func() bool { return settingsHits.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(0), otherHits.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run no terminó al cancelar el contexto")
	}
}
