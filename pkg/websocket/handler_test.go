package websocket

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptionsApplyDefaults(t *testing.T) {
	var opts Options
	opts.applyDefaults()

	assert.Equal(t, 1024, opts.ReadBufferSize)
	assert.Equal(t, 1024, opts.WriteBufferSize)
	assert.Equal(t, 10*time.Second, opts.HandshakeTimeout)
	assert.Equal(t, 60*time.Second, opts.PongTimeout)
	assert.Equal(t, 54*time.Second, opts.PingInterval)

	custom := Options{PongTimeout: 30 * time.Second}
	custom.applyDefaults()
	assert.Equal(t, 27*time.Second, custom.PingInterval, "ping interval derives from pong timeout")
}

func TestOriginChecker(t *testing.T) {
	req := func(origin string) *http.Request {
		r, _ := http.NewRequest(http.MethodGet, "/ws", nil)
		r.Header.Set("Origin", origin)
		return r
	}

	anyOrigin := originChecker(nil)
	assert.True(t, anyOrigin(req("https://evil.example")))

	wildcard := originChecker([]string{"*"})
	assert.True(t, wildcard(req("https://evil.example")))

	strict := originChecker([]string{"https://dash.shopperks.io"})
	assert.True(t, strict(req("https://dash.shopperks.io")))
	assert.False(t, strict(req("https://evil.example")))
}
