package http

import (
	"sync"
	"time"
)

const (
	staleClientThreshold = 1 * time.Hour
	sweepInterval        = 30 * time.Minute
)

type clientWindow struct {
	count       int
	windowStart time.Time
	lastSeen    time.Time
}

// RateLimiter limita solicitudes por cliente con ventanas fijas: hasta
// `capacity` solicitudes por `window`, contadas desde la primera solicitud
// de cada ventana.
type RateLimiter struct {
	mu        sync.Mutex
	capacity  int
	window    time.Duration
	clients   map[string]*clientWindow
	stopSweep chan struct{}
}

func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity:  capacity,
		window:    window,
		clients:   make(map[string]*clientWindow),
		stopSweep: make(chan struct{}),
	}
	go rl.sweepLoop()
	return rl
}

func (r *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep()
		case <-r.stopSweep:
			return
		}
	}
}

// sweep descarta clientes inactivos para que el mapa no crezca sin límite.
func (r *RateLimiter) sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for ip, cw := range r.clients {
		if now.Sub(cw.lastSeen) > staleClientThreshold {
			delete(r.clients, ip)
		}
	}
}

func (r *RateLimiter) Stop() {
	close(r.stopSweep)
}

func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	cw, exists := r.clients[ip]

	if !exists {
		r.clients[ip] = &clientWindow{
			count:       1,
			windowStart: now,
			lastSeen:    now,
		}
		return true
	}

	cw.lastSeen = now

	if now.Sub(cw.windowStart) >= r.window {
		cw.count = 0
		cw.windowStart = now
	}

	if cw.count >= r.capacity {
		return false
	}

	cw.count++
	return true
}
