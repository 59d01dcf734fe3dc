// Package network provides the shared HTTP client for remote lookups.
package network

import (
	"net/http"
	"time"
)

// Client is the singleton HTTP client shared across the application.
// Update checks run on a kiosk's often flaky network, so timeouts are
// kept short enough not to stall startup.
var Client = &http.Client{
	Timeout:   time.Second * 15,
	Transport: newTransport(),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 10 * time.Second
	return t
}
