package attachment

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"
)

// --- Mocks ---

type mockHTTPClient struct {
	calls   int
	lastURL string
	data    []byte
	err     error
}

func (m *mockHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	m.calls++
	m.lastURL = url
	return m.data, m.err
}

type mockReader struct {
	objects map[string][]byte
}

func (m *mockReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	data, ok := m.objects[uri]
	if !ok {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

type mockCache struct {
	data map[string]interface{}
	ttl  time.Duration
}

func (m *mockCache) Get(key string) (interface{}, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *mockCache) Set(key string, value interface{}, d time.Duration) {
	if m.data == nil {
		m.data = make(map[string]interface{})
	}
	m.data[key] = value
	m.ttl = d
}
