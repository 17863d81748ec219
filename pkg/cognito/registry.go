/*
Copyright 2025 Piotr Janik.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cognito

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Factory builds a Client for a configuration.
type Factory func(ctx context.Context, cfg Config) (*Client, error)

// Registry holds named clients plus a lazily built default one. It is safe
// for concurrent use.
//
// Removing a key only affects later lookups. Callers must make sure no call
// is still running on a client they remove.
type Registry struct {
	factory       Factory
	defaultConfig Config

	mu            sync.RWMutex
	clients       map[string]*Client
	defaultClient *Client
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithFactory replaces NewFromConfig as the way clients are built.
func WithFactory(f Factory) RegistryOption {
	return func(r *Registry) {
		r.factory = f
	}
}

// WithDefaultConfig sets the configuration of the default client.
func WithDefaultConfig(cfg Config) RegistryOption {
	return func(r *Registry) {
		r.defaultConfig = cfg
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		factory: func(ctx context.Context, cfg Config) (*Client, error) {
			return NewFromConfig(ctx, cfg)
		},
		clients: make(map[string]*Client),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Default returns the default client, building it on first use.
func (r *Registry) Default(ctx context.Context) (*Client, error) {
	r.mu.RLock()
	c := r.defaultClient
	r.mu.RUnlock()
	if c != nil {
		return c, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.defaultClient != nil {
		return r.defaultClient, nil
	}
	c, err := r.factory(ctx, r.defaultConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create default client: %w", err)
	}
	r.defaultClient = c
	return c, nil
}

// Register builds a client for cfg and stores it under key, replacing any
// client already stored there.
func (r *Registry) Register(ctx context.Context, key string, cfg Config) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("key cannot be empty")
	}
	c, err := r.factory(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create client %s: %w", key, err)
	}
	r.Set(key, c)
	return c, nil
}

// Set stores an already built client under key.
func (r *Registry) Set(key string, c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[key] = c
}

// Lookup returns the client stored under key. An unknown key is not an
// error: it reports false.
func (r *Registry) Lookup(key string) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.clients[key]
	return c, ok
}

// Remove drops the client stored under key.
func (r *Registry) Remove(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, key)
}

// Keys lists registered keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.clients))
	for k := range r.clients {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
