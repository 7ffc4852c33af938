/*
 * Copyright 2025 The Go-Spring Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package scope implements the container's scope/context model (spec.md
// §4.7): one long-lived or request-bounded instance cache per scope tag,
// each guaranteeing at most one creation per bean key.
//
// There is no teacher equivalent of this package (go-spring has a single
// ambient singleton cache, not a tagged scope model), so its shape is
// grounded on the pattern in
// _examples/deep-rent-nexus/di/di.go's Singleton/Scoped resolvers: a
// context.Context-carried cache key for request-bounded state, and a
// sync.Once/sync.Map pair for exactly-once creation.
package scope

import (
	"context"
	"fmt"
	"sync"
)

// Tag names one of the five scopes a bean can be declared in.
type Tag string

const (
	// Application is process-lifetime: one instance for the life of the
	// container.
	Application Tag = "application"
	// Session lives as long as an externally-managed session id.
	Session Tag = "session"
	// Conversation lives between an explicit Begin and End.
	Conversation Tag = "conversation"
	// Request lives as long as a single inbound request.
	Request Tag = "request"
	// Dependent has no cache: every lookup creates a fresh instance, tied
	// to the CreationalContext of whatever triggered the creation.
	Dependent Tag = "dependent"
)

// ContextNotActive is returned when Get is called against a scope
// that has not been activated (Request/Session not yet activated, or a
// Conversation id that was never Begin'd, or any scope already torn down).
type ContextNotActive struct {
	Tag Tag
	ID  string
}

func (e *ContextNotActive) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("scope error: %s context is not active", e.Tag)
	}
	return fmt.Sprintf("scope error: %s context %q is not active", e.Tag, e.ID)
}

// CircularDependency is raised when resolving a bean's dependency graph
// revisits a bean already in the process of being created on the same
// resolution path.
type CircularDependency struct {
	Path []string
}

func (e *CircularDependency) Error() string {
	s := "circular dependency detected:"
	for i, id := range e.Path {
		if i > 0 {
			s += " ->"
		}
		s += " " + id
	}
	return s
}

// Create builds a bean instance. Destroy tears one down. Both are supplied
// by the caller (the Instantiator, C9) at Get time, since only it knows how
// to invoke a particular bean's constructor/destroy hook.
type Create func() (interface{}, error)
type Destroy func(instance interface{}) error

// entry is the exactly-once cache slot for a single bean key within a
// scope. The sync.Once guarantees the bean's Create runs at most once even
// under concurrent Get calls racing for the same key.
type entry struct {
	once     sync.Once
	instance interface{}
	err      error
	destroy  Destroy
}

func (e *entry) get(create Create, destroy Destroy) (interface{}, error) {
	e.once.Do(func() {
		e.instance, e.err = create()
		e.destroy = destroy
	})
	return e.instance, e.err
}

// cache is a sync.Map-backed, exactly-once keyed instance store shared by
// Application and by each individual Session/Request/Conversation id.
type cache struct {
	entries sync.Map // key -> *entry
	active  bool
	mu      sync.Mutex
}

func newCache() *cache {
	return &cache{active: true}
}

func (c *cache) get(key interface{}, create Create, destroy Destroy) (interface{}, error, bool) {
	c.mu.Lock()
	active := c.active
	c.mu.Unlock()
	if !active {
		return nil, nil, false
	}
	v, _ := c.entries.LoadOrStore(key, &entry{})
	instance, err := v.(*entry).get(create, destroy)
	return instance, err, true
}

// destroyAll invokes every cached entry's destroy hook in arbitrary order,
// swallowing and collecting (not propagating) individual failures, then
// marks the cache inactive so subsequent Get calls return ContextNotActive.
func (c *cache) destroyAll() []error {
	c.mu.Lock()
	c.active = false
	c.mu.Unlock()

	var errs []error
	c.entries.Range(func(_, v interface{}) bool {
		e := v.(*entry)
		if e.destroy != nil && e.err == nil {
			if err := e.destroy(e.instance); err != nil {
				errs = append(errs, err)
			}
		}
		return true
	})
	return errs
}

// Context is one scope's runtime implementation.
type Context interface {
	Tag() Tag
	// Get returns the cached instance for key, creating it via create (and
	// registering destroy for later teardown) the first time key is seen.
	// ctx carries the scope id for Session/Request/Conversation; it is
	// ignored by Application and Dependent. cctx is required only by
	// Dependent, which has no cache of its own and instead ties the new
	// instance's teardown to the caller's CreationalContext.
	Get(ctx context.Context, key interface{}, cctx *CreationalContext, create Create, destroy Destroy) (interface{}, error)
}
