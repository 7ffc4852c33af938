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

package scope

import (
	"context"
	"sync"

	"github.com/go-spring/log"
)

// idKey is the typed context.Context key used to carry a scope id,
// replacing the source's thread-locals per spec.md §9's Design Note
// ("pass a scope token through the request context instead"). One key per
// tag so Session and Request ids never collide on the same context.
type idKey struct{ tag Tag }

// WithID returns a child context carrying id as the active scope token for
// tag. Request/Session activation and Conversation.Begin both call this.
func WithID(ctx context.Context, tag Tag, id string) context.Context {
	return context.WithValue(ctx, idKey{tag: tag}, id)
}

// idFromContext recovers the scope id for tag, if any was set via WithID.
func idFromContext(ctx context.Context, tag Tag) (string, bool) {
	id, ok := ctx.Value(idKey{tag: tag}).(string)
	return id, ok
}

// idScopedContext backs Session, Request and Conversation: each active
// scope id gets its own exactly-once cache, looked up by the id carried on
// ctx. Grounded on
// _examples/deep-rent-nexus/di/di.go's NewScope/scoped.Resolve, which
// stashes a *sync.Map in the context for the lifetime of one request; here
// the per-id cache also survives across multiple contexts sharing the same
// id (e.g. several requests in one HTTP session), so it is indexed by id in
// a side table rather than solely held in ctx.
type idScopedContext struct {
	tag    Tag
	mu     sync.Mutex
	scopes map[string]*cache
}

func newIDScoped(tag Tag) *idScopedContext {
	return &idScopedContext{tag: tag, scopes: make(map[string]*cache)}
}

// NewSession returns a fresh Session-scope context.
func NewSession() Context { return newIDScoped(Session) }

// NewRequest returns a fresh Request-scope context.
func NewRequest() Context { return newIDScoped(Request) }

// NewConversation returns a fresh Conversation-scope context.
func NewConversation() Context { return newIDScoped(Conversation) }

func (s *idScopedContext) Tag() Tag { return s.tag }

// Activate begins tracking id (lazily creating its cache if needed) and
// returns a context carrying it, ready to pass to Get.
func (s *idScopedContext) Activate(ctx context.Context, id string) context.Context {
	s.mu.Lock()
	if _, ok := s.scopes[id]; !ok {
		s.scopes[id] = newCache()
	}
	s.mu.Unlock()
	return WithID(ctx, s.tag, id)
}

// Deactivate tears down id's cache (invoking every cached instance's
// destroy hook, logging but not propagating failures) and forgets it.
func (s *idScopedContext) Deactivate(ctx context.Context, id string) {
	s.mu.Lock()
	c, ok := s.scopes[id]
	delete(s.scopes, id)
	s.mu.Unlock()
	if !ok {
		return
	}
	for _, err := range c.destroyAll() {
		log.Errorf(ctx, log.TagAppDef, "%s scope %q: destroy error: %v", s.tag, id, err)
	}
}

// Begin and End are Conversation's vocabulary for Activate/Deactivate,
// matching spec.md's explicit conversation-boundary API.
func (s *idScopedContext) Begin(ctx context.Context, id string) context.Context {
	return s.Activate(ctx, id)
}

func (s *idScopedContext) End(ctx context.Context, id string) {
	s.Deactivate(ctx, id)
}

func (s *idScopedContext) Get(ctx context.Context, key interface{}, _ *CreationalContext, create Create, destroy Destroy) (interface{}, error) {
	id, ok := idFromContext(ctx, s.tag)
	if !ok {
		return nil, &ContextNotActive{Tag: s.tag}
	}
	s.mu.Lock()
	c, ok := s.scopes[id]
	s.mu.Unlock()
	if !ok {
		return nil, &ContextNotActive{Tag: s.tag, ID: id}
	}
	instance, err, active := c.get(key, create, destroy)
	if !active {
		return nil, &ContextNotActive{Tag: s.tag, ID: id}
	}
	return instance, err
}
