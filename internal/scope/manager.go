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

import "context"

// Manager owns one Context per scope Tag and resolves a bean against its
// declared scope; internal/wiring does not call it. It mirrors the BeanManager surface of spec.md §6: the
// Activate*/Deactivate*/Begin*/End* methods are the Go realization of
// ActivateRequest/DeactivateRequest, BeginConversation/EndConversation and
// ActivateSession/InvalidateSession.
type Manager struct {
	app     Context
	session *idScopedContext
	convo   *idScopedContext
	request *idScopedContext
	dep     Context
}

// NewManager wires up all five scope contexts for one container instance.
func NewManager() *Manager {
	return &Manager{
		app:     NewApplication(),
		session: newIDScoped(Session),
		convo:   newIDScoped(Conversation),
		request: newIDScoped(Request),
		dep:     NewDependent(),
	}
}

// Get resolves key within the scope named by tag.
func (m *Manager) Get(ctx context.Context, tag Tag, key interface{}, cctx *CreationalContext, create Create, destroy Destroy) (interface{}, error) {
	return m.contextFor(tag).Get(ctx, key, cctx, create, destroy)
}

func (m *Manager) contextFor(tag Tag) Context {
	switch tag {
	case Application:
		return m.app
	case Session:
		return m.session
	case Conversation:
		return m.convo
	case Request:
		return m.request
	default:
		return m.dep
	}
}

// ActivateRequest begins tracking a request scope identified by id.
func (m *Manager) ActivateRequest(ctx context.Context, id string) context.Context {
	return m.request.Activate(ctx, id)
}

// DeactivateRequest tears a request scope down.
func (m *Manager) DeactivateRequest(ctx context.Context, id string) {
	m.request.Deactivate(ctx, id)
}

// ActivateSession begins tracking a session scope identified by id.
func (m *Manager) ActivateSession(ctx context.Context, id string) context.Context {
	return m.session.Activate(ctx, id)
}

// InvalidateSession tears a session scope down.
func (m *Manager) InvalidateSession(ctx context.Context, id string) {
	m.session.Deactivate(ctx, id)
}

// BeginConversation opens a conversation scope identified by id.
func (m *Manager) BeginConversation(ctx context.Context, id string) context.Context {
	return m.convo.Begin(ctx, id)
}

// EndConversation closes a conversation scope.
func (m *Manager) EndConversation(ctx context.Context, id string) {
	m.convo.End(ctx, id)
}

// Shutdown tears the Application scope down. Request/Session/Conversation
// scopes are expected to already have been deactivated individually by the
// time the container shuts down; any still-active ones are left alone,
// since the Manager does not track their ids once Deactivate forgets them.
func (m *Manager) Shutdown(ctx context.Context) {
	m.app.(*applicationContext).Destroy(ctx)
}
