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

package proxy

import (
	"context"
	"errors"
	"testing"

	"github.com/beanforge/cdi/internal/scope"
	"github.com/beanforge/cdi/util/assert"
)

type Greeter interface {
	Greet() string
}

type englishGreeter struct{}

func (englishGreeter) Greet() string { return "hello" }

func TestOf_ResolvesLiveInstanceEachCall(t *testing.T) {
	mgr := scope.NewManager()
	var creations int
	create := func() (interface{}, error) {
		creations++
		return englishGreeter{}, nil
	}
	resolver := NewScoped(mgr, scope.Application, "greeter", create, nil)
	p := New[Greeter]("greeter", resolver)

	v1, err := p.Get(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, v1.Greet(), "hello")

	v2, err := p.Get(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, v2.Greet(), "hello")

	// Application scope caches, so the underlying create only runs once,
	// but the proxy itself re-resolves through the scope on every Get.
	assert.Equal(t, creations, 1)
}

func TestOf_SurfacesResolverError(t *testing.T) {
	boom := errors.New("boom")
	resolver := func(context.Context) (interface{}, error) { return nil, boom }
	p := New[Greeter]("k", resolver)
	_, err := p.Get(context.Background())
	assert.True(t, errors.Is(err, boom))
}

func TestOf_SurfacesScopeNotActive(t *testing.T) {
	mgr := scope.NewManager()
	resolver := NewScoped(mgr, scope.Request, "k", func() (interface{}, error) {
		return englishGreeter{}, nil
	}, nil)
	p := New[Greeter]("k", resolver)
	_, err := p.Get(context.Background())
	var notActive *scope.ContextNotActive
	assert.True(t, errors.As(err, &notActive))
}

func TestOf_TypeMismatch(t *testing.T) {
	resolver := func(context.Context) (interface{}, error) { return 42, nil }
	p := New[Greeter]("k", resolver)
	_, err := p.Get(context.Background())
	assert.NotNil(t, err)
}
