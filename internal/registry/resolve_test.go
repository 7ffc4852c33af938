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

package resolving

import (
	"reflect"
	"testing"

	"github.com/beanforge/cdi/internal/beandef"
	"github.com/beanforge/cdi/internal/qualifier"
	"github.com/beanforge/cdi/util/assert"
)

type Svc interface {
	Serve()
}

type SvcA struct{}

func (*SvcA) Serve() {}

type SvcB struct{}

func (*SvcB) Serve() {}

func registerSvc(c *Resolving, obj interface{}, export bool) *beandef.BeanDefinition {
	b := c.Object(obj)
	if export {
		b.Export((*Svc)(nil))
	}
	b.BeanRegistration().(*beandef.BeanDefinition).SetStatus(beandef.StatusResolved)
	return b.BeanRegistration().(*beandef.BeanDefinition)
}

func TestResolve(t *testing.T) {

	t.Run("unsatisfied", func(t *testing.T) {
		c := New()
		_, err := c.Resolve(reflect.TypeFor[Svc](), nil)
		assert.ThatError(t, err).Matches("unsatisfied dependency.*Svc")
		var target *UnsatisfiedDependency
		assert.That(t, errorsAs(err, &target)).True()
	})

	t.Run("single match", func(t *testing.T) {
		c := New()
		registerSvc(c, &SvcA{}, true)
		b, err := c.Resolve(reflect.TypeFor[Svc](), nil)
		assert.That(t, err).Nil()
		assert.That(t, b.Type()).Equal(reflect.TypeFor[*SvcA]())
	})

	t.Run("ambiguous", func(t *testing.T) {
		c := New()
		registerSvc(c, &SvcA{}, true)
		registerSvc(c, &SvcB{}, true)
		_, err := c.Resolve(reflect.TypeFor[Svc](), nil)
		assert.ThatError(t, err).Matches("ambiguous dependency.*Svc")
		var target *AmbiguousDependency
		assert.That(t, errorsAs(err, &target)).True()
		assert.That(t, len(target.Candidates)).Equal(2)
	})

	t.Run("primary wins", func(t *testing.T) {
		c := New()
		registerSvc(c, &SvcA{}, true)
		b2 := registerSvc(c, &SvcB{}, true)
		b2.SetPrimary()
		b, err := c.Resolve(reflect.TypeFor[Svc](), nil)
		assert.That(t, err).Nil()
		assert.That(t, b).Same(b2)
	})

	t.Run("alternative priority disambiguates", func(t *testing.T) {
		c := New()
		a := registerSvc(c, &SvcA{}, true)
		b := registerSvc(c, &SvcB{}, true)
		a.SetAlternative()
		a.SetPriority(100)
		b.SetAlternative()
		b.SetPriority(200)
		got, err := c.Resolve(reflect.TypeFor[Svc](), nil)
		assert.That(t, err).Nil()
		assert.That(t, got).Same(b)
	})

	t.Run("alternative priority tie is ambiguous", func(t *testing.T) {
		c := New()
		a := registerSvc(c, &SvcA{}, true)
		b := registerSvc(c, &SvcB{}, true)
		a.SetAlternative()
		a.SetPriority(100)
		b.SetAlternative()
		b.SetPriority(100)
		_, err := c.Resolve(reflect.TypeFor[Svc](), nil)
		assert.ThatError(t, err).Matches("ambiguous dependency")
	})

	t.Run("qualifier narrows candidates", func(t *testing.T) {
		c := New()
		a := registerSvc(c, &SvcA{}, true)
		registerSvc(c, &SvcB{}, true)
		a.SetQualifiers(qualifier.Named("primary-svc"))
		got, err := c.Resolve(reflect.TypeFor[Svc](), qualifier.Set{qualifier.Named("primary-svc")})
		assert.That(t, err).Nil()
		assert.That(t, got).Same(a)
	})
}

// errorsAs is a tiny wrapper so tests don't need to import "errors" just
// for As, matching this package's existing sparing-import style.
func errorsAs(err error, target interface{}) bool {
	switch t := target.(type) {
	case **UnsatisfiedDependency:
		u, ok := err.(*UnsatisfiedDependency)
		if ok {
			*t = u
		}
		return ok
	case **AmbiguousDependency:
		a, ok := err.(*AmbiguousDependency)
		if ok {
			*t = a
		}
		return ok
	}
	return false
}
