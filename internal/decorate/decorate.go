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

// Package decorate implements the decorator chain (spec.md §4.9):
// inside-out wrapping of a bean, where each decorator's delegate injection
// point receives either the original bean or the previously built
// decorator.
//
// No teacher equivalent exists; decorators are built with the same three
// injection-point kinds (constructor arg, field, method) that
// internal/arg and internal/wiring already use for ordinary beans, so a
// decorator is, mechanically, just another bean whose one injection point
// is pre-resolved to a fixed value instead of looked up by type.
package decorate

import (
	"fmt"
	"reflect"
	"sort"
)

// Delegate identifies which injection point on a decorator type receives
// the wrapped instance: a constructor argument index, a field, or a setter
// method, mirroring arg/wiring's three injection-point kinds.
type Delegate struct {
	Kind   DelegateKind
	Index  int          // constructor-argument position, when Kind == DelegateArg
	Field  string       // struct field name, when Kind == DelegateField
	Method string       // setter method name, when Kind == DelegateMethod
	Type   reflect.Type // the delegate's required (interface) type
}

type DelegateKind int

const (
	DelegateArg DelegateKind = iota
	DelegateField
	DelegateMethod
)

// Descriptor describes one decorator bean.
type Descriptor struct {
	Type           reflect.Type
	DecoratedTypes []reflect.Type
	Priority       int
	Delegate       Delegate

	// New constructs an instance of this decorator given the resolved
	// delegate value (the inner bean, or the previous decorator). It is
	// supplied by the caller (internal/wiring) since only it knows how to
	// run the decorator's full constructor/field/method injection pass.
	New func(delegate interface{}) (interface{}, error)
}

// Build wraps target with descriptors, innermost first: descriptors are
// ordered ascending by Priority, the first (lowest-priority, innermost)
// decorator's delegate is target itself, and each subsequent decorator's
// delegate is the previous decorator's instance. Each descriptor's New
// closure is expected to run the decorator through the full constructor/
// field/method injection pass (internal/wiring), with Delegate telling the
// wiring pass which injection point the delegate value fills in. Build
// returns the outermost decorator, or target unchanged if descriptors is
// empty.
func Build(descriptors []Descriptor, target interface{}) (interface{}, error) {
	if len(descriptors) == 0 {
		return target, nil
	}

	ordered := make([]Descriptor, len(descriptors))
	copy(ordered, descriptors)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})

	current := target
	for _, d := range ordered {
		if d.New == nil {
			return nil, fmt.Errorf("decorate: %s has no New constructor", d.Type)
		}
		next, err := d.New(current)
		if err != nil {
			return nil, fmt.Errorf("decorate: building %s: %w", d.Type, err)
		}
		current = next
	}
	return current, nil
}
