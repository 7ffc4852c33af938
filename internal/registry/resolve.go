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
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/beanforge/cdi/internal/assignability"
	"github.com/beanforge/cdi/internal/beandef"
	"github.com/beanforge/cdi/internal/qualifier"
)

// UnsatisfiedDependency reports that no registered, resolved bean can
// satisfy an injection point declared as Type with the given Qualifiers.
type UnsatisfiedDependency struct {
	Type       reflect.Type
	Qualifiers qualifier.Set
}

func (e *UnsatisfiedDependency) Error() string {
	return fmt.Sprintf("unsatisfied dependency: no bean found for type %s qualifiers %s", e.Type, e.Qualifiers)
}

// AmbiguousDependency reports that more than one bean can satisfy an
// injection point and alternative/priority disambiguation did not narrow
// the candidates down to exactly one.
type AmbiguousDependency struct {
	Type       reflect.Type
	Qualifiers qualifier.Set
	Candidates []*beandef.BeanDefinition
}

func (e *AmbiguousDependency) Error() string {
	names := make([]string, len(e.Candidates))
	for i, b := range e.Candidates {
		names[i] = b.String()
	}
	return fmt.Sprintf("ambiguous dependency: %d beans found for type %s qualifiers %s [%s]",
		len(e.Candidates), e.Type, e.Qualifiers, strings.Join(names, ", "))
}

// Resolve implements spec.md §4.5's resolve(requiredType, requiredQualifiers)
// algorithm:
//  1. Build the candidate list: resolved beans whose type set contains a
//     type assignable-from requiredType (internal/assignability), and whose
//     qualifier set satisfies requiredQualifiers (internal/qualifier).
//  2. Empty candidate list -> UnsatisfiedDependency.
//  3. More than one candidate -> alternative selection (AlternativeSelect).
func (c *Resolving) Resolve(requiredType reflect.Type, required qualifier.Set) (*beandef.BeanDefinition, error) {
	var candidates []*beandef.BeanDefinition
	for _, b := range c.beans {
		if b.Status() == beandef.StatusDeleted {
			continue
		}
		if !providesType(b, requiredType) {
			continue
		}
		if !b.Qualifiers().Satisfies(required) {
			continue
		}
		candidates = append(candidates, b)
	}

	switch len(candidates) {
	case 0:
		return nil, &UnsatisfiedDependency{Type: requiredType, Qualifiers: required}
	case 1:
		return candidates[0], nil
	default:
		return AlternativeSelect(candidates, requiredType, required)
	}
}

// providesType reports whether b's type set -- its own concrete type plus
// every interface it exports -- contains a type assignable from
// requiredType.
func providesType(b *beandef.BeanDefinition, requiredType reflect.Type) bool {
	if ok, _ := assignability.IsAssignable(requiredType, b.Type()); ok {
		return true
	}
	for _, t := range b.Exports() {
		if ok, _ := assignability.IsAssignable(requiredType, t); ok {
			return true
		}
	}
	return false
}

// AlternativeSelect implements spec.md §4.5 step 3's disambiguation among
// more than one matching candidate.
//
// A candidate explicitly marked .Primary() is chosen outright -- the
// teacher's own disambiguation idiom, kept alongside the CDI-style
// alternative/priority mechanism rather than replaced by it. Failing that,
// candidates are filtered down to those marked .Alternative(); if exactly
// one remains after ordering by descending Priority, it is chosen,
// otherwise the dependency is ambiguous.
func AlternativeSelect(candidates []*beandef.BeanDefinition, requiredType reflect.Type, required qualifier.Set) (*beandef.BeanDefinition, error) {
	var primary *beandef.BeanDefinition
	for _, b := range candidates {
		if !b.IsPrimary() {
			continue
		}
		if primary != nil {
			return nil, &AmbiguousDependency{Type: requiredType, Qualifiers: required, Candidates: candidates}
		}
		primary = b
	}
	if primary != nil {
		return primary, nil
	}

	var alternatives []*beandef.BeanDefinition
	for _, b := range candidates {
		if b.IsAlternative() {
			alternatives = append(alternatives, b)
		}
	}
	if len(alternatives) == 0 {
		return nil, &AmbiguousDependency{Type: requiredType, Qualifiers: required, Candidates: candidates}
	}

	sort.SliceStable(alternatives, func(i, j int) bool {
		return alternatives[i].Priority() > alternatives[j].Priority()
	})
	if len(alternatives) == 1 || alternatives[0].Priority() > alternatives[1].Priority() {
		return alternatives[0], nil
	}
	return nil, &AmbiguousDependency{Type: requiredType, Qualifiers: required, Candidates: alternatives}
}
