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

// Package qualifier implements binding-aware qualifier matching: the
// mechanism an injection point uses to narrow "any bean of this type" down
// to "the bean of this type annotated with these qualifiers".
//
// A qualifier has a type identity (its annotation type) plus a set of
// members; only members marked binding participate in equality/matching,
// mirroring how CDI ignores @Nonbinding members when comparing qualifiers.
package qualifier

import (
	"fmt"
	"hash/maphash"
	"sort"
)

var seed = maphash.MakeSeed()

// Qualifier is a single qualifier instance: a type identity plus its member
// values, with a binding flag per member name.
type Qualifier struct {
	TypeID  string
	Members map[string]interface{}
	Binding map[string]bool
}

// Default is the qualifier implicitly present on every bean that declares
// no qualifiers of its own.
var Default = Qualifier{TypeID: "Default"}

// Any matches every bean regardless of its own qualifiers.
var Any = Qualifier{TypeID: "Any"}

// Named builds the qualifier equivalent of @Named(name).
func Named(name string) Qualifier {
	return Qualifier{
		TypeID:  "Named",
		Members: map[string]interface{}{"value": name},
		Binding: map[string]bool{"value": true},
	}
}

// bindingKeys returns the sorted binding member names, so iteration order
// never affects Equal/Hash.
func (q Qualifier) bindingKeys() []string {
	keys := make([]string, 0, len(q.Binding))
	for k, binding := range q.Binding {
		if binding {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether q and other carry the same type identity and agree
// on every binding member. Non-binding members are ignored entirely, so two
// qualifiers differing only in a @Nonbinding member are still equal.
func (q Qualifier) Equal(other Qualifier) bool {
	if q.TypeID != other.TypeID {
		return false
	}
	keys := q.bindingKeys()
	otherKeys := other.bindingKeys()
	if len(keys) != len(otherKeys) {
		return false
	}
	for i, k := range keys {
		if k != otherKeys[i] {
			return false
		}
		if fmt.Sprint(q.Members[k]) != fmt.Sprint(other.Members[k]) {
			return false
		}
	}
	return true
}

// Hash returns a hash consistent with Equal: equal qualifiers always hash
// equal. Used to bucket qualifier sets for fast satisfies checks.
func (q Qualifier) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	_, _ = h.WriteString(q.TypeID)
	for _, k := range q.bindingKeys() {
		_, _ = h.WriteString(k)
		_, _ = h.WriteString(fmt.Sprint(q.Members[k]))
	}
	return h.Sum64()
}

func (q Qualifier) String() string {
	if len(q.Binding) == 0 {
		return q.TypeID
	}
	keys := q.bindingKeys()
	s := q.TypeID + "("
	for i, k := range keys {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprintf("%s=%v", k, q.Members[k])
	}
	return s + ")"
}

// Set is the full collection of qualifiers a bean declares, or an
// injection point requires.
type Set []Qualifier

// Satisfies reports whether this set (a bean's declared qualifiers)
// satisfies the required set (an injection point's required qualifiers).
// Any in the required set always matches. Every other required qualifier
// must have an Equal counterpart in this set; a bean with no qualifiers of
// its own is treated as carrying exactly Default.
func (s Set) Satisfies(required Set) bool {
	effective := s
	if len(effective) == 0 {
		effective = Set{Default}
	}
	for _, req := range required {
		if req.TypeID == Any.TypeID {
			continue
		}
		if !effective.contains(req) {
			return false
		}
	}
	return true
}

func (s Set) contains(q Qualifier) bool {
	for _, have := range s {
		if have.Equal(q) {
			return true
		}
	}
	return false
}

// Has reports whether the set contains a qualifier with the given type id,
// regardless of member values.
func (s Set) Has(typeID string) bool {
	for _, q := range s {
		if q.TypeID == typeID {
			return true
		}
	}
	return false
}
