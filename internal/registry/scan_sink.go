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

	"github.com/beanforge/cdi/internal/scan"
)

// Add implements scan.Sink, letting Scan/ParallelScanner feed discovered
// types directly into the container's bean set. A scanned type must be a
// pointer-to-struct (the shape util.IsBeanType already requires of every
// object bean); Add allocates a fresh zero-value instance and registers it
// exactly as a direct c.Object(...) call would.
//
// Add is idempotent: re-adding a type already present among the
// container's beans (by Type, ignoring Exports) is a silent no-op, mirroring
// checkDuplicateBeans's existing type/name dedup rather than raising a
// duplicate-bean error at scan time.
func (c *Resolving) Add(t reflect.Type, mode scan.ArchiveMode) error {
	if t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("scan: %s is not a pointer-to-struct bean type", t)
	}
	for _, b := range c.beans {
		if b.Type() == t {
			return nil
		}
	}
	instance := reflect.New(t.Elem()).Interface()
	c.Object(instance)
	return nil
}
