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

import "sync"

// dependentRecord pairs a Dependent-scoped instance with the function that
// tears it down.
type dependentRecord struct {
	instance interface{}
	destroy  Destroy
}

// CreationalContext accumulates the Dependent-scoped instances created
// while resolving a single bean's dependency graph, so they can be released
// together, in reverse creation order, once the owning bean itself goes
// out of scope (spec.md §3's CreationalContext).
type CreationalContext struct {
	mu         sync.Mutex
	dependents []dependentRecord
}

// NewCreationalContext returns an empty CreationalContext.
func NewCreationalContext() *CreationalContext {
	return &CreationalContext{}
}

// trackDependent registers a Dependent-scoped instance for later release.
func (c *CreationalContext) trackDependent(instance interface{}, destroy Destroy) {
	if destroy == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dependents = append(c.dependents, dependentRecord{instance: instance, destroy: destroy})
}

// Release tears down every tracked Dependent instance in LIFO order,
// collecting (rather than short-circuiting on) individual failures.
func (c *CreationalContext) Release() []error {
	c.mu.Lock()
	dependents := c.dependents
	c.dependents = nil
	c.mu.Unlock()

	var errs []error
	for i := len(dependents) - 1; i >= 0; i-- {
		if err := dependents[i].destroy(dependents[i].instance); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
