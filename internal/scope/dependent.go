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
	"fmt"
)

// dependentContext is the Dependent scope: it never caches. Every Get
// creates a brand-new instance and ties its teardown to the caller's
// CreationalContext, so it is released alongside whatever bean pulled it
// in rather than living for the container's or a request's lifetime.
type dependentContext struct{}

// NewDependent returns the (stateless, shareable) Dependent-scope context.
func NewDependent() Context {
	return dependentContext{}
}

func (dependentContext) Tag() Tag { return Dependent }

func (dependentContext) Get(_ context.Context, _ interface{}, cctx *CreationalContext, create Create, destroy Destroy) (interface{}, error) {
	if cctx == nil {
		return nil, fmt.Errorf("scope error: dependent scope requires a CreationalContext")
	}
	instance, err := create()
	if err != nil {
		return nil, err
	}
	cctx.trackDependent(instance, destroy)
	return instance, nil
}
