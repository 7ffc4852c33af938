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

	"github.com/go-spring/log"
)

// applicationContext is the process-lifetime scope: one cache, created
// once at container startup and torn down once at shutdown. Grounded on
// the teacher's own singleton-bean cache, which is a single
// sync.Mutex-guarded map for the whole container's lifetime.
type applicationContext struct {
	c *cache
}

// NewApplication returns a fresh, active Application-scope context.
func NewApplication() Context {
	return &applicationContext{c: newCache()}
}

func (a *applicationContext) Tag() Tag { return Application }

func (a *applicationContext) Get(_ context.Context, key interface{}, _ *CreationalContext, create Create, destroy Destroy) (interface{}, error) {
	instance, err, ok := a.c.get(key, create, destroy)
	if !ok {
		return nil, &ContextNotActive{Tag: Application}
	}
	return instance, err
}

// Destroy tears down every Application-scoped instance and marks the
// context inactive. Per-bean failures are logged (not propagated) per
// spec.md §4.7, matching the teacher's tolerant shutdown-time logging
// idiom used elsewhere for lifecycle callbacks.
func (a *applicationContext) Destroy(ctx context.Context) {
	for _, err := range a.c.destroyAll() {
		log.Errorf(ctx, log.TagAppDef, "application scope: destroy error: %v", err)
	}
}
