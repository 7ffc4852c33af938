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

package scan

import (
	"context"
	"reflect"
	"sync"

	"github.com/beanforge/cdi/util/goutil"
)

// ParallelScanner scans each root concurrently, bounded by a worker pool,
// and funnels every Add call through a single mutex-guarded Sink so
// concurrent roots can't race on the underlying registry's dedup map.
// Grounded on the teacher's util/goutil.Go fan-out idiom (a
// sync.WaitGroup-backed goroutine launcher with panic recovery), already
// carried into this module.
type ParallelScanner struct {
	// Workers bounds how many roots are scanned concurrently. Values <= 0
	// are treated as 1.
	Workers int
}

// sinkMutex serializes concurrent Add calls against a single underlying
// Sink.
type sinkMutex struct {
	mu   sync.Mutex
	sink Sink
	errs []error
}

func (s *sinkMutex) Add(t reflect.Type, mode ArchiveMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.sink.Add(t, mode)
	if err != nil {
		s.errs = append(s.errs, err)
	}
	return err
}

// Scan runs Scan(roots, ...) with up to Workers roots in flight at once,
// each root guarded against panics by goutil.Go, and returns the first
// per-root error encountered (if any).
func (p *ParallelScanner) Scan(roots []string, prefixes []string, mode ArchiveMode, sink Sink) error {
	workers := p.Workers
	if workers <= 0 {
		workers = 1
	}

	guarded := &sinkMutex{sink: sink}
	sem := make(chan struct{}, workers)
	var mu sync.Mutex
	var firstErr error
	var statuses []*goutil.Status

	for _, root := range roots {
		root := root
		sem <- struct{}{}
		statuses = append(statuses, goutil.Go(context.Background(), func(context.Context) {
			defer func() { <-sem }()

			err := Scan([]string{root}, prefixes, mode, guarded)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}))
	}
	for _, s := range statuses {
		s.Wait()
	}

	if firstErr != nil {
		return firstErr
	}
	if len(guarded.errs) > 0 {
		return guarded.errs[0]
	}
	return nil
}
