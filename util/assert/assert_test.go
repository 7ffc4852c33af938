/*
 * Copyright 2024 The Go-Spring Authors.
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

package assert_test

import (
	"testing"

	"github.com/beanforge/cdi/util/assert"
	"go.uber.org/mock/gomock"
)

// runCase runs fn against a fresh *assert.MockT, verifying every recorded
// expectation on g was satisfied by the time fn returns.
func runCase(t *testing.T, fn func(g *assert.MockT)) {
	t.Helper()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	g := assert.NewMockT(ctrl)
	fn(g)
}
