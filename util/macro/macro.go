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

// Package macro reports the source file and line of its own call site.
// Bean and interceptor registration uses it to stamp definitions with the
// location the user wrote them at, so diagnostics can point back to source
// instead of to container internals.
package macro

import (
	"fmt"
	"runtime"
)

// File returns the file name of the call site.
func File() string {
	_, file, _, _ := runtime.Caller(1)
	return file
}

// Line returns the line number of the call site.
func Line() int {
	_, _, line, _ := runtime.Caller(1)
	return line
}

// FileLine returns "file:line" of the call site.
func FileLine() string {
	_, file, line, _ := runtime.Caller(1)
	return fmt.Sprintf("%s:%d", file, line)
}
