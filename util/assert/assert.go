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

// Package assert provides a small set of fluent and standalone test
// assertions built directly on top of *testing.T, in the spirit of
// go-spring's own assertion helpers rather than a third-party framework.
package assert

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"
)

// T is the subset of *testing.T that assertions need.
type T interface {
	Error(args ...interface{})
	Helper()
}

func fail(t T, str string, msg []string) {
	t.Helper()
	args := append([]string{str}, msg...)
	t.Error(strings.Join(args, "; "))
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map,
		reflect.Ptr, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

/*********************************** That *************************************/

// Assertion wraps a value under test for fluent assertions.
type Assertion struct {
	t T
	v interface{}
}

// That starts a fluent assertion against v.
func That(t T, v interface{}) *Assertion {
	return &Assertion{t: t, v: v}
}

// Equal asserts that the wrapped value equals expect.
func (a *Assertion) Equal(expect interface{}, msg ...string) *Assertion {
	a.t.Helper()
	if !reflect.DeepEqual(a.v, expect) {
		fail(a.t, fmt.Sprintf("got (%T) %v but expect (%T) %v", a.v, a.v, expect, expect), msg)
	}
	return a
}

// NotEqual asserts that the wrapped value does not equal expect.
func (a *Assertion) NotEqual(expect interface{}, msg ...string) *Assertion {
	a.t.Helper()
	if reflect.DeepEqual(a.v, expect) {
		fail(a.t, fmt.Sprintf("expect not equal to (%T) %v", expect, expect), msg)
	}
	return a
}

// Nil asserts that the wrapped value is nil.
func (a *Assertion) Nil(msg ...string) *Assertion {
	a.t.Helper()
	if !isNil(a.v) {
		fail(a.t, fmt.Sprintf("got (%T) %v but expect nil", a.v, a.v), msg)
	}
	return a
}

// NotNil asserts that the wrapped value is not nil.
func (a *Assertion) NotNil(msg ...string) *Assertion {
	a.t.Helper()
	if isNil(a.v) {
		fail(a.t, "expect not nil", msg)
	}
	return a
}

// True asserts that the wrapped value is the boolean true.
func (a *Assertion) True(msg ...string) *Assertion {
	a.t.Helper()
	if b, ok := a.v.(bool); !ok || !b {
		fail(a.t, fmt.Sprintf("got (%T) %v but expect true", a.v, a.v), msg)
	}
	return a
}

// False asserts that the wrapped value is the boolean false.
func (a *Assertion) False(msg ...string) *Assertion {
	a.t.Helper()
	if b, ok := a.v.(bool); !ok || b {
		fail(a.t, fmt.Sprintf("got (%T) %v but expect false", a.v, a.v), msg)
	}
	return a
}

// Same asserts that the wrapped value is identical (==) to expect.
func (a *Assertion) Same(expect interface{}, msg ...string) *Assertion {
	a.t.Helper()
	if a.v != expect {
		fail(a.t, fmt.Sprintf("got (%T) %v but expect same as (%T) %v", a.v, a.v, expect, expect), msg)
	}
	return a
}

// NotSame asserts that the wrapped value is not identical (!=) to expect.
func (a *Assertion) NotSame(expect interface{}, msg ...string) *Assertion {
	a.t.Helper()
	if a.v == expect {
		fail(a.t, fmt.Sprintf("expect not same as (%T) %v", expect, expect), msg)
	}
	return a
}

/******************************** ThatString ***********************************/

// StringAssertion wraps a string under test for fluent assertions.
type StringAssertion struct {
	t T
	v string
}

// ThatString starts a fluent assertion against str.
func ThatString(t T, str string) *StringAssertion {
	return &StringAssertion{t: t, v: str}
}

// String is an alias of ThatString.
func String(t T, str string) *StringAssertion {
	return ThatString(t, str)
}

// Equal asserts that the wrapped string equals expect.
func (a *StringAssertion) Equal(expect string, msg ...string) *StringAssertion {
	a.t.Helper()
	if a.v != expect {
		fail(a.t, fmt.Sprintf("got '%s' but expect '%s'", a.v, expect), msg)
	}
	return a
}

// NotEqual asserts that the wrapped string does not equal expect.
func (a *StringAssertion) NotEqual(expect string, msg ...string) *StringAssertion {
	a.t.Helper()
	if a.v == expect {
		fail(a.t, fmt.Sprintf("expect not equal to '%s'", expect), msg)
	}
	return a
}

// EqualFold asserts case-insensitive equality with expect.
func (a *StringAssertion) EqualFold(expect string, msg ...string) *StringAssertion {
	a.t.Helper()
	if !strings.EqualFold(a.v, expect) {
		fail(a.t, fmt.Sprintf("'%s' doesn't equal fold to '%s'", a.v, expect), msg)
	}
	return a
}

// HasPrefix asserts that the wrapped string has the given prefix.
func (a *StringAssertion) HasPrefix(prefix string, msg ...string) *StringAssertion {
	a.t.Helper()
	if !strings.HasPrefix(a.v, prefix) {
		fail(a.t, fmt.Sprintf("'%s' doesn't have prefix '%s'", a.v, prefix), msg)
	}
	return a
}

// HasSuffix asserts that the wrapped string has the given suffix.
func (a *StringAssertion) HasSuffix(suffix string, msg ...string) *StringAssertion {
	a.t.Helper()
	if !strings.HasSuffix(a.v, suffix) {
		fail(a.t, fmt.Sprintf("'%s' doesn't have suffix '%s'", a.v, suffix), msg)
	}
	return a
}

// Contains asserts that the wrapped string contains substr.
func (a *StringAssertion) Contains(substr string, msg ...string) *StringAssertion {
	a.t.Helper()
	if !strings.Contains(a.v, substr) {
		fail(a.t, fmt.Sprintf("'%s' doesn't contain substr '%s'", a.v, substr), msg)
	}
	return a
}

// Matches asserts that the wrapped string matches the regular expression pattern.
func (a *StringAssertion) Matches(pattern string, msg ...string) *StringAssertion {
	a.t.Helper()
	ok, err := regexp.MatchString(pattern, a.v)
	if err != nil {
		fail(a.t, fmt.Sprintf("invalid pattern '%s': %s", pattern, err.Error()), msg)
		return a
	}
	if !ok {
		fail(a.t, fmt.Sprintf("'%s' doesn't match pattern '%s'", a.v, pattern), msg)
	}
	return a
}

// JsonEqual asserts that the wrapped string is JSON-equal to expect.
func (a *StringAssertion) JsonEqual(expect string, msg ...string) *StringAssertion {
	a.t.Helper()
	var v1, v2 interface{}
	if err := json.Unmarshal([]byte(a.v), &v1); err != nil {
		fail(a.t, fmt.Sprintf("got json unmarshal error: %s", err.Error()), msg)
		return a
	}
	if err := json.Unmarshal([]byte(expect), &v2); err != nil {
		fail(a.t, fmt.Sprintf("expect json unmarshal error: %s", err.Error()), msg)
		return a
	}
	if !reflect.DeepEqual(v1, v2) {
		fail(a.t, fmt.Sprintf("got '%s' but expect '%s'", a.v, expect), msg)
	}
	return a
}

/******************************** ThatError ************************************/

// ErrorAssertion wraps an error under test for fluent assertions.
type ErrorAssertion struct {
	t T
	v error
}

// ThatError starts a fluent assertion against err.
func ThatError(t T, err error) *ErrorAssertion {
	return &ErrorAssertion{t: t, v: err}
}

// Matches asserts that the error's message matches the regular expression pattern.
func (a *ErrorAssertion) Matches(pattern string, msg ...string) *ErrorAssertion {
	a.t.Helper()
	if a.v == nil {
		fail(a.t, fmt.Sprintf("expect error matches '%s' but got nil", pattern), msg)
		return a
	}
	ok, err := regexp.MatchString(pattern, a.v.Error())
	if err != nil {
		fail(a.t, fmt.Sprintf("invalid pattern '%s': %s", pattern, err.Error()), msg)
		return a
	}
	if !ok {
		fail(a.t, fmt.Sprintf("got error '%s' but expect matches '%s'", a.v.Error(), pattern), msg)
	}
	return a
}

// Equal asserts that the error's message equals expect.
func (a *ErrorAssertion) Equal(expect string, msg ...string) *ErrorAssertion {
	a.t.Helper()
	if a.v == nil || a.v.Error() != expect {
		fail(a.t, fmt.Sprintf("got error '%v' but expect '%s'", a.v, expect), msg)
	}
	return a
}

/*********************************** plain funcs *******************************/

// Equal asserts got equals expect.
func Equal(t T, got interface{}, expect interface{}, msg ...string) {
	t.Helper()
	That(t, got).Equal(expect, msg...)
}

// NotEqual asserts got does not equal expect.
func NotEqual(t T, got interface{}, expect interface{}, msg ...string) {
	t.Helper()
	That(t, got).NotEqual(expect, msg...)
}

// EqualValues asserts got and expect are equal after normalizing numeric types.
func EqualValues(t T, got interface{}, expect interface{}, msg ...string) {
	t.Helper()
	gv, ev := reflect.ValueOf(got), reflect.ValueOf(expect)
	if gv.IsValid() && ev.IsValid() && gv.Type().ConvertibleTo(ev.Type()) {
		if reflect.DeepEqual(gv.Convert(ev.Type()).Interface(), expect) {
			return
		}
	}
	That(t, got).Equal(expect, msg...)
}

// Nil asserts got is nil.
func Nil(t T, got interface{}, msg ...string) {
	t.Helper()
	That(t, got).Nil(msg...)
}

// NotNil asserts got is not nil.
func NotNil(t T, got interface{}, msg ...string) {
	t.Helper()
	That(t, got).NotNil(msg...)
}

// True asserts got is true.
func True(t T, got bool, msg ...string) {
	t.Helper()
	That(t, got).True(msg...)
}

// False asserts got is false.
func False(t T, got bool, msg ...string) {
	t.Helper()
	That(t, got).False(msg...)
}

// Same asserts got is identical to expect.
func Same(t T, got interface{}, expect interface{}, msg ...string) {
	t.Helper()
	That(t, got).Same(expect, msg...)
}

// NotSame asserts got is not identical to expect.
func NotSame(t T, got interface{}, expect interface{}, msg ...string) {
	t.Helper()
	That(t, got).NotSame(expect, msg...)
}

// Zero asserts got is the zero value of its type.
func Zero(t T, got interface{}, msg ...string) {
	t.Helper()
	if got != nil && !reflect.ValueOf(got).IsZero() {
		fail(t, fmt.Sprintf("got (%T) %v but expect zero value", got, got), msg)
	}
}

// NotZero asserts got is not the zero value of its type.
func NotZero(t T, got interface{}, msg ...string) {
	t.Helper()
	if got == nil || reflect.ValueOf(got).IsZero() {
		fail(t, "expect not zero value", msg)
	}
}

func length(got interface{}) (int, bool) {
	v := reflect.ValueOf(got)
	switch v.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice, reflect.String:
		return v.Len(), true
	default:
		return 0, false
	}
}

// Len asserts got has the given length.
func Len(t T, got interface{}, expect int, msg ...string) {
	t.Helper()
	n, ok := length(got)
	if !ok || n != expect {
		fail(t, fmt.Sprintf("got len %d but expect %d", n, expect), msg)
	}
}

// Empty asserts got is an empty value of its type.
func Empty(t T, got interface{}, msg ...string) {
	t.Helper()
	if n, ok := length(got); ok {
		if n != 0 {
			fail(t, fmt.Sprintf("got (%T) %v but expect empty", got, got), msg)
		}
		return
	}
	Zero(t, got, msg...)
}

// NotEmpty asserts got is not an empty value of its type.
func NotEmpty(t T, got interface{}, msg ...string) {
	t.Helper()
	if n, ok := length(got); ok {
		if n == 0 {
			fail(t, "expect not empty", msg)
		}
		return
	}
	NotZero(t, got, msg...)
}

// Contains asserts that the string, slice, array, or map got contains v.
func Contains(t T, got interface{}, v interface{}, msg ...string) {
	t.Helper()
	if !contains(got, v) {
		fail(t, fmt.Sprintf("got (%T) %v doesn't contain %v", got, got, v), msg)
	}
}

// NotContains asserts that the string, slice, array, or map got does not contain v.
func NotContains(t T, got interface{}, v interface{}, msg ...string) {
	t.Helper()
	if contains(got, v) {
		fail(t, fmt.Sprintf("got (%T) %v contains %v", got, got, v), msg)
	}
}

func contains(got interface{}, v interface{}) bool {
	if s, ok := got.(string); ok {
		if sub, ok := v.(string); ok {
			return strings.Contains(s, sub)
		}
	}
	rv := reflect.ValueOf(got)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if reflect.DeepEqual(rv.Index(i).Interface(), v) {
				return true
			}
		}
	case reflect.Map:
		for _, k := range rv.MapKeys() {
			if reflect.DeepEqual(k.Interface(), v) {
				return true
			}
		}
	}
	return false
}

// Regexp asserts that str matches the regular expression pattern.
func Regexp(t T, pattern string, str string, msg ...string) {
	t.Helper()
	ThatString(t, str).Matches(pattern, msg...)
}

// JSONEq asserts that got is JSON-equal to expect.
func JSONEq(t T, got string, expect string, msg ...string) {
	t.Helper()
	ThatString(t, got).JsonEqual(expect, msg...)
}

// InDelta asserts that the numeric difference between got and expect is within delta.
func InDelta(t T, got interface{}, expect interface{}, delta float64, msg ...string) {
	t.Helper()
	gf, gok := toFloat(got)
	ef, eok := toFloat(expect)
	if !gok || !eok {
		fail(t, "InDelta requires numeric values", msg)
		return
	}
	diff := gf - ef
	if diff < 0 {
		diff = -diff
	}
	if diff > delta {
		fail(t, fmt.Sprintf("got %v not within %v of expect %v", got, delta, expect), msg)
	}
}

// InDeltaf is InDelta with a formatted message.
func InDeltaf(t T, got interface{}, expect interface{}, delta float64, format string, args ...interface{}) {
	t.Helper()
	InDelta(t, got, expect, delta, fmt.Sprintf(format, args...))
}

func toFloat(v interface{}) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

// WithinDuration asserts that got and expect are within delta of each other.
func WithinDuration(t T, got time.Time, expect time.Time, delta time.Duration, msg ...string) {
	t.Helper()
	diff := got.Sub(expect)
	if diff < 0 {
		diff = -diff
	}
	if diff > delta {
		fail(t, fmt.Sprintf("got %v not within %v of expect %v", got, delta, expect), msg)
	}
}

// GreaterOrEqual asserts got >= expect for numeric values.
func GreaterOrEqual(t T, got interface{}, expect interface{}, msg ...string) {
	t.Helper()
	gf, gok := toFloat(got)
	ef, eok := toFloat(expect)
	if !gok || !eok || gf < ef {
		fail(t, fmt.Sprintf("got %v is not >= %v", got, expect), msg)
	}
}

// LessOrEqual asserts got <= expect for numeric values.
func LessOrEqual(t T, got interface{}, expect interface{}, msg ...string) {
	t.Helper()
	gf, gok := toFloat(got)
	ef, eok := toFloat(expect)
	if !gok || !eok || gf > ef {
		fail(t, fmt.Sprintf("got %v is not <= %v", got, expect), msg)
	}
}

// Number asserts that got is a numeric value.
func Number(t T, got interface{}, msg ...string) {
	t.Helper()
	if _, ok := toFloat(got); !ok {
		fail(t, fmt.Sprintf("got (%T) %v but expect a number", got, got), msg)
	}
}

/*********************************** panic/error *******************************/

// Panic asserts that fn panics with a value whose string representation
// matches the regular expression pattern.
func Panic(t T, fn func(), pattern string, msg ...string) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			fail(t, "did not panic", msg)
			return
		}
		str := fmt.Sprint(r)
		if err, ok := r.(error); ok {
			str = err.Error()
		}
		ok, err := regexp.MatchString(pattern, str)
		if err != nil {
			fail(t, fmt.Sprintf("invalid pattern '%s': %s", pattern, err.Error()), msg)
			return
		}
		if !ok {
			fail(t, fmt.Sprintf("got panic '%s' but expect matches '%s'", str, pattern), msg)
		}
	}()
	fn()
}

// Panics asserts that fn panics.
func Panics(t T, fn func(), msg ...string) {
	t.Helper()
	Panic(t, fn, ".*", msg...)
}

// NotPanics asserts that fn does not panic.
func NotPanics(t T, fn func(), msg ...string) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r != nil {
			fail(t, fmt.Sprintf("expect no panic but got '%v'", r), msg)
		}
	}()
	fn()
}

// PanicsWithValue asserts that fn panics with exactly the expected value.
func PanicsWithValue(t T, expect interface{}, fn func(), msg ...string) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			fail(t, "did not panic", msg)
			return
		}
		if !reflect.DeepEqual(r, expect) {
			fail(t, fmt.Sprintf("got panic value (%T) %v but expect (%T) %v", r, r, expect, expect), msg)
		}
	}()
	fn()
}

// Error asserts that err is non-nil and matches the regular expression pattern.
func Error(t T, err error, pattern string, msg ...string) {
	t.Helper()
	ThatError(t, err).Matches(pattern, msg...)
}

// EqualError asserts that err is non-nil and its message equals expect.
func EqualError(t T, err error, expect string, msg ...string) {
	t.Helper()
	ThatError(t, err).Equal(expect, msg...)
}

// ErrorContains asserts that err is non-nil and its message contains substr.
func ErrorContains(t T, err error, substr string, msg ...string) {
	t.Helper()
	if err == nil || !strings.Contains(err.Error(), substr) {
		fail(t, fmt.Sprintf("got error '%v' but expect contains '%s'", err, substr), msg)
	}
}

// ErrorIs asserts that errors.Is(err, target) is true.
func ErrorIs(t T, err error, target error, msg ...string) {
	t.Helper()
	if !errors.Is(err, target) {
		fail(t, fmt.Sprintf("got error '%v' but expect is '%v'", err, target), msg)
	}
}

// NoError asserts that err is nil.
func NoError(t T, err error, msg ...string) {
	t.Helper()
	if err != nil {
		fail(t, fmt.Sprintf("got unexpected error '%v'", err), msg)
	}
}
