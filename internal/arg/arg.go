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

// Package arg binds values and bean references onto the individual
// parameters of a constructor, init/destroy method, or producer function.
package arg

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"

	"github.com/beanforge/cdi/internal/contract"
	"github.com/beanforge/cdi/util"
)

// Tag binds a parameter by property tag ("${...}") or bean selector string
// ("name" or "pkg/Type:name"), chosen by the target parameter's type.
type Tag string

// GetArgValue resolves the tag against t: value types are property-bound,
// bean types are wired.
func (tag Tag) GetArgValue(ctx gs.ArgContext, t reflect.Type) (reflect.Value, error) {
	s := string(tag)
	if util.IsValueType(t) {
		if s == "" {
			s = "${}"
		}
		v := reflect.New(t).Elem()
		if err := ctx.Bind(v, s); err != nil {
			return reflect.Value{}, fmt.Errorf("GetArgValue error << %s", err)
		}
		return v, nil
	}
	if util.IsBeanInjectionTarget(t) {
		v := reflect.New(t).Elem()
		if err := ctx.Wire(v, s); err != nil {
			return reflect.Value{}, fmt.Errorf("GetArgValue error << %s", err)
		}
		return v, nil
	}
	return reflect.Value{}, fmt.Errorf("GetArgValue error << unsupported argument type: %s", t)
}

// ValueArg supplies a literal value, bypassing the IoC container entirely.
type ValueArg struct {
	v interface{}
}

// Value returns an Arg bound to v.
func Value(v interface{}) ValueArg {
	return ValueArg{v: v}
}

// Nil returns an Arg bound to a zero value.
func Nil() ValueArg {
	return ValueArg{v: nil}
}

// GetArgValue returns v when it is assignable to t.
func (a ValueArg) GetArgValue(ctx gs.ArgContext, t reflect.Type) (reflect.Value, error) {
	if a.v == nil {
		return reflect.Zero(t), nil
	}
	v := reflect.ValueOf(a.v)
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("GetArgValue error << cannot assign type:%s to type:%s", v.Type(), t)
	}
	return v, nil
}

// IndexArg pins an Arg to a specific parameter position, for use when only
// some of a function's parameters need an explicit binding.
type IndexArg struct {
	Idx int
	arg gs.Arg
}

// Index returns an Arg that binds to parameter n.
func Index(n int, arg gs.Arg) gs.Arg {
	return IndexArg{Idx: n, arg: arg}
}

// GetArgValue is never called directly: ArgList unwraps the IndexArg before
// resolving its inner Arg.
func (a IndexArg) GetArgValue(ctx gs.ArgContext, t reflect.Type) (reflect.Value, error) {
	panic("unimplemented method")
}

// Arg returns the Arg bound at this index.
func (a IndexArg) Arg() gs.Arg {
	return a.arg
}

// ArgList binds a fixed/variadic parameter list to a slice of Args.
type ArgList struct {
	fnType reflect.Type
	args   []gs.Arg
}

// NewArgList validates args against fnType and returns the positional Arg
// slice that will feed Callable.Call.
func NewArgList(fnType reflect.Type, args []gs.Arg) (*ArgList, error) {
	if fnType.Kind() != reflect.Func {
		return nil, fmt.Errorf("NewArgList error << invalid function type:%s", fnType)
	}

	fixedArgCount := fnType.NumIn()
	if fnType.IsVariadic() {
		fixedArgCount--
	}

	shouldIndex := false
	if len(args) > 0 {
		_, shouldIndex = args[0].(IndexArg)
	}

	fnArgs := make([]gs.Arg, fixedArgCount)
	var extra []gs.Arg

	setIndexed := func(idx int, a gs.Arg) error {
		if idx < 0 || idx >= fixedArgCount {
			return fmt.Errorf("NewArgList error << invalid argument index %d", idx)
		}
		if fnArgs[idx] != nil {
			return fmt.Errorf("NewArgList error << found same index %d", idx)
		}
		fnArgs[idx] = a
		return nil
	}

	if shouldIndex {
		for _, raw := range args {
			ia, ok := raw.(IndexArg)
			if !ok {
				return nil, errors.New("NewArgList error << arguments must be all indexed or non-indexed")
			}
			switch {
			case ia.Idx < fixedArgCount:
				if err := setIndexed(ia.Idx, ia.arg); err != nil {
					return nil, err
				}
			case fnType.IsVariadic():
				extra = append(extra, ia.arg)
			default:
				return nil, fmt.Errorf("NewArgList error << invalid argument index %d", ia.Idx)
			}
		}
	} else {
		for i, raw := range args {
			if _, ok := raw.(IndexArg); ok {
				return nil, errors.New("NewArgList error << arguments must be all indexed or non-indexed")
			}
			switch {
			case i < fixedArgCount:
				fnArgs[i] = raw
			case fnType.IsVariadic():
				extra = append(extra, raw)
			default:
				return nil, fmt.Errorf("NewArgList error << too many arguments, got %d", len(args))
			}
		}
	}

	for i := range fnArgs {
		if fnArgs[i] == nil {
			fnArgs[i] = Tag("")
		}
	}
	fnArgs = append(fnArgs, extra...)

	return &ArgList{fnType: fnType, args: fnArgs}, nil
}

// get resolves every bound Arg against ctx, skipping those whose condition
// did not hold.
func (r *ArgList) get(ctx gs.ArgContext) ([]reflect.Value, error) {
	fnType := r.fnType
	numIn := fnType.NumIn()
	variadic := fnType.IsVariadic()
	result := make([]reflect.Value, 0, len(r.args))

	for idx, a := range r.args {
		var t reflect.Type
		if variadic && idx >= numIn-1 {
			t = fnType.In(numIn - 1).Elem()
		} else {
			t = fnType.In(idx)
		}
		v, err := a.GetArgValue(ctx, t)
		if err != nil {
			return nil, err
		}
		if v.IsValid() {
			result = append(result, v)
		}
	}
	return result, nil
}

// Callable wraps a constructor/producer function together with its bound
// arguments, and implements gs.Callable.
type Callable struct {
	fn      interface{}
	fnType  reflect.Type
	argList *ArgList
}

// NewCallable binds args against fn's parameter list.
func NewCallable(fn interface{}, args []gs.Arg) (*Callable, error) {
	fnType := reflect.TypeOf(fn)
	argList, err := NewArgList(fnType, args)
	if err != nil {
		return nil, err
	}
	return &Callable{fn: fn, fnType: fnType, argList: argList}, nil
}

// Arg returns the i-th bound Arg.
func (r *Callable) Arg(i int) (gs.Arg, bool) {
	if i < 0 || i >= len(r.argList.args) {
		return nil, false
	}
	return r.argList.args[i], true
}

// In returns the i-th input parameter type of the wrapped function.
func (r *Callable) In(i int) (reflect.Type, bool) {
	if i < 0 || i >= r.fnType.NumIn() {
		return nil, false
	}
	return r.fnType.In(i), true
}

// Call resolves the bound arguments and invokes the function. All return
// values, including a trailing error, are returned as they are; the call's
// error reports only a failure to resolve the arguments.
func (r *Callable) Call(ctx gs.ArgContext) ([]reflect.Value, error) {
	in, err := r.argList.get(ctx)
	if err != nil {
		return nil, err
	}
	return reflect.ValueOf(r.fn).Call(in), nil
}

// BindArg produces a single value by calling a bound function, conditioned
// on an optional gs.Condition. It's used for option-pattern setters such as
// those passed to a producer's constructor args.
type BindArg struct {
	fn       interface{}
	fnType   reflect.Type
	argList  *ArgList
	cond     gs.Condition
	fileline string
}

// Bind validates fn and its args eagerly, panicking on error. fn must
// return exactly one non-error value, optionally followed by an error.
func Bind(fn interface{}, args ...gs.Arg) *BindArg {
	fnType := reflect.TypeOf(fn)
	if fnType == nil || fnType.Kind() != reflect.Func || !validBindFunc(fnType) {
		panic(errors.New("invalid function type"))
	}

	argList, err := NewArgList(fnType, args)
	if err != nil {
		panic(err)
	}

	_, file, line, _ := runtime.Caller(1)
	return &BindArg{
		fn:       fn,
		fnType:   fnType,
		argList:  argList,
		fileline: fmt.Sprintf("%s:%d", file, line),
	}
}

func validBindFunc(t reflect.Type) bool {
	switch t.NumOut() {
	case 1:
		return !util.IsErrorType(t.Out(0))
	case 2:
		return util.IsErrorType(t.Out(1)) && !util.IsErrorType(t.Out(0))
	default:
		return false
	}
}

// Condition restricts when the bound function is invoked.
func (a *BindArg) Condition(c gs.Condition) *BindArg {
	a.cond = c
	return a
}

// GetArgValue checks the condition, then calls the bound function and
// returns its single value.
func (a *BindArg) GetArgValue(ctx gs.ArgContext, t reflect.Type) (reflect.Value, error) {
	if a.cond != nil {
		ok, err := ctx.Check(a.cond)
		if err != nil {
			return reflect.Value{}, err
		}
		if !ok {
			return reflect.Value{}, nil
		}
	}

	in, err := a.argList.get(ctx)
	if err != nil {
		return reflect.Value{}, err
	}

	out := reflect.ValueOf(a.fn).Call(in)
	if len(out) == 2 {
		if errVal := out[1].Interface(); errVal != nil {
			return reflect.Value{}, errVal.(error)
		}
	}

	v := out[0]
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("GetArgValue error << cannot assign type:%s to type:%s", v.Type(), t)
	}
	return v, nil
}
