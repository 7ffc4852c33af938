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

// Package intercept implements the interceptor chain (spec.md §4.8): a
// priority-ordered chain of responsibility wrapped around a bean method
// invocation or lifecycle callback.
//
// go-spring has no AOP layer to ground this on directly, so its shape
// follows the teacher's own middleware-chain style used for HTTP handlers
// elsewhere in the pack
// (_examples/deep-rent-nexus/middleware/middleware.go's Pipe/Chain:
// next-style continuation, applied outermost-first) generalized from
// http.Handler wrapping to arbitrary reflect.Method invocation.
package intercept

import (
	"reflect"
	"sort"

	"github.com/beanforge/cdi/internal/qualifier"
)

// Descriptor describes one interceptor bean: its interceptor bindings, its
// ordering priority, and which of the four lifecycle hooks it implements.
// Bean definitions carry no interceptor bindings to match these against.
type Descriptor struct {
	Type            reflect.Type
	Bindings        qualifier.Set
	Priority        int
	AroundInvoke    *reflect.Method
	AroundConstruct *reflect.Method
	PostConstruct   *reflect.Method
	PreDestroy      *reflect.Method
}

// Interceptor is implemented by interceptor beans that wrap method
// invocations.
type Interceptor interface {
	AroundInvoke(ic *InvocationContext) (interface{}, error)
}

// Invocation is one node in a built chain: an Interceptor and its priority.
// The call into the real method is not a node; Proceed makes it once every
// node has run.
type Invocation struct {
	Interceptor Interceptor
	Priority    int
}

// InvocationContext carries one method call through the chain. Proceed
// advances to the next interceptor, or, once every interceptor has run,
// invokes Method on Target with Args.
type InvocationContext struct {
	Target interface{}
	Method reflect.Method
	Args   []reflect.Value

	chain *Chain
	idx   int
}

// Chain is a priority-ordered sequence of interceptors built once per
// intercepted method (or once per lifecycle hook, reusing the same
// primitive with zero-arg invocations).
type Chain struct {
	Invocations []Invocation
}

// NewChain pairs each interceptor with the priority at the same index (0
// when priorities is shorter) and orders them ascending by priority (lower
// runs first, i.e. outermost). Every interceptor passed in is kept.
func NewChain(interceptors []Interceptor, priorities []int) *Chain {
	type pair struct {
		interceptor Interceptor
		priority    int
	}
	pairs := make([]pair, len(interceptors))
	for i, it := range interceptors {
		p := 0
		if i < len(priorities) {
			p = priorities[i]
		}
		pairs[i] = pair{it, p}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].priority < pairs[j].priority
	})

	c := &Chain{Invocations: make([]Invocation, len(pairs))}
	for i, p := range pairs {
		c.Invocations[i] = Invocation{Interceptor: p.interceptor, Priority: p.priority}
	}
	return c
}

// Invoke starts the chain against target/method/args, calling Proceed on
// the first interceptor (or straight through to method if the chain is
// empty).
func (c *Chain) Invoke(target interface{}, method reflect.Method, args []reflect.Value) (interface{}, error) {
	ic := &InvocationContext{Target: target, Method: method, Args: args, chain: c, idx: 0}
	return ic.Proceed()
}

// Proceed advances the chain: if more interceptors remain, it calls the
// next one's AroundInvoke (which is expected to call Proceed again to
// continue down the chain); once every interceptor has run, it invokes the
// real method via reflection.
func (ic *InvocationContext) Proceed() (interface{}, error) {
	if ic.idx < len(ic.chain.Invocations) {
		next := ic.chain.Invocations[ic.idx].Interceptor
		ic.idx++
		return next.AroundInvoke(ic)
	}

	callArgs := make([]reflect.Value, 0, len(ic.Args)+1)
	callArgs = append(callArgs, reflect.ValueOf(ic.Target))
	callArgs = append(callArgs, ic.Args...)

	out := ic.Method.Func.Call(callArgs)
	return unpackResult(out)
}

// unpackResult adapts a reflect.Method's (possibly zero-, one- or
// two-value) return into the chain's uniform (interface{}, error) shape,
// matching the lifecycle-hook reuse described in spec.md §4.8.
func unpackResult(out []reflect.Value) (interface{}, error) {
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		if err, ok := out[0].Interface().(error); ok {
			return nil, err
		}
		return out[0].Interface(), nil
	default:
		var err error
		if e, ok := out[len(out)-1].Interface().(error); ok {
			err = e
		}
		if len(out) == 2 {
			return out[0].Interface(), err
		}
		vals := make([]interface{}, len(out)-1)
		for i := 0; i < len(out)-1; i++ {
			vals[i] = out[i].Interface()
		}
		return vals, err
	}
}
