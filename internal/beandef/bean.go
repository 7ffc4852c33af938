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

// Package beandef implements the concrete bean definition/registration
// record that the rest of the container operates on.
package beandef

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/beanforge/cdi/conf"
	"github.com/beanforge/cdi/internal/arg"
	"github.com/beanforge/cdi/internal/cond"
	"github.com/beanforge/cdi/internal/contract"
	"github.com/beanforge/cdi/internal/qualifier"
	"github.com/beanforge/cdi/internal/scope"
	"github.com/beanforge/cdi/util"
)

// refreshableType is the [reflect.Type] of [gs.Refreshable].
var refreshableType = reflect.TypeFor[gs.Refreshable]()

// BeanStatus is the status of a bean as it flows through resolution and wiring.
type BeanStatus int8

const (
	StatusDeleted = BeanStatus(-1)
	StatusDefault = BeanStatus(iota)
	StatusResolving
	StatusResolved
	StatusCreating
	StatusCreated
	StatusWired
)

// String returns the lower-case name of the status.
func (s BeanStatus) String() string {
	switch s {
	case StatusDeleted:
		return "deleted"
	case StatusDefault:
		return "default"
	case StatusResolving:
		return "resolving"
	case StatusResolved:
		return "resolved"
	case StatusCreating:
		return "creating"
	case StatusCreated:
		return "created"
	case StatusWired:
		return "wired"
	default:
		return "unknown"
	}
}

// BeanInit is implemented by beans that want an init hook at wiring time.
type BeanInit interface {
	OnInit(ctx gs.Context) error
}

// BeanDestroy is implemented by beans that want a destroy hook at shutdown.
type BeanDestroy interface {
	OnDestroy()
}

// BeanMetadata stores the metadata attached to a bean definition.
type BeanMetadata struct {
	f       gs.Callable
	cond    []gs.Condition
	init    interface{}
	destroy interface{}
	depends []gs.BeanSelector
	exports []reflect.Type
	file    string
	line    int
	status  BeanStatus

	configuration *gs.Configuration

	enableRefresh bool
	refreshParam  conf.BindParam

	alternative bool
	priority    int
	quals       qualifier.Set

	scopeTag scope.Tag
}

// IsAlternative reports whether the bean only participates in resolution
// when explicitly selected via alternative/priority disambiguation.
func (d *BeanMetadata) IsAlternative() bool {
	return d.alternative
}

// Priority orders alternatives against one another; higher wins.
func (d *BeanMetadata) Priority() int {
	return d.priority
}

// Qualifiers returns the bean's declared qualifiers. An empty set is
// treated by qualifier.Set.Satisfies as carrying exactly qualifier.Default.
func (d *BeanMetadata) Qualifiers() qualifier.Set {
	return d.quals
}

// Scope returns the bean's scope tag. The zero value is scope.Dependent,
// the CDI default for beans that declare no scope.
func (d *BeanMetadata) Scope() scope.Tag {
	if d.scopeTag == "" {
		return scope.Dependent
	}
	return d.scopeTag
}

// Conditions returns the conditions attached to a bean.
func (d *BeanMetadata) Conditions() []gs.Condition {
	return d.cond
}

func (d *BeanMetadata) Init() interface{} {
	return d.init
}

func (d *BeanMetadata) Destroy() interface{} {
	return d.destroy
}

// DependsOn returns the bean's explicit, indirect dependencies.
func (d *BeanMetadata) DependsOn() []gs.BeanSelector {
	return d.depends
}

func (d *BeanMetadata) Exports() []reflect.Type {
	return d.exports
}

// Configuration returns the bean's configuration-scanning parameters, or
// nil if the bean isn't a configuration bean.
func (d *BeanMetadata) Configuration() *gs.Configuration {
	return d.configuration
}

func (d *BeanMetadata) EnableRefresh() bool {
	return d.enableRefresh
}

func (d *BeanMetadata) RefreshParam() conf.BindParam {
	return d.refreshParam
}

func (d *BeanMetadata) File() string {
	return d.file
}

func (d *BeanMetadata) Line() int {
	return d.line
}

// FileLine returns the bean's registration point.
func (d *BeanMetadata) FileLine() string {
	return fmt.Sprintf("%s:%d", d.file, d.line)
}

// Class returns a human-readable description of how the bean is created.
func (d *BeanMetadata) Class() string {
	if d.f == nil {
		return "object bean"
	}
	return "constructor bean"
}

// BeanRuntime stores the runtime identity of a bean: its value, type, and name.
type BeanRuntime struct {
	v        reflect.Value
	t        reflect.Type
	name     string
	typeName string
	primary  bool
	mocked   bool
}

// ID returns the bean's unique identifier.
func (d *BeanRuntime) ID() string {
	return d.typeName + ":" + d.name
}

// Name returns the bean's name.
func (d *BeanRuntime) Name() string {
	return d.name
}

// TypeName returns the fully qualified name of the bean's original type.
func (d *BeanRuntime) TypeName() string {
	return d.typeName
}

func (d *BeanRuntime) Callable() gs.Callable {
	return nil
}

// Interface returns the bean's underlying value.
func (d *BeanRuntime) Interface() interface{} {
	return d.v.Interface()
}

func (d *BeanRuntime) IsPrimary() bool {
	return d.primary
}

func (d *BeanRuntime) Type() reflect.Type {
	return d.t
}

func (d *BeanRuntime) Value() reflect.Value {
	return d.v
}

func (d *BeanRuntime) Status() BeanStatus {
	return StatusWired
}

// Mocked reports whether the bean's value has been replaced by a mock.
func (d *BeanRuntime) Mocked() bool {
	return d.mocked
}

func (d *BeanRuntime) Match(typeName string, beanName string) bool {
	typeIsSame := typeName == "" || d.typeName == typeName
	nameIsSame := beanName == "" || d.name == beanName
	return typeIsSame && nameIsSame
}

func (d *BeanRuntime) String() string {
	return d.name
}

// BeanDefinition is the concrete record of a single bean's metadata and
// runtime identity, and satisfies gs.BeanRegistration.
type BeanDefinition struct {
	*BeanMetadata
	*BeanRuntime
}

func (d *BeanDefinition) Callable() gs.Callable {
	return d.f
}

func (d *BeanDefinition) Status() BeanStatus {
	return d.status
}

func (d *BeanMetadata) SetStatus(status BeanStatus) {
	d.status = status
}

func (d *BeanDefinition) String() string {
	return fmt.Sprintf("name=%s %s", d.name, d.FileLine())
}

// TypeAndName returns the bean's type and name.
func (d *BeanDefinition) TypeAndName() (reflect.Type, string) {
	return d.Type(), d.Name()
}

// SetName sets the bean's name.
func (d *BeanDefinition) SetName(name string) {
	d.name = name
}

// SetCaller records the bean's registration point, skip frames above the caller.
func (d *BeanDefinition) SetCaller(skip int) {
	_, d.file, d.line, _ = runtime.Caller(skip)
}

// SetFileLine records the bean's registration point explicitly.
func (d *BeanDefinition) SetFileLine(file string, line int) {
	d.file = file
	d.line = line
}

// SetCondition appends a condition that must hold for the bean to be active.
func (d *BeanDefinition) SetCondition(c gs.Condition) {
	if c != nil {
		d.cond = append(d.cond, c)
	}
}

// OnProfiles restricts the bean to the given comma-separated profiles.
func (d *BeanDefinition) OnProfiles(profiles string) {
	d.SetCondition(cond.OnProfiles(profiles))
}

// SetDependsOn records the bean's indirect dependencies.
func (d *BeanDefinition) SetDependsOn(selectors ...gs.BeanSelector) {
	d.depends = append(d.depends, selectors...)
}

// SetPrimary marks the bean as the default pick among same-type beans.
func (d *BeanDefinition) SetPrimary() {
	d.primary = true
}

// validLifeCycleFunc reports whether fnType is a valid init/destroy function:
// exactly one parameter matching the bean's receiver type, and no return
// value or only an error return value.
func validLifeCycleFunc(fnType reflect.Type, beanValue reflect.Value) bool {
	if !util.IsFuncType(fnType) {
		return false
	}
	if fnType.NumIn() != 1 || !util.HasReceiver(fnType, beanValue) {
		return false
	}
	return util.ReturnNothing(fnType) || util.ReturnOnlyError(fnType)
}

// SetInit sets the bean's initialization function.
func (d *BeanDefinition) SetInit(fn interface{}) {
	if validLifeCycleFunc(reflect.TypeOf(fn), d.Value()) {
		d.init = fn
		return
	}
	panic(errors.New("init should be func(bean) or func(bean)error"))
}

// SetDestroy sets the bean's destroy function.
func (d *BeanDefinition) SetDestroy(fn interface{}) {
	if validLifeCycleFunc(reflect.TypeOf(fn), d.Value()) {
		d.destroy = fn
		return
	}
	panic(errors.New("destroy should be func(bean) or func(bean)error"))
}

// SetInitMethod sets the bean's initialization function by method name.
func (d *BeanDefinition) SetInitMethod(method string) {
	if _, ok := d.Type().MethodByName(method); !ok {
		panic(fmt.Errorf("method %s not found on type %s", method, d.Type()))
	}
	d.init = d.Value().MethodByName(method).Interface()
}

// SetDestroyMethod sets the bean's destroy function by method name.
func (d *BeanDefinition) SetDestroyMethod(method string) {
	if _, ok := d.Type().MethodByName(method); !ok {
		panic(fmt.Errorf("method %s not found on type %s", method, d.Type()))
	}
	d.destroy = d.Value().MethodByName(method).Interface()
}

// SetExport adds the interfaces that the bean exposes to consumers, besides
// its concrete type. Each export must be an interface type actually
// implemented by the bean.
func (d *BeanDefinition) SetExport(exports ...interface{}) {
	for _, o := range exports {
		t, ok := o.(reflect.Type)
		if !ok {
			t = reflect.TypeOf(o)
			if t.Kind() == reflect.Ptr {
				t = t.Elem()
			}
		}
		if t.Kind() != reflect.Interface {
			panic(errors.New("only interface type can be exported"))
		}
		if !d.Type().Implements(t) {
			panic(fmt.Errorf("doesn't implement interface %s", t))
		}
		exported := false
		for _, export := range d.exports {
			if t == export {
				exported = true
				break
			}
		}
		if exported {
			continue
		}
		d.exports = append(d.exports, t)
	}
}

// SetConfiguration marks the bean as a configuration bean, whose methods
// matching param's include/exclude patterns are scanned as nested beans.
func (d *BeanDefinition) SetConfiguration(param ...gs.Configuration) {
	if len(param) > 0 {
		c := param[0]
		d.configuration = &c
	} else {
		d.configuration = &gs.Configuration{}
	}
}

// SetMock replaces the bean's value with a mock object.
func (d *BeanDefinition) SetMock(obj interface{}) {
	d.v = reflect.ValueOf(obj)
	d.mocked = true
}

// SetAlternative marks the bean as a CDI-style alternative: considered
// during resolution only when it wins alternative/priority disambiguation
// against competing candidates (spec.md §4.5 step 3).
func (d *BeanDefinition) SetAlternative() {
	d.alternative = true
}

// SetPriority sets the bean's priority for alternative disambiguation.
func (d *BeanDefinition) SetPriority(priority int) {
	d.priority = priority
}

// SetQualifiers appends qualifiers the bean declares.
func (d *BeanDefinition) SetQualifiers(quals ...qualifier.Qualifier) {
	d.quals = append(d.quals, quals...)
}

// SetScope sets the bean's scope tag (spec.md §4.4/§4.8).
func (d *BeanDefinition) SetScope(tag scope.Tag) {
	d.scopeTag = tag
}

func (d *BeanDefinition) SetEnableRefresh(tag string) {
	if !d.Type().Implements(refreshableType) {
		panic(errors.New("must implement dync.Refreshable interface"))
	}
	d.enableRefresh = true
	err := d.refreshParam.BindTag(tag, "")
	if err != nil {
		panic(err)
	}
}

// makeBean is the whitebox constructor used internally and by tests; callers
// that need the polymorphic dispatch over objects, constructors, and method
// expressions should use NewBean instead.
func makeBean(t reflect.Type, v reflect.Value, f gs.Callable, name string) *BeanDefinition {
	return &BeanDefinition{
		BeanMetadata: &BeanMetadata{
			f:      f,
			status: StatusDefault,
		},
		BeanRuntime: &BeanRuntime{
			t:        t,
			v:        v,
			name:     name,
			typeName: util.TypeName(t),
		},
	}
}

// NewBean creates a bean definition from an object, a constructor function,
// or a method expression. A reflect.Value is always treated as an object,
// even if its underlying kind is Func. A plain function is treated as a
// constructor unless passed as a reflect.Value. Method expressions (such as
// (*T).Method) are detected from their runtime name and get an automatic
// condition requiring the declaring bean to exist; ctorArgs[0] may supply
// that declaring bean explicitly as a *gs.RegisteredBean, *gs.BeanDefinition,
// or an IndexArg[0] wrapping one of those.
func NewBean(objOrCtor interface{}, ctorArgs ...gs.Arg) *gs.BeanDefinition {
	var (
		f         *arg.Callable
		v         reflect.Value
		fromValue bool
		name      string
		condition gs.Condition
	)

	switch i := objOrCtor.(type) {
	case reflect.Value:
		fromValue = true
		v = i
	default:
		v = reflect.ValueOf(i)
	}

	t := v.Type()
	if !util.IsBeanType(t) {
		panic(errors.New("bean must be ref type"))
	}
	if !v.IsValid() || v.IsNil() {
		panic(errors.New("bean can't be nil"))
	}

	if !fromValue && t.Kind() == reflect.Func {
		if !util.IsConstructor(t) {
			panic(errors.New("constructor should be func(...)bean or func(...)(bean, error)"))
		}

		var err error
		f, err = arg.NewCallable(objOrCtor, ctorArgs)
		if err != nil {
			panic(err)
		}

		var in0 reflect.Type
		if t.NumIn() > 0 {
			in0 = t.In(0)
		}

		out0 := t.Out(0)
		v = reflect.New(out0)
		if util.IsBeanType(out0) {
			v = v.Elem()
		}

		t = v.Type()
		if !util.IsBeanType(t) {
			panic(errors.New("bean must be ref type"))
		}

		fnPtr := reflect.ValueOf(objOrCtor).Pointer()
		fnInfo := runtime.FuncForPC(fnPtr)
		funcName := fnInfo.Name()
		name = funcName[strings.LastIndex(funcName, "/")+1:]
		name = name[strings.Index(name, ".")+1:]
		if name[0] == '(' {
			name = name[strings.Index(name, ".")+1:]
		}

		if strings.LastIndexByte(fnInfo.Name(), ')') > 0 {
			selector := gs.BeanSelector{Type: in0}
			if len(ctorArgs) > 0 {
				switch a := ctorArgs[0].(type) {
				case *gs.RegisteredBean:
					typ, nm := a.TypeAndName()
					selector = gs.BeanSelector{Type: typ, Name: nm}
				case *gs.BeanDefinition:
					typ, nm := a.TypeAndName()
					selector = gs.BeanSelector{Type: typ, Name: nm}
				case arg.IndexArg:
					if a.Idx == 0 {
						switch x := a.Arg().(type) {
						case *gs.RegisteredBean:
							typ, nm := x.TypeAndName()
							selector = gs.BeanSelector{Type: typ, Name: nm}
						case *gs.BeanDefinition:
							typ, nm := x.TypeAndName()
							selector = gs.BeanSelector{Type: typ, Name: nm}
						default:
							panic(errors.New("the arg of IndexArg[0] should be *RegisteredBean or *BeanDefinition"))
						}
					}
				default:
					panic(errors.New("ctorArgs[0] should be *RegisteredBean or *BeanDefinition or IndexArg[0]"))
				}
			}
			condition = cond.OnBean(selector)
		}
	}

	if name == "" {
		s := strings.Split(t.String(), ".")
		name = strings.TrimPrefix(s[len(s)-1], "*")
	}

	d := makeBean(t, v, f, name)
	if condition != nil {
		d.SetCondition(condition)
	}
	return gs.NewBeanDefinition(d)
}
