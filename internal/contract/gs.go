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

package gs

import (
	"context"
	"fmt"
	"reflect"
	"unsafe"

	"github.com/beanforge/cdi/conf"
	"github.com/beanforge/cdi/internal/qualifier"
	"github.com/beanforge/cdi/internal/scope"
	"github.com/beanforge/cdi/util"
)

// A BeanSelector narrows a bean lookup by type and, optionally, by name.
type BeanSelector struct {
	Type reflect.Type
	Name string
}

// BeanSelectorFor builds a BeanSelector for type T, optionally constrained by name.
func BeanSelectorFor[T any](name ...string) BeanSelector {
	var n string
	if len(name) > 0 {
		n = name[0]
	}
	return BeanSelector{Type: reflect.TypeFor[T](), Name: n}
}

// TypeAndName returns the selector's type and name.
func (s BeanSelector) TypeAndName() (reflect.Type, string) {
	return s.Type, s.Name
}

// String returns the string representation of the bean selector.
func (s BeanSelector) String() string {
	if s.Name == "" {
		return fmt.Sprintf("{Type:%s}", util.TypeName(s.Type))
	}
	return fmt.Sprintf("{Type:%s,Name:%s}", util.TypeName(s.Type), s.Name)
}

// BeanID uniquely identifies a registered bean by type and name.
type BeanID struct {
	Name string
	Type reflect.Type
}

// Selector is anything that can be resolved to a type/name pair identifying
// a bean: a BeanSelector, a *RegisteredBean, or a *BeanDefinition.
type Selector interface {
	TypeAndName() (reflect.Type, string)
}

// BeanMock pairs a replacement object with the selector of the bean it overrides.
type BeanMock struct {
	Object interface{} // Mock instance to replace the target bean.
	Target Selector    // Selector identifying the target bean.
}

// BeanSelectorToString returns the string representation of the bean selector
// the way conditions render it: a bare name when only a name is set, a bare
// type name followed by ':' when only a type is set, or both combined.
func BeanSelectorToString(s BeanSelector) string {
	switch {
	case s.Type == nil:
		return s.Name
	case s.Name == "":
		return util.TypeName(s.Type) + ":"
	default:
		return util.TypeName(s.Type) + ":" + s.Name
	}
}

// As returns the reflect.Type of interface T. It panics if T is not an interface.
func As[T any]() reflect.Type {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Interface {
		panic("T must be interface")
	}
	return t
}

/********************************** condition ********************************/

type CondBean interface {
	ID() string
	Name() string
	TypeName() string
	Type() reflect.Type
}

// CondContext defines some methods of IoC container that conditions use.
type CondContext interface {
	// Has returns whether the IoC container has a property.
	Has(key string) bool
	// Prop returns the property's value when the IoC container has it, or
	// returns empty string when the IoC container doesn't have it.
	Prop(key string, opts ...conf.GetOption) string
	// Find returns bean definitions that matched with the bean selector.
	Find(selector BeanSelector) ([]CondBean, error)
}

// CondFunc is a function that returns true when the condition is met.
type CondFunc func(ctx CondContext) (bool, error)

// Condition is used when registering a bean to determine whether it's valid.
type Condition interface {
	Matches(ctx CondContext) (bool, error)
}

/************************************* arg ***********************************/

// Arg supplies a bound value for a single function parameter. Implementations
// include a property/bean reference tag, a plain user-supplied value, an
// indexed wrapper around another Arg, a bean reference (RegisteredBean or
// BeanDefinition), and a bound-function producer used for option-style setters.
type Arg interface {
	// GetArgValue resolves the value to assign to a parameter of type t.
	// An invalid, nil-error return means the argument was skipped (its
	// condition did not hold).
	GetArgValue(ctx ArgContext, t reflect.Type) (reflect.Value, error)
}

// ArgContext defines some methods of IoC container that Callable use.
type ArgContext interface {
	// Check returns true when the Condition returns true,
	// and returns false when the Condition returns false.
	Check(c Condition) (bool, error)
	// Bind binds properties value by the "value" tag.
	Bind(v reflect.Value, tag string) error
	// Wire wires dependent beans by the "autowire" tag.
	Wire(v reflect.Value, tag string) error
}

type Callable interface {
	Arg(i int) (Arg, bool)
	In(i int) (reflect.Type, bool)
	Call(ctx ArgContext) ([]reflect.Value, error)
}

/*********************************** conf ************************************/

type Properties interface {
	Data() map[string]string
	Keys() []string
	Has(key string) bool
	SubKeys(key string) ([]string, error)
	Get(key string, opts ...conf.GetOption) string
	Resolve(s string) (string, error)
	Bind(i interface{}, args ...conf.BindArg) error
	CopyTo(out *conf.Properties) error
}

// Refreshable 可动态刷新的对象
type Refreshable interface {
	OnRefresh(prop Properties, param conf.BindParam) error
}

/*********************************** bean ************************************/

// Configuration describes which methods of a configuration bean should be
// scanned for nested bean-producing methods.
type Configuration struct {
	Includes []string // method names to include, glob-matched
	Excludes []string // method names to exclude, glob-matched
}

// BeanRegistration provides methods for configuring bean metadata.
type BeanRegistration interface {
	ID() string
	Name() string
	Type() reflect.Type
	Value() reflect.Value
	SetCaller(skip int)
	SetName(name string)
	SetCondition(cond Condition)
	SetDependsOn(selectors ...BeanSelector)
	SetPrimary()
	SetInit(fn interface{})
	SetInitMethod(method string)
	SetDestroy(fn interface{})
	SetDestroyMethod(method string)
	SetExport(exports ...interface{})
	SetConfiguration(param ...Configuration)
	SetEnableRefresh(tag string)
	OnProfiles(profiles string)
	SetAlternative()
	SetPriority(priority int)
	SetQualifiers(quals ...qualifier.Qualifier)
	SetScope(tag scope.Tag)
}

// beanBuilder helps configure a bean during its creation.
type beanBuilder[T any] struct {
	b BeanRegistration
}

// BeanRegistration returns the underlying BeanRegistration instance.
func (d *beanBuilder[T]) BeanRegistration() BeanRegistration {
	return d.b
}

// ID returns the unique identifier of the bean.
func (d *beanBuilder[T]) ID() string {
	return d.b.ID()
}

// Type returns the [reflect.Type] of the bean.
func (d *beanBuilder[T]) Type() reflect.Type {
	return d.b.Type()
}

// Name sets the name of the bean.
func (d *beanBuilder[T]) Name(name string) *T {
	d.b.SetName(name)
	return *(**T)(unsafe.Pointer(&d))
}

// Caller sets the caller information for the bean.
func (d *beanBuilder[T]) Caller(skip int) *T {
	d.b.SetCaller(skip)
	return *(**T)(unsafe.Pointer(&d))
}

// Condition sets the condition of the bean.
func (d *beanBuilder[T]) Condition(cond Condition) *T {
	d.b.SetCondition(cond)
	return *(**T)(unsafe.Pointer(&d))
}

// DependsOn sets the dependencies for the bean.
func (d *beanBuilder[T]) DependsOn(selectors ...BeanSelector) *T {
	d.b.SetDependsOn(selectors...)
	return *(**T)(unsafe.Pointer(&d))
}

// Primary marks the bean as primary.
func (d *beanBuilder[T]) Primary() *T {
	d.b.SetPrimary()
	return *(**T)(unsafe.Pointer(&d))
}

// Init sets the initialization function.
func (d *beanBuilder[T]) Init(fn interface{}) *T {
	d.b.SetInit(fn)
	return *(**T)(unsafe.Pointer(&d))
}

// Destroy sets the destroy function.
func (d *beanBuilder[T]) Destroy(fn interface{}) *T {
	d.b.SetDestroy(fn)
	return *(**T)(unsafe.Pointer(&d))
}

// Export sets the interfaces to export.
func (d *beanBuilder[T]) Export(exports ...interface{}) *T {
	d.b.SetExport(exports...)
	return *(**T)(unsafe.Pointer(&d))
}

func (d *beanBuilder[T]) Configuration(param ...Configuration) *T {
	d.b.SetConfiguration(param...)
	return *(**T)(unsafe.Pointer(&d))
}

func (d *beanBuilder[T]) EnableRefresh(tag string) *T {
	d.b.SetEnableRefresh(tag)
	return *(**T)(unsafe.Pointer(&d))
}

// InitMethod sets the name of the initialization method.
func (d *beanBuilder[T]) InitMethod(method string) *T {
	d.b.SetInitMethod(method)
	return *(**T)(unsafe.Pointer(&d))
}

// DestroyMethod sets the name of the destroy method.
func (d *beanBuilder[T]) DestroyMethod(method string) *T {
	d.b.SetDestroyMethod(method)
	return *(**T)(unsafe.Pointer(&d))
}

// OnProfiles restricts the bean to the given comma-separated profiles.
func (d *beanBuilder[T]) OnProfiles(profiles string) *T {
	d.b.OnProfiles(profiles)
	return *(**T)(unsafe.Pointer(&d))
}

// Alternative marks the bean as a CDI-style alternative, considered during
// resolution only via alternative/priority disambiguation.
func (d *beanBuilder[T]) Alternative() *T {
	d.b.SetAlternative()
	return *(**T)(unsafe.Pointer(&d))
}

// Priority sets the bean's priority, used to order alternatives.
func (d *beanBuilder[T]) Priority(priority int) *T {
	d.b.SetPriority(priority)
	return *(**T)(unsafe.Pointer(&d))
}

// Qualifier attaches qualifiers to the bean.
func (d *beanBuilder[T]) Qualifier(quals ...qualifier.Qualifier) *T {
	d.b.SetQualifiers(quals...)
	return *(**T)(unsafe.Pointer(&d))
}

// Scope sets the bean's scope tag (spec.md §4.4/§4.8); the default is
// scope.Dependent.
func (d *beanBuilder[T]) Scope(tag scope.Tag) *T {
	d.b.SetScope(tag)
	return *(**T)(unsafe.Pointer(&d))
}

// TypeAndName returns the type and name of the underlying bean.
func (d *beanBuilder[T]) TypeAndName() (reflect.Type, string) {
	return d.b.Type(), d.b.Name()
}

// GetArgValue resolves the underlying bean's value as an argument, satisfying gs.Arg.
func (d *beanBuilder[T]) GetArgValue(ctx ArgContext, t reflect.Type) (reflect.Value, error) {
	v := d.b.Value()
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("GetArgValue error << %s is not assignable to %s", v.Type(), t)
	}
	return v, nil
}

// RegisteredBean represents a bean that has been registered.
type RegisteredBean struct {
	beanBuilder[RegisteredBean]
}

// NewRegisteredBean creates a new RegisteredBean instance.
func NewRegisteredBean(d BeanRegistration) *RegisteredBean {
	return &RegisteredBean{
		beanBuilder: beanBuilder[RegisteredBean]{d},
	}
}

// BeanDefinition represents a bean that has not yet been registered.
type BeanDefinition struct {
	beanBuilder[BeanDefinition]
}

// NewBeanDefinition creates a new BeanDefinition instance.
func NewBeanDefinition(d BeanRegistration) *BeanDefinition {
	return &BeanDefinition{
		beanBuilder: beanBuilder[BeanDefinition]{d},
	}
}

/************************************ ioc ************************************/

// Container represents the modifiable aspects of an IoC container.
type Container interface {

	// Object registers a bean with the given object instance.
	Object(i interface{}) *RegisteredBean

	// Provide registers a bean using the given constructor function.
	Provide(ctor interface{}, args ...Arg) *RegisteredBean

	// Register registers a bean using the given bean definition.
	Register(b *BeanDefinition) *RegisteredBean

	// GroupRegister registers beans by executing the given function.
	GroupRegister(fn func(p Properties) ([]*BeanDefinition, error))

	// RefreshProperties updates the properties of the container.
	RefreshProperties(p Properties) error

	// Refresh initializes and wires all beans in the container.
	Refresh() error

	// ReleaseUnusedMemory releases unused memory by cleaning up unnecessary resources.
	ReleaseUnusedMemory()

	// Close closes the container and cleans up resources.
	Close()
}

// Context represents the unmodifiable (or runtime) aspects of an IoC container.
type Context interface {

	// Context returns the root context.Context of the container.
	Context() context.Context

	// Keys returns all keys present in the container's properties.
	Keys() []string

	// Has checks if a key exists in the container's properties.
	Has(key string) bool

	// SubKeys returns sub-keys under the specified key in the container's properties.
	SubKeys(key string) ([]string, error)

	// Prop retrieves the value of the specified key from the container's properties.
	Prop(key string, opts ...conf.GetOption) string

	// Resolve resolves placeholders or references in the given string.
	Resolve(s string) (string, error)

	// Bind binds the value of the specified key to the provided struct or variable.
	Bind(i interface{}, opts ...conf.BindArg) error

	// Get retrieves a bean of the specified type using the provided selectors.
	Get(i interface{}, selectors ...BeanSelector) error

	// Wire creates and returns a wired bean using the provided object or constructor function.
	Wire(objOrCtor interface{}, ctorArgs ...Arg) (interface{}, error)

	// Invoke calls the provided function with the specified arguments.
	Invoke(fn interface{}, args ...Arg) ([]interface{}, error)

	// Go runs the provided function in a new goroutine. When the container is closed,
	// the context.Context will be canceled.
	Go(fn func(ctx context.Context))
}

// ContextAware is used to inject the gs.Context into a bean.
type ContextAware struct {
	GSContext Context `autowire:""`
}
