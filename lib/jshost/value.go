// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jshost

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dop251/goja"
)

// Env is the environment descriptor passed to function exports as
// their single argument, seen by config code as { mode }.
type Env struct {
	Mode string `json:"mode"`
}

// Export is the raw value a config module exported: a plain value, a
// promise, or a function of Env returning either.
type Export struct {
	host  *Host
	path  string
	value goja.Value
}

// IsFunction reports whether the export must be invoked.
func (e *Export) IsFunction() bool {
	_, ok := goja.AssertFunction(e.value)
	return ok
}

// Resolve turns the export into the config value: a function export is
// called once with env, then promises are awaited by running the event
// loop until it is idle. A rejected promise or an exception from the
// function is returned as an *ExecutionError. A promise still pending
// once the loop is idle can never settle and is also an error.
func (e *Export) Resolve(ctx context.Context, env Env) (*Value, error) {
	result := e.value
	err := e.host.run(ctx, func(vm *goja.Runtime) error {
		function, ok := goja.AssertFunction(e.value)
		if !ok {
			return nil
		}
		argument := vm.NewObject()
		if err := argument.Set("mode", env.Mode); err != nil {
			return err
		}
		returned, err := function(goja.Undefined(), argument)
		if err != nil {
			return err
		}
		result = returned
		return nil
	})
	if err != nil {
		return nil, &ExecutionError{Path: e.path, Err: err}
	}

	settled, err := settle(result)
	if err != nil {
		return nil, &ExecutionError{Path: e.path, Err: err}
	}
	return &Value{host: e.host, value: settled}, nil
}

// settle unwraps a promise whose jobs have all run.
func settle(value goja.Value) (goja.Value, error) {
	object, ok := value.(*goja.Object)
	if !ok {
		return value, nil
	}
	promise, ok := object.Export().(*goja.Promise)
	if !ok {
		return value, nil
	}
	switch promise.State() {
	case goja.PromiseStateFulfilled:
		return promise.Result(), nil
	case goja.PromiseStateRejected:
		return nil, rejectionError(promise.Result())
	default:
		return nil, errors.New("config promise never settled")
	}
}

// rejectionError converts a promise rejection reason to a Go error,
// preferring an Error object's message.
func rejectionError(reason goja.Value) error {
	if object, ok := reason.(*goja.Object); ok {
		if message := object.Get("message"); message != nil && !goja.IsUndefined(message) {
			return fmt.Errorf("config promise rejected: %s", message.String())
		}
	}
	if reason == nil {
		return errors.New("config promise rejected")
	}
	return fmt.Errorf("config promise rejected: %s", reason.String())
}

// Value is a resolved config value still owned by its runtime.
type Value struct {
	host  *Host
	value goja.Value
}

// IsPlainObject reports whether the value is an ordinary object: not
// an array, function, promise, date, or primitive.
func (v *Value) IsPlainObject() bool {
	object, ok := v.value.(*goja.Object)
	return ok && object.ClassName() == "Object"
}

// Kind describes the value's type for error messages: "object",
// "array", "function", "string", "number", "null", and so on.
func (v *Value) Kind() string {
	if v.value == nil || goja.IsUndefined(v.value) {
		return "undefined"
	}
	if goja.IsNull(v.value) {
		return "null"
	}
	if object, ok := v.value.(*goja.Object); ok {
		return strings.ToLower(object.ClassName())
	}
	switch v.value.Export().(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case int64, float64:
		return "number"
	case *big.Int:
		return "bigint"
	default:
		return "symbol"
	}
}

// Export returns the value as plain Go data: objects become
// map[string]any, arrays []any, functions
// func(goja.FunctionCall) goja.Value.
func (v *Value) Export() any {
	return v.value.Export()
}

// Decode stores the value in target, which must be a non-nil pointer.
// Struct fields are matched by their json tag name, or by the field
// name with its first letter lowercased when untagged; fields tagged
// "-" are skipped.
func (v *Value) Decode(target any) error {
	if v.host.vm == nil {
		return errors.New("jshost: value has no runtime")
	}
	if err := v.host.vm.ExportTo(v.value, target); err != nil {
		return fmt.Errorf("decoding config into %T: %w", target, err)
	}
	return nil
}

// fieldNameMapper exposes Go struct fields and methods to JavaScript
// under the names encoding/json would use.
type fieldNameMapper struct{}

func (fieldNameMapper) FieldName(_ reflect.Type, field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		if name == "-" {
			return ""
		}
		return name
	}
	return lowerFirst(field.Name)
}

func (fieldNameMapper) MethodName(_ reflect.Type, method reflect.Method) string {
	return lowerFirst(method.Name)
}

func lowerFirst(name string) string {
	first, size := utf8.DecodeRuneInString(name)
	if first == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(first)) + name[size:]
}
