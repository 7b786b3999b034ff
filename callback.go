/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package nullable

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"runtime"
	"strings"
)

// PanicError carries a non-error value recovered from a panicking callback.
// Panics with an error value (including runtime.Error) are reported as that
// error directly.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// errorType is the reflect.Type of the error interface.
var errorType = reflect.TypeFor[error]()

// recovered turns a recovered panic value into an error.
func recovered(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &PanicError{Value: r}
}

// guard runs fn and converts a panic into a returned error.
func guard[R any](fn func() (R, error)) (out R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recovered(r)
		}
	}()
	return fn()
}

// invocable reports whether fn can be called: a non-nil func value.
func invocable(fn any) bool {
	if fn == nil {
		return false
	}
	v := reflect.ValueOf(fn)
	return v.Kind() == reflect.Func && !v.IsNil()
}

// callDynamic invokes fn with args through reflection. Untyped nil args
// become the zero value of the matching parameter; values convertible to the
// parameter type are converted. Mismatches surface as the panic reflect
// raises, which guard reports as the error.
func callDynamic(fn any, args []any) ([]reflect.Value, error) {
	return guard(func() ([]reflect.Value, error) {
		v := reflect.ValueOf(fn)
		t := v.Type()
		in := make([]reflect.Value, len(args))
		for i, a := range args {
			pt := paramType(t, i)
			switch av := reflect.ValueOf(a); {
			case a == nil && pt != nil:
				in[i] = reflect.Zero(pt)
			case pt != nil && !av.Type().AssignableTo(pt) && av.Type().ConvertibleTo(pt):
				in[i] = av.Convert(pt)
			default:
				in[i] = av
			}
		}
		return v.Call(in), nil
	})
}

// paramType returns the type of the i-th argument of a call to t, taking
// variadic functions into account, or nil when i is out of range.
func paramType(t reflect.Type, i int) reflect.Type {
	n := t.NumIn()
	if t.IsVariadic() && i >= n-1 {
		return t.In(n - 1).Elem()
	}
	if i < n {
		return t.In(i)
	}
	return nil
}

// resultValue interprets the results of a dynamic supplier: (T) or
// (T, error).
func resultValue[T any](out []reflect.Value) (T, error) {
	var zero T
	switch len(out) {
	case 1:
	case 2:
		if !out[1].Type().Implements(errorType) {
			return zero, fmt.Errorf("nullable: second result is %s, not error", out[1].Type())
		}
		if err, _ := out[1].Interface().(error); err != nil {
			return zero, err
		}
	default:
		return zero, fmt.Errorf("nullable: supplier returns %d values, want 1 or 2", len(out))
	}

	raw := out[0].Interface()
	if raw == nil {
		return zero, nil
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("nullable: supplier returned %T, want %s", raw, reflect.TypeFor[T]())
	}
	return v, nil
}

// raisedValue interprets the results of a dynamic OrElseRaise supplier,
// which must return exactly one error.
func raisedValue(out []reflect.Value) (error, error) {
	if len(out) != 1 || !out[0].Type().Implements(errorType) {
		return nil, errors.New("nullable: raise supplier must return a single error")
	}
	err, _ := out[0].Interface().(error)
	if isAbsent(err) {
		return nil, ErrNilError
	}
	return err, nil
}

// describeCallback renders cb for error messages. For funcs it prefers the
// source line the function starts on, then "<name> (<file>:<line>)".
func describeCallback(cb any) string {
	if cb == nil {
		return "<nil>"
	}
	v := reflect.ValueOf(cb)
	if v.Kind() != reflect.Func {
		return fmt.Sprintf("%v", cb)
	}
	if v.IsNil() {
		return "<nil> " + v.Type().String()
	}

	fn := runtime.FuncForPC(v.Pointer())
	if fn == nil {
		return v.Type().String()
	}
	file, line := fn.FileLine(fn.Entry())
	if src, ok := sourceLine(file, line); ok {
		return src
	}
	return fmt.Sprintf("%s (%s:%d)", fn.Name(), file, line)
}

// sourceLine returns the trimmed text of line n in file, if readable.
func sourceLine(file string, n int) (string, bool) {
	if file == "" || n <= 0 {
		return "", false
	}
	f, err := os.Open(file)
	if err != nil {
		return "", false
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for i := 1; sc.Scan(); i++ {
		if i == n {
			s := strings.TrimSpace(sc.Text())
			return s, s != ""
		}
	}
	return "", false
}
