// Package fields extracts typed values from parsed JSON objects.
//
// Every decoder here works on a gjson.Result that has already been parsed
// by the caller. Failures are reported as *FieldError values which match
// ErrInvalidResponse.
package fields

import (
  "fmt"
  "math"
  "strconv"

  "github.com/pkg/errors"
  "github.com/tidwall/gjson"
)

// Decoder converts one JSON value into T. Failures that lenient members
// swallowed along the way go to report, with paths relative to v. A nil
// report drops them.
type Decoder[T any] func(v gjson.Result, report Reporter) (T, error)

// Scalar lifts a decoder of a single value, which has nothing to report.
func Scalar[T any](f func(v gjson.Result) (T, error)) Decoder[T] {
  return func(v gjson.Result, _ Reporter) (T, error) {
    return f(v)
  }
}

// Lookup finds name among the keys of object. The name is matched exactly,
// it is never interpreted as a gjson path.
func Lookup(object gjson.Result, name string) (value gjson.Result, found bool) {
  object.ForEach(func(key, v gjson.Result) bool {
    if key.Str == name {
      value, found = v, true
      return false
    }
    return true
  })
  return
}

// Field decodes the member name of object, failing when it is absent or
// does not have the shape dec expects.
func Field[T any](object gjson.Result, name string, dec Decoder[T]) (T, error) {
  var zero T
  if !object.IsObject() {
    return zero, Invalid(ErrNotObject)
  }
  v, found := Lookup(object, name)
  if !found {
    return zero, at(name, ErrMissing)
  }
  out, err := dec(v, nil)
  if err != nil {
    return zero, at(name, err)
  }
  return out, nil
}

// Optional is the lenient form of Field: absent, null and undecodable
// members all yield nil.
func Optional[T any](object gjson.Result, name string, dec Decoder[T]) *T {
  out, err := Field(object, name, dec)
  if err != nil {
    return nil
  }
  return &out
}

var (
  String = Scalar(stringValue)
  Bool   = Scalar(boolValue)
  // Int64 accepts integral number literals only. The raw literal is parsed
  // so ids above 2^53 keep their precision.
  Int64 = Scalar(int64Value)
  Int32 = Scalar(int32Value)
)

func stringValue(v gjson.Result) (string, error) {
  if v.Type != gjson.String {
    return "", wrongType("string", v)
  }
  return v.Str, nil
}

func boolValue(v gjson.Result) (bool, error) {
  if !v.IsBool() {
    return false, wrongType("bool", v)
  }
  return v.Bool(), nil
}

func int64Value(v gjson.Result) (int64, error) {
  if v.Type != gjson.Number {
    return 0, wrongType("integer", v)
  }
  n, err := strconv.ParseInt(v.Raw, 10, 64)
  if err != nil {
    return 0, errors.Wrapf(ErrWrongType, "want integer, got %s", v.Raw)
  }
  return n, nil
}

func int32Value(v gjson.Result) (int32, error) {
  n, err := int64Value(v)
  if err != nil {
    return 0, err
  }
  if n < math.MinInt32 || n > math.MaxInt32 {
    return 0, errors.Wrapf(ErrWrongType, "%d overflows int32", n)
  }
  return int32(n), nil
}

// List decodes an array element by element. The result is never nil, so an
// empty array stays distinguishable from an absent member.
func List[T any](dec Decoder[T]) Decoder[[]T] {
  return func(v gjson.Result, report Reporter) ([]T, error) {
    if !v.IsArray() {
      return nil, wrongType("array", v)
    }
    items := v.Array()
    out := make([]T, 0, len(items))
    for i, item := range items {
      x, err := dec(item, under(report, fmt.Sprintf("[%d]", i)))
      if err != nil {
        return nil, at(fmt.Sprintf("[%d]", i), err)
      }
      out = append(out, x)
    }
    return out, nil
  }
}

// Pair decodes an array of exactly two elements.
func Pair[T any](dec Decoder[T]) Decoder[[2]T] {
  list := List(dec)
  return func(v gjson.Result, report Reporter) (out [2]T, err error) {
    items, err := list(v, report)
    if err != nil {
      return
    }
    if len(items) != 2 {
      err = errors.Wrapf(ErrWrongType, "want 2 elements, got %d", len(items))
      return
    }
    out[0], out[1] = items[0], items[1]
    return
  }
}

// Ref boxes the result of dec.
func Ref[T any](dec Decoder[T]) Decoder[*T] {
  return func(v gjson.Result, report Reporter) (*T, error) {
    out, err := dec(v, report)
    if err != nil {
      return nil, err
    }
    return &out, nil
  }
}

// Object builds a decoder for a struct whose members are described by bind.
// Nothing decoded so far is returned when a required member fails.
func Object[T any](bind func(*T) []Binding) Decoder[T] {
  return func(v gjson.Result, report Reporter) (T, error) {
    var out T
    if err := Decode(v, report, bind(&out)...); err != nil {
      var zero T
      return zero, err
    }
    return out, nil
  }
}
