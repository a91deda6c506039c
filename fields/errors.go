package fields

import (
  "fmt"
  "strings"

  "github.com/pkg/errors"
  "github.com/tidwall/gjson"
)

var (
  // ErrInvalidResponse matches every structural decode failure.
  ErrInvalidResponse = errors.New("invalid response")

  ErrMissing   = errors.New("missing field")
  ErrWrongType = errors.New("wrong type")
  ErrNotObject = errors.New("not an object")
)

// FieldError reports where a strict decode failed. Path is empty when the
// value handed to the decoder was itself malformed.
type FieldError struct {
  Path string
  Err  error
}

func (e *FieldError) Error() string {
  if e.Path == "" {
    return fmt.Sprintf("%v: %v", ErrInvalidResponse, e.Err)
  }
  return fmt.Sprintf("%v: %s: %v", ErrInvalidResponse, e.Path, e.Err)
}

func (e *FieldError) Unwrap() error {
  return e.Err
}

func (e *FieldError) Is(target error) bool {
  return target == ErrInvalidResponse
}

// Invalid wraps a shape failure of the value itself.
func Invalid(cause error) error {
  return &FieldError{Err: cause}
}

func wrongType(want string, v gjson.Result) error {
  return errors.Wrapf(ErrWrongType, "want %s, got %s", want, kind(v))
}

func kind(v gjson.Result) string {
  switch {
  case v.IsObject():
    return "object"
  case v.IsArray():
    return "array"
  case v.IsBool():
    return "bool"
  }
  return strings.ToLower(v.Type.String())
}

// at prefixes the path of err with segment.
func at(segment string, err error) error {
  var fe *FieldError
  if !errors.As(err, &fe) {
    return &FieldError{Path: segment, Err: err}
  }
  return &FieldError{Path: join(segment, fe.Path), Err: fe.Err}
}

// join appends path to segment. Paths that start with "[" are appended
// without a dot.
func join(segment, path string) string {
  switch {
  case path == "":
    return segment
  case strings.HasPrefix(path, "["):
    return segment + path
  }
  return segment + "." + path
}
