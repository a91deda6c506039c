package fields

import (
  "github.com/tidwall/gjson"
)

// Policy says what a decode failure of one member means for its container.
type Policy int

const (
  // Required members fail the whole container.
  Required Policy = iota
  // Defaulted members fall back to a fixed value.
  Defaulted
  // LenientPolicy members become nil on absence or failure.
  LenientPolicy
  // Recursive members are embedded containers of the same kind, lenient.
  Recursive
  // Reduced members are objects collapsed to their numeric id. A present
  // object without a usable id is fatal.
  Reduced
)

func (p Policy) String() string {
  switch p {
  case Required:
    return "required"
  case Defaulted:
    return "defaulted"
  case LenientPolicy:
    return "lenient"
  case Recursive:
    return "recursive"
  case Reduced:
    return "reduced"
  }
  return "unknown"
}

// Fatal reports whether a failure under p aborts the container decode.
func (p Policy) Fatal() bool {
  return p == Required || p == Reduced
}

// Reporter receives failures that a non-fatal policy swallowed.
type Reporter func(path string, err error)

// Rule is the declarative view of a Binding.
type Rule struct {
  Name   string
  Policy Policy
}

// Binding ties a member name and policy to a destination.
type Binding struct {
  Name   string
  Policy Policy
  apply  func(v gjson.Result, found bool, report Reporter) error
}

// Rules lists the name and policy of each binding, in decode order.
func Rules(bindings []Binding) []Rule {
  rules := make([]Rule, len(bindings))
  for i, b := range bindings {
    rules[i] = Rule{Name: b.Name, Policy: b.Policy}
  }
  return rules
}

func present(v gjson.Result, found bool) bool {
  return found && v.Type != gjson.Null
}

func Strict[T any](name string, dec Decoder[T], dst *T) Binding {
  return Binding{
    Name:   name,
    Policy: Required,
    apply: func(v gjson.Result, found bool, report Reporter) error {
      if !found {
        return ErrMissing
      }
      out, err := dec(v, report)
      if err != nil {
        return err
      }
      *dst = out
      return nil
    },
  }
}

func Default[T any](name string, dec Decoder[T], dst *T, value T) Binding {
  return Binding{
    Name:   name,
    Policy: Defaulted,
    apply: func(v gjson.Result, found bool, report Reporter) error {
      *dst = value
      if !present(v, found) {
        return nil
      }
      out, err := dec(v, report)
      if err != nil {
        return err
      }
      *dst = out
      return nil
    },
  }
}

func Lenient[T any](name string, dec Decoder[T], dst **T) Binding {
  return Binding{
    Name:   name,
    Policy: LenientPolicy,
    apply:  optional(Ref(dec), dst),
  }
}

// Nested binds an embedded container decoded by dec, usually the decoder
// that owns the binding.
func Nested[T any](name string, dec Decoder[*T], dst **T) Binding {
  return Binding{
    Name:   name,
    Policy: Recursive,
    apply:  optional(dec, dst),
  }
}

// ReducedID binds an object member to its "id". Anything but an object is
// treated as absent.
func ReducedID(name string, dst **int64) Binding {
  return Binding{
    Name:   name,
    Policy: Reduced,
    apply: func(v gjson.Result, found bool, _ Reporter) error {
      *dst = nil
      if !found || !v.IsObject() {
        return nil
      }
      id, err := Field(v, "id", Int64)
      if err != nil {
        return err
      }
      *dst = &id
      return nil
    },
  }
}

func optional[T any](dec Decoder[*T], dst **T) func(gjson.Result, bool, Reporter) error {
  return func(v gjson.Result, found bool, report Reporter) error {
    *dst = nil
    if !present(v, found) {
      return nil
    }
    out, err := dec(v, report)
    if err != nil {
      return err
    }
    *dst = out
    return nil
  }
}

// Decode checks that object is a JSON object and applies bindings in order.
// It returns at the first fatal failure. Swallowed failures of members that
// were present go to report, which may be nil, together with whatever the
// members themselves swallowed. The latter are only passed on when the
// member was kept.
func Decode(object gjson.Result, report Reporter, bindings ...Binding) error {
  if !object.IsObject() {
    return Invalid(ErrNotObject)
  }
  members := make(map[string]gjson.Result)
  object.ForEach(func(key, v gjson.Result) bool {
    if _, ok := members[key.Str]; !ok {
      members[key.Str] = v
    }
    return true
  })
  var held []discard
  var hold Reporter
  if report != nil {
    hold = func(path string, err error) {
      held = append(held, discard{path, err})
    }
  }
  for _, b := range bindings {
    held = held[:0]
    v, found := members[b.Name]
    err := b.apply(v, found, hold)
    if err == nil {
      for _, d := range held {
        report(join(b.Name, d.path), at(b.Name, d.err))
      }
      continue
    }
    if b.Policy.Fatal() {
      return at(b.Name, err)
    }
    if report != nil {
      report(b.Name, at(b.Name, err))
    }
  }
  return nil
}

type discard struct {
  path string
  err  error
}

// under scopes report to the member or index named by segment.
func under(report Reporter, segment string) Reporter {
  if report == nil {
    return nil
  }
  return func(path string, err error) {
    report(join(segment, path), at(segment, err))
  }
}
