package guard

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/samber/lo"
)

// Enum constrains enum checks to integer-underlying types, the shape Go
// enums take in practice.
type Enum interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// EnumSpec describes an enumeration type for validation. Go has no enum
// introspection, so the defined members and the flags marker are
// declared once per type, typically as a package-level variable next to
// the enum's constants.
//
//	var weekdaySpec = guard.EnumSpec[Weekday]{
//		Values: []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday},
//	}
type EnumSpec[E Enum] struct {
	// Flags marks a bit-flag enumeration whose members combine via
	// bitwise OR.
	Flags bool

	// Values lists every defined member of the type.
	Values []E

	// Names optionally maps members to display names for failure
	// messages. Unnamed values fall back to fmt.Stringer, then to the
	// underlying number.
	Names map[E]string
}

// ValidEnum checks that value is valid for the enumeration described by
// spec: membership in spec.Values for plain enums, or any OR-combination
// of defined bits for flag enums.
func ValidEnum[E Enum](value E, spec EnumSpec[E], label string) error {
	if !Enabled() {
		return nil
	}
	return checkEnum(value, spec, spec.Values, label)
}

// PermittedEnum checks value against an explicit subset of permitted
// members rather than everything the type defines. A defined member
// outside the subset is reported distinctly from an undefined value.
func PermittedEnum[E Enum](value E, spec EnumSpec[E], permitted []E, label string) error {
	if !Enabled() {
		return nil
	}
	if permitted == nil {
		return &NilArgumentError{Label: "permitted"}
	}
	if len(permitted) == 0 {
		return &InvalidArgumentError{Label: "permitted", Message: "cannot be empty"}
	}
	return checkEnum(value, spec, permitted, label)
}

func checkEnum[E Enum](value E, spec EnumSpec[E], permitted []E, label string) error {
	if spec.Flags {
		return checkFlags(value, spec, permitted, label)
	}
	if lo.Contains(permitted, value) {
		return nil
	}
	if lo.Contains(spec.Values, value) {
		return &InvalidArgumentError{
			Label: label,
			Message: fmt.Sprintf("enum value '%s' is defined for enumeration '%s' but it is not permitted in this context",
				enumDisplay(value, spec), enumTypeName[E]()),
		}
	}
	return &InvalidArgumentError{
		Label: label,
		Message: fmt.Sprintf("enum value '%s' is not defined for enumeration '%s'",
			enumDisplay(value, spec), enumTypeName[E]()),
	}
}

// checkFlags accepts any OR-combination of permitted bits, including
// combinations that have no named member. All values are compared in a
// common signed 64-bit representation.
func checkFlags[E Enum](value E, spec EnumSpec[E], permitted []E, label string) error {
	remaining := int64(value)
	if remaining == 0 {
		// Zero is valid only when the permitted set itself contains a
		// zero-valued member (a conventional None).
		if lo.SomeBy(permitted, func(p E) bool { return int64(p) == 0 }) {
			return nil
		}
		return flagsError(value, spec, label)
	}
	for _, p := range permitted {
		remaining &^= int64(p)
	}
	if remaining != 0 {
		return flagsError(value, spec, label)
	}
	return nil
}

func flagsError[E Enum](value E, spec EnumSpec[E], label string) error {
	return &InvalidArgumentError{
		Label: label,
		Message: fmt.Sprintf("enum value '%s' is not valid for flags enumeration '%s'",
			enumDisplay(value, spec), enumTypeName[E]()),
	}
}

func enumDisplay[E Enum](value E, spec EnumSpec[E]) string {
	if name, ok := spec.Names[value]; ok {
		return name
	}
	if s, ok := any(value).(fmt.Stringer); ok {
		return s.String()
	}
	return strconv.FormatInt(int64(value), 10)
}

// enumTypeName returns the fully-qualified name of E, e.g.
// "github.com/acme/orders.Status".
func enumTypeName[E Enum]() string {
	t := reflect.TypeOf((*E)(nil)).Elem()
	if t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}
