package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	StringType
	IntegerType
	FloatingType
	ObjectType
	ArrayType
	BoolType
	ErrorType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ObjectType:   "Object",
		ArrayType:    "Array",
		StringType:   "String",
		IntegerType:  "Integer",
		FloatingType: "Floating",
		BoolType:     "Bool",
		NullType:     "Null",
		ErrorType:    "Error",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":     NullType,
		"String":   StringType,
		"Integer":  IntegerType,
		"Floating": FloatingType,
		"Object":   ObjectType,
		"Array":    ArrayType,
		"Bool":     BoolType,
		"Error":    ErrorType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		StringType,
		IntegerType,
		FloatingType,
		ObjectType,
		ArrayType,
		BoolType,
		ErrorType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case ObjectType, ArrayType:
		return false
	default:
		return true
	}
}

func (t Type) IsNumber() bool {
	return t == IntegerType || t == FloatingType
}
