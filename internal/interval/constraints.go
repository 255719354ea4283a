package interval

// Integer permits any integer type, including types defined over one.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float permits any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Number is the set of ordered types that support the + operator with a step of the same type.
// GenerateStep and StepBy require it, so a range over a type without addition fails to compile
// rather than at run time.
type Number interface {
	Integer | Float
}
