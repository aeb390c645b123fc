package unit

// Scalar is the set of numeric types a Quantity can carry. The
// conversion rule needs exact 10^n for integer types and ordinary
// exponentiation for floats; both come from the same repeated
// multiplication below.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Quantity pairs a scalar with a unit tag. Values are immutable:
// every operation returns a new Quantity, and the tag of a result is
// always a fresh combinator application over the operand tags.
type Quantity[T Scalar] struct {
	val T
	tag *Tag
}

// New wraps a raw scalar under a tag. No validation beyond the tag
// itself; always succeeds.
func New[T Scalar](val T, tag *Tag) Quantity[T] {
	return Quantity[T]{val: val, tag: tag}
}

// Value returns the raw scalar.
func (q Quantity[T]) Value() T {
	return q.val
}

// Tag returns the quantity's unit tag.
func (q Quantity[T]) Tag() *Tag {
	return q.tag
}

// Add sums two quantities. The tags must be compatible (full vector
// equality, scale included), so no rescaling ever happens here.
func (q Quantity[T]) Add(o Quantity[T]) (Quantity[T], error) {
	if !q.tag.Compatible(o.tag) {
		return Quantity[T]{}, newUnitMismatchError(q.tag.Vector(), o.tag.Vector())
	}

	return Quantity[T]{val: q.val + o.val, tag: q.tag}, nil
}

// Sub subtracts o from q under the same compatibility rule as Add.
func (q Quantity[T]) Sub(o Quantity[T]) (Quantity[T], error) {
	if !q.tag.Compatible(o.tag) {
		return Quantity[T]{}, newUnitMismatchError(q.tag.Vector(), o.tag.Vector())
	}

	return Quantity[T]{val: q.val - o.val, tag: q.tag}, nil
}

// Mul multiplies two quantities; the result's tag is Mul of the
// operand tags. The only possible failure is an exponent leaving the
// system's range.
func (q Quantity[T]) Mul(o Quantity[T]) (Quantity[T], error) {
	tag, err := q.tag.Mul(o.tag)
	if err != nil {
		return Quantity[T]{}, err
	}

	return Quantity[T]{val: q.val * o.val, tag: tag}, nil
}

// Div divides q by o; the result's tag is Div of the operand tags.
// Division by a zero scalar is the scalar type's ordinary numeric
// behavior, not a unit error.
func (q Quantity[T]) Div(o Quantity[T]) (Quantity[T], error) {
	tag, err := q.tag.Div(o.tag)
	if err != nil {
		return Quantity[T]{}, err
	}

	return Quantity[T]{val: q.val / o.val, tag: tag}, nil
}

// Convert re-expresses q under a tag with the same physical dimension
// and a possibly different scale, rescaling the scalar by the exact
// power-of-ten difference. Different dimensions are a
// DimensionMismatch, never silently bridged.
func (q Quantity[T]) Convert(to *Tag) (Quantity[T], error) {
	if !q.tag.SameDimension(to) {
		return Quantity[T]{}, newDimensionMismatchError(q.tag.Vector(), to.Vector())
	}

	delta := int(q.tag.Scale()) - int(to.Scale())

	return Quantity[T]{val: rescale(q.val, delta), tag: to}, nil
}

// MustConvert unwraps Convert, panicking on dimension mismatch.
func (q Quantity[T]) MustConvert(to *Tag) Quantity[T] {
	out, err := q.Convert(to)
	if err != nil {
		panic(err)
	}

	return out
}

// Must unwraps a quantity operation, panicking on error.
func Must[T Scalar](q Quantity[T], err error) Quantity[T] {
	if err != nil {
		panic(err)
	}

	return q
}

// rescale multiplies v by 10^delta. Positive deltas multiply,
// negative ones divide, so integer scalars stay exact whenever the
// result fits the type.
func rescale[T Scalar](v T, delta int) T {
	if delta >= 0 {
		return v * pow10[T](delta)
	}

	return v / pow10[T](-delta)
}

// pow10 builds 10^n by repeated multiplication: exact for integers up
// to the type's width, and exact for float64 up to 1e22.
func pow10[T Scalar](n int) T {
	var out T = 1
	for i := 0; i < n; i++ {
		out *= 10
	}

	return out
}
