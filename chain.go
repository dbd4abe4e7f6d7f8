package nccase

// Chain holds one string value so conversions can be applied in sequence:
//
//	out, err := nccase.NewChain("user name").CamelCase().SnakeCase().Result()
//
// Each conversion replaces the held value and returns the receiver. The
// first failing conversion records its error, leaves the value in its
// last-successful state and turns every later conversion into a no-op, so
// a chain never partially applies a transformation.
//
// A Chain is not safe for concurrent use; each instance belongs to one
// caller at a time.
type Chain struct {
	val string
	err error
}

// NewChain wraps s. No validation happens here; the first conversion call
// validates the held value.
func NewChain(s string) *Chain {
	return &Chain{val: s}
}

// CamelCase replaces the held value with its camelCase form.
func (c *Chain) CamelCase() *Chain {
	return c.apply(func(s string) (string, error) {
		return ToCamelCase(s)
	})
}

// KebabCase replaces the held value with its kebab-case form.
func (c *Chain) KebabCase(opts ...KebabOptions) *Chain {
	return c.apply(func(s string) (string, error) {
		return ToKebabCase(s, opts...)
	})
}

// DotCase replaces the held value with its dot.case form.
func (c *Chain) DotCase() *Chain {
	return c.apply(func(s string) (string, error) {
		return ToDotCase(s)
	})
}

// SnakeCase replaces the held value with its snake_case form.
func (c *Chain) SnakeCase() *Chain {
	return c.apply(func(s string) (string, error) {
		return ToSnakeCase(s)
	})
}

// Value returns the currently held string. It may be called at any point,
// including before any conversion.
func (c *Chain) Value() string {
	return c.val
}

// Err returns the error recorded by the first failing conversion, or nil.
func (c *Chain) Err() error {
	return c.err
}

// Result returns the held value together with the first recorded error.
func (c *Chain) Result() (string, error) {
	return c.val, c.err
}

func (c *Chain) apply(convert func(string) (string, error)) *Chain {
	if c.err != nil {
		return c
	}
	out, err := convert(c.val)
	if err != nil {
		c.err = err
		return c
	}
	c.val = out
	return c
}
