package validation

// Option configures a Builder.
type Option func(*config)

type config struct {
	prefix   string
	capacity int
}

// WithPrefix nests every recorded property under prefix: "Name" becomes
// "prefix.Name" and "[0]" becomes "prefix[0]". Empty prefixes are ignored.
func WithPrefix(prefix string) Option {
	return func(c *config) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

// WithCapacity pre-sizes the error list. Negative values are ignored.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

func (c config) qualify(property string) string {
	switch {
	case c.prefix == "":
		return property
	case property == "":
		return c.prefix
	case property[0] == '[':
		return c.prefix + property
	default:
		return c.prefix + "." + property
	}
}
