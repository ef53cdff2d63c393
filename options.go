package mapper

// Options controls a mapping call.
type Options struct {
	// Inherit copies source keys not referenced by the schema into the result.
	Inherit bool
}

type Option func(*Options)

// WithInherit enables or disables inherit mode.
func WithInherit(v bool) Option { return func(o *Options) { o.Inherit = v } }

// WithOptions applies a whole Options value. A nil pointer leaves the defaults.
func WithOptions(opts *Options) Option {
	return func(o *Options) {
		if opts != nil {
			*o = *opts
		}
	}
}

func buildOptions(opts []Option) Options {
	o := Options{Inherit: false}
	for _, f := range opts {
		if f != nil {
			f(&o)
		}
	}
	return o
}
