package header

const (
	DefaultMaxValueSize = 8 << 10
	DefaultMaxBlockSize = 16 << 10
	DefaultMaxFields    = 100
	DefaultMaxBodySize  = 8 << 20
)

// Limits bounds what a single request may make the parser hold in memory.
// MaxValueSize applies to one field value after folding, MaxBlockSize to
// the whole head including the request line.
type Limits struct {
	MaxValueSize int
	MaxBlockSize int
	MaxFields    int
	MaxBodySize  int
}

func DefaultLimits() Limits {
	return Limits{
		MaxValueSize: DefaultMaxValueSize,
		MaxBlockSize: DefaultMaxBlockSize,
		MaxFields:    DefaultMaxFields,
		MaxBodySize:  DefaultMaxBodySize,
	}
}

// Normalize fills zero fields with defaults so a partially populated Limits
// is usable.
func (l Limits) Normalize() Limits {
	def := DefaultLimits()
	if l.MaxValueSize <= 0 {
		l.MaxValueSize = def.MaxValueSize
	}
	if l.MaxBlockSize <= 0 {
		l.MaxBlockSize = def.MaxBlockSize
	}
	if l.MaxFields <= 0 {
		l.MaxFields = def.MaxFields
	}
	if l.MaxBodySize <= 0 {
		l.MaxBodySize = def.MaxBodySize
	}
	return l
}

