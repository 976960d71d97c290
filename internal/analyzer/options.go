package analyzer

const (
	// DefaultSampleLimit is the number of characters of diff text classified
	DefaultSampleLimit = 500
	// DefaultBodyFileLimit is the number of file names listed in the body
	DefaultBodyFileLimit = 5
)

// DefaultSourceExtensions make a multi-file change scoped as "src"
var DefaultSourceExtensions = []string{".py", ".js", ".ts"}

// Options tunes message generation
type Options struct {
	SampleLimit      int
	BodyFileLimit    int
	SourceExtensions []string
}

// DefaultOptions returns the built-in settings
func DefaultOptions() Options {
	exts := make([]string, len(DefaultSourceExtensions))
	copy(exts, DefaultSourceExtensions)
	return Options{
		SampleLimit:      DefaultSampleLimit,
		BodyFileLimit:    DefaultBodyFileLimit,
		SourceExtensions: exts,
	}
}

// withDefaults fills zero values so a zero Options behaves like DefaultOptions
func (o Options) withDefaults() Options {
	if o.SampleLimit <= 0 {
		o.SampleLimit = DefaultSampleLimit
	}
	if o.BodyFileLimit <= 0 {
		o.BodyFileLimit = DefaultBodyFileLimit
	}
	if o.SourceExtensions == nil {
		o.SourceExtensions = DefaultSourceExtensions
	}
	return o
}
