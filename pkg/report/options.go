package report

const (
	// DefaultTitle is the report header used when no title is configured.
	DefaultTitle = "TEST STRUCTURE ANALYSIS"
	// DefaultSubject names the class under test in the summary section.
	DefaultSubject = "target"
	// DefaultMethodSampleSize is the number of test methods shown in the
	// key-methods section before the remainder is summarized.
	DefaultMethodSampleSize = 10
	// DefaultHelperSampleSize is the number of helper methods shown.
	DefaultHelperSampleSize = 5
)

// DefaultHelperKeywords are the substrings used to select display-worthy
// helper methods (case-insensitive).
var DefaultHelperKeywords = []string{"test", "create", "mock"}

// Options configure the presentation choices of a Reporter. All fields are
// cosmetic; none affect which facts were extracted.
type Options struct {
	// HelperKeywords filters helper methods to those whose identifier
	// contains one of these substrings, case-insensitive.
	HelperKeywords []string

	// HelperSampleSize caps the helper-methods section.
	HelperSampleSize int

	// MethodSampleSize caps the key-test-methods section.
	MethodSampleSize int

	// Subject is the class-under-test name interpolated into the summary.
	Subject string

	// Title is the header banner text.
	Title string
}

// Option is a functional option for configuring a Reporter.
type Option func(*Options)

// WithTitle sets the header banner text. Empty values are ignored.
func WithTitle(title string) Option {
	return func(o *Options) {
		if title != "" {
			o.Title = title
		}
	}
}

// WithSubject sets the class-under-test name used in the summary section.
// Empty values are ignored.
func WithSubject(subject string) Option {
	return func(o *Options) {
		if subject != "" {
			o.Subject = subject
		}
	}
}

// WithMethodSampleSize sets how many test methods are listed before the
// "and N more" line. Negative values are ignored.
func WithMethodSampleSize(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.MethodSampleSize = n
		}
	}
}

// WithHelperSampleSize sets how many helper methods are listed.
// Negative values are ignored.
func WithHelperSampleSize(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.HelperSampleSize = n
		}
	}
}

// WithHelperKeywords replaces the helper-method filter substrings.
func WithHelperKeywords(keywords []string) Option {
	return func(o *Options) {
		if len(keywords) > 0 {
			o.HelperKeywords = keywords
		}
	}
}

func applyDefaults(opts *Options) {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.Subject == "" {
		opts.Subject = DefaultSubject
	}
	if opts.MethodSampleSize <= 0 {
		opts.MethodSampleSize = DefaultMethodSampleSize
	}
	if opts.HelperSampleSize <= 0 {
		opts.HelperSampleSize = DefaultHelperSampleSize
	}
	if len(opts.HelperKeywords) == 0 {
		opts.HelperKeywords = DefaultHelperKeywords
	}
}
