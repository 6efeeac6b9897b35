package conf

// Option defines a function type for configuring a File.
type Option func(*File)

// WithParser replaces the parser used by Load. The default is the
// native LineParser; parser/yaml and parser/toml provide alternate
// frontends.
func WithParser(parser Parser) Option {
	return func(f *File) {
		f.parser = parser
	}
}

// WithFetcher replaces the data source used by Load.
func WithFetcher(fetcher DataFetcher) Option {
	return func(f *File) {
		f.fetcher = fetcher
	}
}
