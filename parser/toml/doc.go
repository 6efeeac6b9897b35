// Package toml provides a TOML frontend for the conf package.
//
// This package uses github.com/BurntSushi/toml. The decoder's MetaData
// key list drives record emission, so records come out in the order
// keys appear in the file: tables become sections, scalars become
// key-value pairs, and an array of scalars becomes a repeated key.
//
// Usage:
//
//	cf := conf.New("app.toml", conf.WithParser(toml.NewParser()))
package toml
