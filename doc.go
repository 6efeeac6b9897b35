// Package conf reads INI-like configuration files into a hierarchical,
// lookup-friendly tree.
//
// The package uses an interface-based design with two extension points:
//   - Parser: turns raw data into a flat stream of records plus diagnostics
//   - DataFetcher: retrieves raw config data (file, string, etc.)
//
// The built-in LineParser handles the native line-oriented format:
//
//	# comments start with '#' or '//'
//	[auth.ldap]
//	uri = "ldap://ldap1.example.com:389"
//	uri = "ldap://ldap2.example.com:389"
//
// Section headers are dot-delimited paths; repeated keys within one
// section accumulate into a list in file order. Alternate frontends for
// YAML and TOML live in parser/yaml and parser/toml and feed the same
// tree model.
//
// # Diagnostics, not exceptions
//
// Parsing never aborts on a bad line. Every problem becomes a
// Diagnostic with its 1-indexed source line, and parsing continues, so
// callers see all problems at once. Lookups on the resulting tree never
// fail either: an unresolvable path yields the caller's default (Get),
// an empty list (GetList), or an Absent result (Lookup).
//
// # Example
//
// A typical usage pattern:
//
//	cf := conf.New("/etc/app.conf")
//	if !cf.Load() {
//	    for _, d := range cf.Errors() {
//	        slog.Error("config problem", "line", d.Line, "message", d.Message)
//	    }
//	}
//	admin := cf.GetDefault("email.admin", "root@localhost")
//	uris := cf.GetList("auth.ldap.uri")
package conf
