// Package file provides a file-based DataFetcher implementation for
// the conf package.
//
// The file is read on every Fetch call rather than cached at
// construction, so a Reset followed by a new Load observes changes on
// disk.
//
// Usage:
//
//	fetcher := file.NewFetcher("/path/to/app.conf")
//	data, err := fetcher.Fetch()
//
// Error Handling:
//   - Fetch returns an error if the file cannot be read or the path is a directory
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
