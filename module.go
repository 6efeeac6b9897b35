package conf

import (
	"errors"
	"fmt"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// NewModule creates an Fx module that loads the configuration at path
// and supplies the resulting *File under the given DI named tag. App
// construction fails when the load reports diagnostics, carrying every
// problem in the error. Call multiple times with different names to
// load several files.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name, path string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name,
		fx.Provide(fx.Annotate(
			func() (*File, error) {
				file := New(path, opts...)
				if !file.Load() {
					return nil, fmt.Errorf("loading config %q: %w", path, file.Err())
				}

				return file, nil
			},
			fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
		)),
	)
}
