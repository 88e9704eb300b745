package config

import (
	"fmt"

	"go.uber.org/fx"
)

// Module creates an Fx module providing a named *Store loaded from the given
// configuration file. The name is used as both the Fx module name and the DI
// named tag, so multiple stores can coexist in one container:
//
//	fx.New(
//	    config.Module("app", "/etc/app/config.yaml"),
//	    fx.Invoke(fx.Annotate(run, fx.ParamTags(`name:"app"`))),
//	)
//
// The file is read when the container builds the dependency graph; a load
// failure surfaces as a construction error.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module(name, fpath string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func() (*Store, error) {
					return FromFile(fpath, opts...)
				},
				fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		),
	)
}
