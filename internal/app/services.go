package app

import (
	"io"
	"strings"

	"capdemo/internal/capability"
	"capdemo/internal/output"
	"capdemo/internal/solid"
	"capdemo/pkg/logging"
)

// InitializeRegistry creates a registry whose sink writes demo output to out,
// attaches logging observers and registers every demo capability.
func InitializeRegistry(cfg *Config, out io.Writer) (*capability.Registry, error) {
	var opts []output.WriterOption
	opts = append(opts, output.WithStyle(!cfg.NoColor))
	if cfg.CapdemoConfig != nil && cfg.CapdemoConfig.Demo.OutputPrefix != "" {
		opts = append(opts, output.WithPrefix(cfg.CapdemoConfig.Demo.OutputPrefix))
	}

	registry := capability.NewRegistry(output.NewWriterSink(out, opts...))

	registry.OnRegister(func(reg capability.Registration) {
		logging.Debug("Registry", "Registered %s/%s (%s)", reg.Capability, reg.VariantID, reg.ID)
	})
	registry.OnInvoke(func(ev capability.InvocationEvent) {
		if ev.Err != nil {
			logging.Debug("Registry", "Invoked %s/%s [%s] in %s: %v", ev.Capability, ev.VariantID, strings.Join(ev.Args, " "), ev.Duration, ev.Err)
			return
		}
		logging.Debug("Registry", "Invoked %s/%s [%s] in %s", ev.Capability, ev.VariantID, strings.Join(ev.Args, " "), ev.Duration)
	})

	if err := solid.RegisterAll(registry); err != nil {
		return nil, err
	}
	return registry, nil
}
