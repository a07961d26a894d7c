// Package plugin provides a framework for building PrintHive plugins.
//
// A plugin is a self-contained extension of the printer host. It declares
// the mixin capabilities it implements by registering hook handlers, and
// the host dispatches lifecycle and event hooks to it in the order computed
// by the call-order resolver.
//
// # Creating a Plugin
//
// Plugins are created using the builder pattern with the Config type:
//
//	cfg := plugin.NewConfig()
//	cfg.SetName("bed-leveler")
//	cfg.SetVersion("2.0.1")
//	cfg.SetDescription("Automatic bed leveling before every print")
//
//	cfg.AddHook(mixin.StartupPlugin, "OnAfterStartup",
//		func(ctx context.Context, args map[string]any) (any, error) {
//			// probe the bed
//			return nil, nil
//		})
//
//	// Run before other startup plugins.
//	cfg.SetSortKey(mixin.StaticSortKey(map[string]int{
//		"StartupPlugin.OnAfterStartup": -10,
//	}))
//
//	p, err := plugin.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Registration
//
// The loader wraps a built plugin in a mixin.Record and files it in the
// capability registry:
//
//	rec := plugin.Record(p, false)
//	reg.Register(rec, p.Capabilities()...)
//
// # Lifecycle
//
// A plugin must be initialized before it receives hook calls and shut down
// when the host stops. Both transitions are guarded: double initialization
// and shutdown without initialization are errors.
package plugin
