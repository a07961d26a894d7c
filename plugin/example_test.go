package plugin_test

import (
	"context"
	"fmt"

	"github.com/printhive/sdk/mixin"
	"github.com/printhive/sdk/plugin"
)

// Example demonstrates building a plugin, initializing it, and invoking a
// hook the way the host dispatcher does.
func Example() {
	cfg := plugin.NewConfig()
	cfg.SetName("bed-leveler")
	cfg.SetVersion("2.0.1")
	cfg.SetDescription("Automatic bed leveling before every print")

	cfg.AddHook(mixin.StartupPlugin, "OnAfterStartup",
		func(ctx context.Context, args map[string]any) (any, error) {
			return "bed probed", nil
		})

	// Run ahead of other startup plugins.
	cfg.SetSortKey(mixin.StaticSortKey(map[string]int{
		"StartupPlugin.OnAfterStartup": -10,
	}))

	p, err := plugin.New(cfg)
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	ctx := context.Background()
	if err := p.Initialize(ctx, nil); err != nil {
		fmt.Println("init failed:", err)
		return
	}

	result, err := p.Invoke(ctx, mixin.CallContext(mixin.StartupPlugin, "OnAfterStartup"), nil)
	if err != nil {
		fmt.Println("invoke failed:", err)
		return
	}

	fmt.Println(result)
	fmt.Println(p.Capabilities()[0])
	// Output:
	// bed probed
	// StartupPlugin
}
