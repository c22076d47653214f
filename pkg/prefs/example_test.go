package prefs_test

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/prefskit/pkg/kv"
	"github.com/dmitrymomot/prefskit/pkg/prefs"
)

func ExamplePrefs() {
	ctx := context.Background()

	p := prefs.New(prefs.WithStore(kv.NewMemory()))
	defer p.Close()

	_ = p.Write(ctx, "theme", "dark")
	_ = p.Write(ctx, "recent", []any{"a", "b"})

	theme, _ := p.Read(ctx, "theme")
	recent, _ := p.Read(ctx, "recent")

	fmt.Println(theme)
	fmt.Println(recent)
	// Output:
	// dark
	// [a b]
}

func ExamplePrefs_Watch() {
	ctx := context.Background()

	p := prefs.New(prefs.WithStore(kv.NewMemory()))
	defer p.Close()

	_ = p.Write(ctx, "volume", 3)

	sub, _ := p.Watch(ctx, "volume")
	defer sub.Close()

	// The current value arrives first, then each write.
	fmt.Println(<-sub.Updates())

	_ = p.Write(ctx, "volume", 9)
	fmt.Println(<-sub.Updates())
	// Output:
	// 3
	// 9
}

func ExamplePref() {
	ctx := context.Background()

	p := prefs.New(prefs.WithStore(kv.NewMemory()))
	defer p.Close()

	theme := prefs.NewString("theme", "light")

	v, ok, _ := theme.Get(ctx, p)
	if !ok {
		v = theme.Default
	}
	fmt.Println(v)

	_ = theme.Set(ctx, p, "dark")
	v, _, _ = theme.Get(ctx, p)
	fmt.Println(v)
	// Output:
	// light
	// dark
}
