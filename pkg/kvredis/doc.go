// Package kvredis provides a Redis-backed implementation of kv.Store for
// the preferences facade.
//
// Redis persists only text, so each scalar is stored as a kind-tagged
// record ("s:dark", "i:42", "f:2.5", "b:true") and the original Go type is
// restored on read. All keys are namespaced with a configurable prefix,
// "prefs:" by default.
//
// # Usage
//
//	var cfg kvredis.Config
//	config.MustLoad(&cfg)
//
//	store, err := kvredis.Connect(ctx, cfg)
//	if err != nil {
//		// handle error, probably terminate the application
//	}
//	defer store.Close()
//
//	p := prefs.New(prefs.WithStore(store))
//
// An existing go-redis client can be wrapped directly with New or
// NewWithConfig. Connect retries per the Config before giving up with
// ErrNotReady.
package kvredis
