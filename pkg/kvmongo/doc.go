// Package kvmongo provides a MongoDB-backed implementation of kv.Store for
// the preferences facade.
//
// Each preference is one document keyed by _id, carrying a scalar kind tag
// and the value in textual form. Writes are upserts.
//
// # Usage
//
//	var cfg kvmongo.Config
//	config.MustLoad(&cfg)
//
//	store, err := kvmongo.Connect(ctx, cfg)
//	if err != nil {
//		// handle error, probably terminate the application
//	}
//	defer store.Close()
//
//	p := prefs.New(prefs.WithStore(store))
package kvmongo
