// Package kvpg provides a PostgreSQL-backed implementation of kv.Store for
// the preferences facade.
//
// Preferences live in a single table with one row per key, holding a scalar
// kind tag and the value in textual form. The table is created on demand by
// Store.EnsureSchema.
//
// # Usage
//
//	var cfg kvpg.Config
//	config.MustLoad(&cfg)
//
//	store, err := kvpg.Connect(ctx, cfg)
//	if err != nil {
//		// handle error, probably terminate the application
//	}
//	defer store.Close()
//
//	if err := store.EnsureSchema(ctx); err != nil {
//		// handle error
//	}
//
//	p := prefs.New(prefs.WithStore(store))
//
// An existing pgx pool can be wrapped directly with New or NewWithConfig.
package kvpg
