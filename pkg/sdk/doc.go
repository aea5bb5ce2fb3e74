// Package shelfwise provides an embedded Go client for the shelfwise
// recommendation engine backed by Redis.
//
// The client wires the engine directly over a database connection, with
// no HTTP server in between:
//
//	client, _ := shelfwise.New(ctx, shelfwise.WithRedis("localhost:6379", ""))
//	defer client.Close()
//
//	_ = client.UpsertItem(ctx, shelfwise.Item{ID: "b1", Title: "Dune", Category: shelfwise.CategoryBook})
//	_ = client.RecordInteraction(ctx, "reader-1", shelfwise.Interaction{ItemID: "b1", Borrowed: true})
//
//	page, _ := client.Recommend(ctx, "reader-1", shelfwise.DefaultFilter())
package shelfwise
