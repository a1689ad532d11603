// Package client is the entry point of the SDK. It builds the transport once
// from a Config and exposes one client per endpoint group:
//
//	c, err := client.New(client.Config{
//		BaseURL: "https://ledger.example.com/api/v1",
//		APIKey:  os.Getenv("HEDERA_REST_API_KEY"),
//	})
//	if err != nil {
//		return err
//	}
//	info, err := c.Accounts.GetInfo(ctx, "0.0.1001")
//
// Every group shares the same transport and logger. The groups hold no
// mutable state, so a Client is safe for concurrent use.
package client
