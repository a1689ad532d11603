// Package hcs wraps the consensus service endpoints: topic lifecycle and
// message submission on the primary API, topic and message history on the
// mirror API.
//
// Messages returned by the mirror API are base64 encoded. Use
// mirror.DecodeMessageData or mirror.DecodeMessageJSON to read them:
//
//	page, err := client.HCS.ListMessages(ctx, "0.0.4000", hcs.MessagesQuery{Limit: 10})
//	for _, message := range page.Messages {
//		var payload map[string]any
//		if err := mirror.DecodeMessageJSON(message, &payload); err != nil {
//			continue
//		}
//	}
package hcs
