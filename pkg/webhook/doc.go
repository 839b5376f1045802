// Package webhook delivers JSON payloads to HTTP endpoints with retries,
// exponential backoff, and optional HMAC-SHA256 request signing.
//
// Example:
//
//	sender := webhook.NewSender()
//	err := sender.Send(ctx, endpointURL, event,
//		webhook.WithSignature(secret),
//		webhook.WithMaxRetries(3),
//	)
//
// Receivers verify signed requests with ExtractSignatureHeaders and
// VerifySignature.
package webhook
