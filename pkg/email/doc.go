// Package email provides transactional email delivery behind a small
// EmailSender interface.
//
// Two implementations are included: a Postmark-backed client for
// production and a DevSender that writes each email to disk for local
// development. Consumers depend only on the interface, so providers can
// be swapped without touching calling code:
//
//	sender := email.MustNewPostmarkClient(cfg)
//	err := sender.SendEmail(ctx, email.SendEmailParams{
//		SendTo:   "user@example.com",
//		Subject:  "Deployment finished",
//		BodyHTML: "<p>All green.</p>",
//		Tag:      "notifications",
//	})
package email
