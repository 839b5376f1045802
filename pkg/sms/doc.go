// Package sms provides SMS delivery behind a small SMSSender interface.
//
// The package ships a DevSender that writes each message to disk for local
// development; production gateways implement SMSSender against their
// provider's API.
//
//	sender := sms.NewDevSender("./tmp/sms")
//	err := sender.SendSMS(ctx, sms.SendSMSParams{
//		SendTo:  "+15551234567",
//		Message: "Your build finished",
//	})
package sms
