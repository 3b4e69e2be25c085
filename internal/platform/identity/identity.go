// Copyright (c) 2026 Moviq. All rights reserved.
// Author: dev.kabir01@gmail.com

// Package identity defines the sender identity forwarded by the bot transport.
//
// # Trust Model
//
// Moviq does not authenticate end users itself. The transport adapter owns the
// session with the chat platform and forwards the platform-assigned numeric
// user ID on every request. Privilege is a static allow-list of those IDs.
package identity

// Sender is the identity of the end user behind an inbound interaction.
type Sender struct {
	// ID is the externally assigned numeric user identifier.
	ID int64

	// FirstName is the display name forwarded by the transport, if known.
	FirstName string

	// Username is the handle forwarded by the transport, if known.
	Username string
}
