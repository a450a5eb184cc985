// Package sendlog keeps an in-memory, time-ordered record of completed email
// sends and answers sliding-window rate limit queries over it.
//
// The ledger tracks individual send timestamps rather than counters, which
// makes the hourly and daily windows exact: a send "ages out" of a window
// precisely one window-length after it happened, not at a calendar boundary.
//
// # Usage
//
//	ledger := sendlog.New(
//	    sendlog.WithHourlyLimit(100),
//	    sendlog.WithDailyLimit(1000),
//	)
//
//	if ledger.CanSendNow() {
//	    // perform the send, then:
//	    ledger.RecordSent("user@example.com")
//	}
//
//	status := ledger.Status()
//	if !status.CanSend {
//	    // status.NextAvailableAt says when the binding window relaxes
//	}
//
// All methods are safe for concurrent use. The ledger holds no data across
// process restarts; Clear resets it explicitly for tests and operator
// recovery.
package sendlog
