// Package consumer drives the read-only replay loop: subscribe to a
// Log at whatever offset Logic.Load returns, then feed every event into
// Logic.Step until it asks to stop. It has no notion of leadership or
// liveness; that belongs entirely to how a Logic defines "continue".
package consumer
