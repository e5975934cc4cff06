/*
Package log provides structured logging via zerolog: a global logger,
component-scoped child loggers, and level/format configuration, in the
same shape the rest of this codebase's ambient stack uses.

# Usage

	log.Init(log.Config{Level: log.InfoLevel, JSONOutput: true})

	seqLog := log.WithComponent("sequencer")
	seqLog.Info().Uint64("offset", offset).Msg("caught up")

	log.WithInstance(nonce).Warn().Msg("activation not yet observed")

# Design

Global logger pattern: one package-level zerolog.Logger, safe for
concurrent use, initialized once via Init and otherwise usable with a
sane default (JSON to stderr) so packages that log before main calls
Init (or tests that never call it) don't crash.

Context logger pattern: WithComponent/WithInstance/WithOffset return
child loggers carrying a field, rather than requiring every call site
to repeat it.
*/
package log
