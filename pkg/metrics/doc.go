/*
Package metrics provides Prometheus metrics and health/readiness
endpoints for the sequencer driver.

# Metrics

	evseq_sequencer_status              gauge   0=Starting..3=Activated
	evseq_events_published_total        counter by kind (command/activation/heartbeat)
	evseq_commands_processed_total      counter by outcome (accepted/rejected)
	evseq_inbox_cleared_total           counter
	evseq_election_attempts_total       counter by outcome (won/lost)
	evseq_lease_renewals_total          counter by outcome (ok/lost)
	evseq_activation_publishes_total    counter
	evseq_replay_lag_offset             gauge
	evseq_command_process_duration_seconds   histogram
	evseq_publish_duration_seconds           histogram

Handler() serves these at whatever path the embedder mounts it on
(conventionally /metrics), via promhttp the same way the rest of this
codebase's services expose Prometheus metrics.

# Health

RegisterComponent/UpdateComponent track named component health. The
production wiring in cmd/sequencer registers "log", "election", and
"inbox" as each backend opens; pkg/sequencer keeps the "sequencer"
component (SequencerComponent) current as the driver advances through
Starting/CaughtUp/Leader/Activated and on lease loss. HealthHandler,
ReadyHandler, and LivenessHandler serve the /health, /ready, /live
trio. Readiness considers "log", "election", and "sequencer"
critical: a sequencer that can't reach its log or its election
backend cannot make progress, and one that hasn't reached Activated
has no business being called ready regardless of what its backends
report.
*/
package metrics
