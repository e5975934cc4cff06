package sequencer

import (
	"os"
	"time"

	"github.com/cuemby/evseq/pkg/consumer"
	"github.com/cuemby/evseq/pkg/core"
	evlog "github.com/cuemby/evseq/pkg/log"
	"github.com/cuemby/evseq/pkg/metrics"
	"github.com/rs/zerolog"
)

// Options configures a sequencer run.
type Options struct {
	// Interval is how often the background goroutine ticks: clears the
	// inbox, attempts election, or renews the lease and publishes.
	// Must be strictly shorter than the election's lease timeout.
	Interval time.Duration

	// OnFatal is invoked when Election.Renew returns false. The default
	// terminates the process immediately: no graceful shutdown is safe
	// once the lease may be gone. An embedder hosting multiple
	// sequencers may substitute a panic or a supervisor signal instead,
	// as long as it still guarantees no further Publish happens on this
	// Log.
	OnFatal func()
}

func (o Options) onFatal() func() {
	if o.OnFatal != nil {
		return o.OnFatal
	}
	return func() { os.Exit(1) }
}

const defaultInterval = 100 * time.Millisecond

func (o Options) interval() time.Duration {
	if o.Interval > 0 {
		return o.Interval
	}
	return defaultInterval
}

// wrapper adapts a caller's Sequencer into a core.Logic that the
// consumer driver can replay, tracking the status transitions that are
// only observable from inside Step: CaughtUp (advisory, re-checked on
// every event) and Activated (this instance's own activation landing in
// the log, which ends replay). It also reports replay progress to
// metrics.ReplayLag when log exposes the optional core.TipOffset
// capability.
type wrapper struct {
	status *statusAtom
	logic  core.Sequencer
	log    core.Log

	loadOffset uint64
	replayed   uint64
}

func (w *wrapper) checkCaughtUp() {
	// Bump only from Starting. The ticker may have advanced status to
	// Leader since the last event; storing CaughtUp again here would
	// demote it and force a re-election on the next tick.
	if w.status.load() == Starting && w.logic.CaughtUp() {
		w.status.store(CaughtUp)
		metrics.Status.Set(float64(CaughtUp))
		metrics.UpdateComponent(metrics.SequencerComponent, false, "caught up, contesting leadership")
	}
}

func (w *wrapper) reportReplayLag() {
	tr, ok := w.log.(core.TipOffset)
	if !ok {
		return
	}
	lag := int64(tr.TipOffset()) - int64(w.loadOffset+w.replayed)
	if lag < 0 {
		lag = 0
	}
	metrics.ReplayLag.Set(float64(lag))
}

func (w *wrapper) Load() uint64 {
	offset := w.logic.Load()
	w.loadOffset = offset
	w.checkCaughtUp()
	w.reportReplayLag()
	return offset
}

func (w *wrapper) Step(event []byte) bool {
	w.checkCaughtUp()

	cont := w.logic.Step(event)
	w.replayed++
	w.reportReplayLag()

	if w.logic.IsActivation(event) {
		w.status.store(Activated)
		metrics.Status.Set(float64(Activated))
		metrics.UpdateComponent(metrics.SequencerComponent, true, "activated")
		metrics.ReplayLag.Set(0)
		return false
	}
	return cont
}

func (w *wrapper) CaughtUp() bool {
	return w.logic.CaughtUp()
}

// Run orchestrates the four-phase lifecycle for logic: replay the log
// to rebuild state, acquire leadership once caught up, publish and
// re-publish an activation until this instance's own copy is observed,
// then process commands from inbox forever.
//
// Run does not return under normal operation: the command loop runs
// until the process is terminated (normally, by a failed lease renewal
// in the background goroutine).
func Run(log core.Log, publisher core.Publisher, inbox core.Inbox, election core.Election, logic core.Sequencer, opts Options) {
	status := &statusAtom{}
	activate := logic.Activator()
	heartbeat := logic.Heartbeat()
	onFatal := opts.onFatal()
	logger := evlog.WithComponent("sequencer")

	done := make(chan struct{})
	defer close(done)

	metrics.UpdateComponent(metrics.SequencerComponent, false, "starting")

	go ticker(status, publisher, inbox, election, activate, heartbeat, opts.interval(), onFatal, logger, done)

	w := &wrapper{status: status, logic: logic, log: log}

	logger.Info().Msg("starting replay")
	consumer.Run(log, w)
	logger.Info().Msg("own activation observed, processing commands")

	for {
		command := inbox.Recv()

		timer := metrics.NewTimer()
		event, ok := logic.Process(command)
		timer.ObserveDuration(metrics.CommandProcessDuration)

		if !ok {
			metrics.CommandsProcessedTotal.WithLabelValues("rejected").Inc()
			continue
		}
		metrics.CommandsProcessedTotal.WithLabelValues("accepted").Inc()

		publishTimer := metrics.NewTimer()
		publisher.Publish(event)
		publishTimer.ObserveDuration(metrics.PublishDuration)
		metrics.EventsPublishedTotal.WithLabelValues("command").Inc()

		// Every event the leader publishes is fed into its own Step
		// before the next command, so in-process state never diverges
		// from what downstream consumers will observe.
		logic.Step(event)
	}
}

func ticker(
	status *statusAtom,
	publisher core.Publisher,
	inbox core.Inbox,
	election core.Election,
	activate, heartbeat core.EventGenerator,
	interval time.Duration,
	onFatal func(),
	logger zerolog.Logger,
	done <-chan struct{},
) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-done:
			return
		case <-t.C:
		}

		switch status.load() {
		case Starting:
			// Drained exactly while Starting. Commands received
			// before we're legally allowed to serve them are garbage.
			inbox.Clear()
			metrics.InboxClearedTotal.Inc()

		case CaughtUp:
			if election.Elect() {
				metrics.ElectionAttemptsTotal.WithLabelValues("won").Inc()
				logger.Info().Msg("elected leader")
				status.store(Leader)
				metrics.Status.Set(float64(Leader))
				metrics.UpdateComponent(metrics.SequencerComponent, false, "leader, awaiting own activation")
			} else {
				metrics.ElectionAttemptsTotal.WithLabelValues("lost").Inc()
			}

		case Leader:
			if !election.Renew() {
				metrics.LeaseRenewalsTotal.WithLabelValues("lost").Inc()
				logger.Error().Msg("lost lease before activation observed, terminating")
				metrics.UpdateComponent(metrics.SequencerComponent, false, "terminating: lease lost before activation")
				onFatal()
				return
			}
			metrics.LeaseRenewalsTotal.WithLabelValues("ok").Inc()
			publisher.Publish(activate())
			metrics.ActivationPublishesTotal.Inc()
			metrics.EventsPublishedTotal.WithLabelValues("activation").Inc()

		case Activated:
			if !election.Renew() {
				metrics.LeaseRenewalsTotal.WithLabelValues("lost").Inc()
				logger.Error().Msg("lost lease, terminating")
				metrics.UpdateComponent(metrics.SequencerComponent, false, "terminating: lease lost")
				onFatal()
				return
			}
			metrics.LeaseRenewalsTotal.WithLabelValues("ok").Inc()
			publisher.Publish(heartbeat())
			metrics.EventsPublishedTotal.WithLabelValues("heartbeat").Inc()
		}
	}
}
