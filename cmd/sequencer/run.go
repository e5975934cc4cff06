package main

import (
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/cuemby/evseq/internal/memelection"
	"github.com/cuemby/evseq/internal/meminbox"
	"github.com/cuemby/evseq/internal/memlog"
	"github.com/cuemby/evseq/pkg/config"
	"github.com/cuemby/evseq/pkg/counter"
	"github.com/cuemby/evseq/pkg/electionraft"
	"github.com/cuemby/evseq/pkg/inbox"
	evlog "github.com/cuemby/evseq/pkg/log"
	"github.com/cuemby/evseq/pkg/logstore"
	"github.com/cuemby/evseq/pkg/metrics"
	"github.com/cuemby/evseq/pkg/sequencer"
)

var demo bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the sequencer runtime",
	Long: `Run starts the four-phase sequencer runtime: replay the durable
log, contest leadership, and on winning publish an activation followed
by a heartbeat every tick.

With --demo, every backend (log, inbox, election) is an in-memory
fixture, for trying the runtime out without standing up Raft or a
bbolt file. Both modes drive the in-process counter example as the
business Logic.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&demo, "demo", false, "use in-memory backends instead of durable ones")
}

func runRun(cmd *cobra.Command, args []string) error {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	metrics.SetVersion(Version)
	serveMetrics(cfg.MetricsAddr)

	logger := evlog.WithComponent("cmd")

	if demo {
		logger.Info().Msg("running with in-memory demo backends")
		return runDemo()
	}

	logic := counter.New()

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	log, err := logstore.Open(filepath.Join(cfg.DataDir, "events.db"))
	if err != nil {
		metrics.RegisterComponent("log", false, err.Error())
		return fmt.Errorf("open event log: %w", err)
	}
	metrics.RegisterComponent("log", true, "event log opened")

	election, err := electionraft.New(electionraft.Config{
		NodeID:    cfg.NodeID,
		BindAddr:  cfg.RaftBindAddr,
		DataDir:   filepath.Join(cfg.DataDir, "raft"),
		Bootstrap: cfg.Bootstrap,
	})
	if err != nil {
		metrics.RegisterComponent("election", false, err.Error())
		return fmt.Errorf("start election: %w", err)
	}
	metrics.RegisterComponent("election", true, "raft group started")

	inboxServer := inbox.NewServer(cfg.InboxCapacity)
	lis, err := net.Listen("tcp", cfg.InboxAddr)
	if err != nil {
		metrics.RegisterComponent("inbox", false, err.Error())
		return fmt.Errorf("listen on inbox addr: %w", err)
	}
	metrics.RegisterComponent("inbox", true, "listening at "+cfg.InboxAddr)
	gs := grpc.NewServer()
	gs.RegisterService(&inbox.ServiceDesc, inboxServer)
	go func() {
		if err := gs.Serve(lis); err != nil {
			metrics.UpdateComponent("inbox", false, err.Error())
			logger.Error().Err(err).Msg("inbox server exited")
		}
	}()
	logger.Info().Str("addr", cfg.InboxAddr).Msg("inbox listening")

	sequencer.Run(log, log, inboxServer, election, logic, sequencer.Options{
		Interval: cfg.TickInterval.Get(),
	})
	return nil
}

func runDemo() error {
	log := memlog.New()
	inboxImpl := meminbox.New()
	election := memelection.New()
	logic := counter.New()

	metrics.RegisterComponent("log", true, "in-memory demo log")
	metrics.RegisterComponent("election", true, "in-memory demo election")
	metrics.RegisterComponent("inbox", true, "in-memory demo inbox")

	sequencer.Run(log, log, inboxImpl, election, logic, sequencer.Options{})
	return nil
}
