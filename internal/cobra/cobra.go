package cobra

import (
	"fmt"

	"github.com/dparity/draid/internal/config"
	"github.com/dparity/draid/internal/draid"
	"github.com/dparity/draid/internal/simulate"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	geoChildren uint64
	geoParity   uint64
	geoSpares   uint64
	geoData     uint64
	geoGroups   uint64
	geoAshift   uint64

	inputData  string
	readSize   uint64
	childIndex uint64
)

var rootCmd = &cobra.Command{
	Use:   "draidctl",
	Short: "Simulate a distributed-parity RAID (dRAID) array",
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version info",
	Run: func(cmd *cobra.Command, args []string) {
		logrus.Infof("Version: %s", config.Version)
	},
}

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Validate a geometry and print its derived layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := newGeometry()
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"children":   cfg.Children(),
			"nparity":    cfg.NParity(),
			"nspares":    cfg.NSpares(),
			"ndata":      cfg.NData(),
			"ngroups":    cfg.NGroups(),
			"ashift":     cfg.Ashift(),
			"groupwidth": cfg.GroupWidth(),
			"ndisks":     cfg.NDisks(),
			"groupsz":    cfg.GroupSize(),
			"devslicesz": cfg.DevSliceSize(),
		}).Info("geometry configured")
		return nil
	},
}

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Write data at offset 0 into a simulated array",
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputData == "" {
			return fmt.Errorf("%w: --payload is required", draid.ErrInvalid)
		}
		cfg, h, d := newSession()

		// The stripe builder works in whole sectors, so zero-pad the
		// payload up to the next sector boundary.
		sector := uint64(1) << cfg.Ashift()
		payload := make([]byte, roundUpSector(uint64(len(inputData)), sector))
		copy(payload, inputData)

		sm, err := cfg.BuildWriteStripe(0, payload)
		if err != nil {
			return err
		}
		if err := d.parity.Generate(sm); err != nil {
			return err
		}
		result, err := d.dispatcher.Dispatch(cmd.Context(), sm, draid.OpWrite, 0, nil)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"failed_columns": result.FailedColumns,
			"children":       h.NChildren(),
		}).Info("write complete")
		return nil
	},
}

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read offset 0 of a freshly created simulated array",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, d := newSession()

		sm, err := cfg.BuildReadStripe(0, readSize)
		if err != nil {
			return err
		}
		result, err := d.dispatcher.Dispatch(cmd.Context(), sm, draid.OpRead, 0, nil)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"reconstructed": result.Reconstructed,
			"failed":        result.FailedColumns,
		}).Info("read complete")
		return nil
	},
}

var failCmd = &cobra.Command{
	Use:   "fail",
	Short: "Mark a simulated child faulted",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, h, _ := newSession()
		return h.FailChild(childIndex, 0)
	},
}

var healCmd = &cobra.Command{
	Use:   "heal",
	Short: "Clear a simulated child's faulted state",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, h, _ := newSession()
		return h.HealChild(childIndex)
	},
}

var scrubCmd = &cobra.Command{
	Use:   "scrub",
	Short: "Scrub a group, verifying and repairing parity",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, d := newSession()
		sm, err := cfg.BuildScrubStripe(0, readSize)
		if err != nil {
			return err
		}
		result, err := d.dispatcher.Dispatch(cmd.Context(), sm, draid.OpScrub, draid.FlagScrub, nil)
		if err != nil {
			return err
		}
		logrus.WithField("reconstructed", result.Reconstructed).Info("scrub complete")
		return nil
	},
}

// session bundles the pieces a single command invocation needs; it is
// rebuilt fresh per command the way the teacher's raidCmd constructed
// a fresh RAIDController per invocation.
type session struct {
	parity     *draid.Parity
	dispatcher *draid.Dispatcher
}

func roundUpSector(n, sector uint64) uint64 {
	return ((n + sector - 1) / sector) * sector
}

func newGeometry() (*draid.Config, error) {
	return draid.NewConfig(geoChildren, geoParity, geoSpares, geoData, geoGroups, geoAshift)
}

func newSession() (*draid.Config, *simulate.Harness, *session) {
	cfg, err := newGeometry()
	if err != nil {
		logrus.Fatalf("invalid geometry: %v", err)
	}

	h := simulate.NewHarness(int(cfg.Children()), cfg.DevSliceSize()*cfg.NGroups())
	parity, err := draid.NewParity(cfg.NData(), cfg.NParity())
	if err != nil {
		logrus.Fatalf("invalid parity shape: %v", err)
	}

	dispatcher := draid.NewDispatcher(cfg, parity, h)

	return cfg, h, &session{parity: parity, dispatcher: dispatcher}
}

func InitCLI() *cobra.Command {
	rootCmd.PersistentFlags().Uint64Var(&geoChildren, "children", 11, "total dRAID children")
	rootCmd.PersistentFlags().Uint64Var(&geoParity, "parity", 1, "parity columns per stripe")
	rootCmd.PersistentFlags().Uint64Var(&geoSpares, "spares", 1, "distributed spares")
	rootCmd.PersistentFlags().Uint64Var(&geoData, "data", 8, "data columns per stripe")
	rootCmd.PersistentFlags().Uint64Var(&geoGroups, "groups", 1, "redundancy groups per slice")
	rootCmd.PersistentFlags().Uint64Var(&geoAshift, "ashift", 12, "per-child sector shift")

	writeCmd.Flags().StringVar(&inputData, "payload", "", "payload bytes to write")
	readCmd.Flags().Uint64Var(&readSize, "size", 0, "payload size in bytes to read back")
	scrubCmd.Flags().Uint64Var(&readSize, "size", 0, "payload size in bytes to scrub")
	failCmd.Flags().Uint64Var(&childIndex, "child", 0, "child index to fail")
	healCmd.Flags().Uint64Var(&childIndex, "child", 0, "child index to heal")

	rootCmd.AddCommand(versionCmd, configureCmd, writeCmd, readCmd, failCmd, healCmd, scrubCmd)

	return rootCmd
}

func ExecuteCmd() error {
	return InitCLI().Execute()
}
