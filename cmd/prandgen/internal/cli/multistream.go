package cli

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/skiprand/prand"
)

// newMultistreamCommand reproduces the original library's multistream.c
// example: it runs a single stream for nstream*step draws tracking the
// running maximum, then runs nstream parallel streams at the given step
// and prints each stream's first draw, so a reader can see stream i's
// first draw line up with draw i*step of the single-stream run.
func newMultistreamCommand() *cobra.Command {
	var (
		kindName string
		seed     uint64
		nstream  int
		step     uint64
	)

	cmd := &cobra.Command{
		Use:   "multistream",
		Short: "Demonstrate jump-equivalence between one stream and many",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			kind, err := parseKind(config.GetString("kind"))
			if err != nil {
				return err
			}
			return runMultistream(kind, config.GetUint64("seed"), config.GetInt("nstream"), config.GetUint64("step"))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&kindName, "kind", "mt19937", "generator kind: mt19937 or mrg32k3a")
	flags.Uint64Var(&seed, "seed", 1, "seed value (0 substitutes the generator default)")
	flags.IntVar(&nstream, "nstream", 5, "number of parallel streams")
	flags.Uint64Var(&step, "step", 100000, "draws between successive streams")

	return cmd
}

func parseKind(s string) (prand.Kind, error) {
	switch strings.ToLower(s) {
	case "mt19937":
		return prand.MT19937, nil
	case "mrg32k3a":
		return prand.MRG32K3A, nil
	default:
		return 0, fmt.Errorf("unknown generator kind %q", s)
	}
}

func runMultistream(kind prand.Kind, seed uint64, nstream int, step uint64) error {
	single, usedDefault, err := prand.Init(kind, seed, 1, 0)
	if err != nil {
		return err
	}
	logSeedWarning(usedDefault, seed)

	fmt.Println("-> Single stream:")
	var max float64
	for i := 0; i < nstream; i++ {
		fmt.Printf("%d-th number: %f\n", uint64(i)*step, single.GetUnitIntervalDefault())
		for j := uint64(1); j < step; j++ {
			if z := single.GetUnitIntervalDefault(); z > max {
				max = z
			}
		}
	}

	multi, usedDefault, err := prand.Init(kind, seed, nstream, step)
	if err != nil {
		return err
	}
	logSeedWarning(usedDefault, seed)

	fmt.Printf("-> %d streams with step size %d:\n", nstream, step)
	for i := 0; i < nstream; i++ {
		fmt.Printf("starting number of %d-th stream: %f\n", i, multi.GetUnitInterval(i))
	}
	return nil
}

func logSeedWarning(usedDefault bool, seed uint64) {
	if usedDefault {
		log.Warn().Uint64("seed", seed).Msg(prand.Errmsg(prand.WarnSeed))
	}
}
