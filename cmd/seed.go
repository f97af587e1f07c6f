package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/citytransit/transitseed/generator"
	"github.com/citytransit/transitseed/storage"
)

var (
	seedDryRun           bool
	seedRandomSeed       int64
	seedMaxVehicleNumber int
	seedFineAmount       float64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Interactively generate and persist synthetic data",
	Long: `seed walks through every entity kind in dependency order and asks how
many rows to generate. An empty or non-numeric answer skips that kind.
Kinds whose prerequisites are missing (for example rides before any
vehicle exists) are reported and skipped; any storage error aborts the
remaining prompts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var store storage.Store
		if seedDryRun {
			color.Yellow("Dry run: generating into an in-memory store, the database is not touched")
			store = storage.NewMemory()
		} else {
			pg, closeDB, err := openStore()
			if err != nil {
				return err
			}
			defer closeDB()
			store = pg
		}
		return runSeed(store, bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)

	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "generate into an in-memory store instead of the database")
	seedCmd.Flags().Int64Var(&seedRandomSeed, "seed", 0, "random seed for reproducible runs (0 picks one)")
	seedCmd.Flags().IntVar(&seedMaxVehicleNumber, "max-vehicle-number", generator.DefaultMaxVehicleNumber, "exclusive upper bound for fleet numbers")
	seedCmd.Flags().Float64Var(&seedFineAmount, "fine-amount", generator.DefaultFineAmount, "amount of every generated fine")
}

type seedStep struct {
	// name is plural, as shown in the prompts
	name     string
	generate func() error
}

func runSeed(store storage.Store, in *bufio.Reader, out io.Writer) error {
	g := generator.New(store, seedRandomSeed)

	if promptYesNo(in, out, "Clear all existing data first?") {
		if err := store.ClearAll(); err != nil {
			return err
		}
		color.Green("All tables cleared")
	}

	steps := []seedStep{
		{"users", func() error {
			user, err := g.GenerateUser()
			if err != nil {
				return err
			}
			return store.InsertUser(user)
		}},
		{"passengers", func() error {
			passenger, err := g.GeneratePassenger()
			if err != nil {
				return err
			}
			return store.InsertPassenger(passenger)
		}},
		{"ticket inspectors", func() error {
			inspector, err := g.GenerateTicketInspector()
			if err != nil {
				return err
			}
			return store.InsertTicketInspector(inspector)
		}},
		{"drivers", func() error {
			driver, err := g.GenerateDriver()
			if err != nil {
				return err
			}
			return store.InsertDriver(driver)
		}},
		{"editors", func() error {
			editor, err := g.GenerateEditor()
			if err != nil {
				return err
			}
			return store.InsertEditor(editor)
		}},
		{"vehicles", func() error {
			vehicle, err := g.GenerateVehicle(seedMaxVehicleNumber)
			if err != nil {
				return err
			}
			return store.InsertVehicle(vehicle)
		}},
		{"stops", func() error {
			stop, err := g.GenerateStop(nil)
			if err != nil {
				return err
			}
			return store.InsertStop(stop)
		}},
		{"paths", func() error {
			path, err := g.GeneratePath()
			if err != nil {
				return err
			}
			if err := store.InsertPath(path); err != nil {
				return err
			}
			pathStops, err := g.GeneratePathStops(path)
			if err != nil {
				return err
			}
			for _, pathStop := range pathStops {
				if err := store.InsertPathStop(pathStop); err != nil {
					return err
				}
			}
			return nil
		}},
		{"lines", func() error {
			line, err := g.GenerateLine()
			if err != nil {
				return err
			}
			return store.InsertLine(line)
		}},
		{"rides", func() error {
			ride, err := g.GenerateRide()
			if err != nil {
				return err
			}
			return store.InsertRide(ride)
		}},
	}
	for _, step := range steps {
		if err := runStep(in, out, step); err != nil {
			return err
		}
	}

	if promptYesNo(in, out, "Regenerate the ticket type catalog?") {
		if err := store.ClearTicketTypes(); err != nil {
			return err
		}
		ticketTypes, err := g.GenerateTicketTypes(0, 0)
		if err != nil {
			return err
		}
		color.Green("Generated %d ticket types", len(ticketTypes))
	}

	finalSteps := []seedStep{
		{"tickets", func() error {
			ticket, err := g.GenerateTicket()
			if err != nil {
				return err
			}
			return store.InsertTicket(ticket)
		}},
		{"fines", func() error {
			fine, err := g.GenerateFine(seedFineAmount)
			if err != nil {
				return err
			}
			return store.InsertFine(fine)
		}},
		{"inspections", func() error {
			inspection, err := g.GenerateInspection()
			if err != nil {
				return err
			}
			return store.InsertInspection(inspection)
		}},
		{"technical issues", func() error {
			issue, err := g.GenerateTechnicalIssue()
			if err != nil {
				return err
			}
			return store.InsertTechnicalIssue(issue)
		}},
	}
	for _, step := range finalSteps {
		if err := runStep(in, out, step); err != nil {
			return err
		}
	}

	color.Green("Done")
	return nil
}

// runStep prompts for a count and generates that many entities. Missing
// prerequisites and exhausted namespaces end the step early; anything
// else aborts the run.
func runStep(in *bufio.Reader, out io.Writer, step seedStep) error {
	count, ok := promptCount(in, out, step.name)
	if !ok {
		return nil
	}
	generated := 0
	for i := 0; i < count; i++ {
		err := step.generate()
		if errors.Is(err, generator.ErrInsufficientData) || errors.Is(err, generator.ErrNamespaceExhausted) {
			color.Yellow("No data generated: %v", err)
			break
		}
		if err != nil {
			return err
		}
		generated++
	}
	color.Green("Generated %d %s", generated, step.name)
	return nil
}

func promptCount(in *bufio.Reader, out io.Writer, name string) (int, bool) {
	fmt.Fprintf(out, "How many %s to generate? ", name)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return 0, false
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, false
	}
	count, err := strconv.Atoi(line)
	if err != nil || count < 0 {
		color.Yellow("%q is not a valid count, skipping %s", line, name)
		return 0, false
	}
	return count, true
}

func promptYesNo(in *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y")
}
