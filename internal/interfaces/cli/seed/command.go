// Package seed loads mechanics and parts from a YAML fixture file.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	inventoryUsecases "github.com/garagehq/shopapi/internal/application/inventory/usecases"
	mechanicUsecases "github.com/garagehq/shopapi/internal/application/mechanic/usecases"
	"github.com/garagehq/shopapi/internal/infrastructure/repository"
	"github.com/garagehq/shopapi/internal/interfaces/cli/cliutil"
	"github.com/garagehq/shopapi/internal/shared/db"
	"github.com/garagehq/shopapi/internal/shared/logger"
	"github.com/garagehq/shopapi/internal/shared/services/markdown"
)

var (
	env       string
	configDir string
	file      string
)

// Fixture is the layout of a seed file.
type Fixture struct {
	Mechanics []MechanicSeed `yaml:"mechanics"`
	Parts     []PartSeed     `yaml:"parts"`
}

type MechanicSeed struct {
	Name      string `yaml:"name"`
	Specialty string `yaml:"specialty"`
}

type PartSeed struct {
	Name  string  `yaml:"name"`
	Price float64 `yaml:"price"`
}

// Result counts the rows a seed run created.
type Result struct {
	Mechanics int
	Parts     int
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load mechanics and parts from a YAML file",
		Long: `Create the mechanics and inventory parts listed in a YAML file:

  mechanics:
    - name: Casey
      specialty: brakes
  parts:
    - name: Brake pad
      price: 19.5`,
		RunE: run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configDir, "config", "c", "", "Directory holding config.yaml (default: ./configs)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Seed file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	fixture, err := Parse(f)
	if err != nil {
		return err
	}

	rt, err := cliutil.Open(env, configDir)
	if err != nil {
		return err
	}
	defer rt.Close()

	seeder := NewSeeder(rt.DB, rt.Log)
	res, err := seeder.Apply(context.Background(), fixture)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d mechanics and %d parts\n", res.Mechanics, res.Parts)
	return nil
}

// Parse decodes a fixture and rejects unknown keys.
func Parse(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fixture Fixture
	if err := dec.Decode(&fixture); err != nil {
		if err == io.EOF {
			return &fixture, nil
		}
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &fixture, nil
}

// Seeder creates fixture rows through the same use cases the API uses, so
// names are sanitized and validated identically.
type Seeder struct {
	createMechanic *mechanicUsecases.CreateMechanicUseCase
	createPart     *inventoryUsecases.CreatePartUseCase
	txMgr          *db.TransactionManager
	logger         logger.Interface
}

func NewSeeder(gdb *gorm.DB, log logger.Interface) *Seeder {
	sanitizer := markdown.NewMarkdownService()
	return &Seeder{
		createMechanic: mechanicUsecases.NewCreateMechanicUseCase(repository.NewMechanicRepository(gdb, log), sanitizer, log),
		createPart:     inventoryUsecases.NewCreatePartUseCase(repository.NewInventoryRepository(gdb, log), sanitizer, log),
		txMgr:          db.NewTransactionManager(gdb),
		logger:         log,
	}
}

// Apply inserts every fixture row in one transaction; one invalid row leaves
// the database untouched.
func (s *Seeder) Apply(ctx context.Context, fixture *Fixture) (Result, error) {
	var res Result
	err := s.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		for i, m := range fixture.Mechanics {
			if _, err := s.createMechanic.Execute(ctx, mechanicUsecases.CreateMechanicCommand{
				Name:      m.Name,
				Specialty: m.Specialty,
			}); err != nil {
				return fmt.Errorf("mechanic #%d (%q): %w", i+1, m.Name, err)
			}
			res.Mechanics++
		}
		for i, p := range fixture.Parts {
			if _, err := s.createPart.Execute(ctx, inventoryUsecases.CreatePartCommand{
				Name:  p.Name,
				Price: p.Price,
			}); err != nil {
				return fmt.Errorf("part #%d (%q): %w", i+1, p.Name, err)
			}
			res.Parts++
		}
		return nil
	})
	if err != nil {
		s.logger.Errorw("seed failed", "error", err)
		return Result{}, err
	}

	s.logger.Infow("seed applied", "mechanics", res.Mechanics, "parts", res.Parts)
	return res, nil
}
