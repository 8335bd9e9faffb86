package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"govprograms/internal/catalog"
	"govprograms/internal/catalog/hclsource"
	"govprograms/internal/gateway/config"
	"govprograms/internal/program/states"
)

// session carries flags and the lazily built catalog through one invocation.
type session struct {
	out    io.Writer
	errOut io.Writer

	extraStatesDir string
	asJSON         bool

	cfg       *config.Config
	providers []states.Provider
	catalog   *catalog.Catalog
}

func Execute() error {
	return NewRootCommand(os.Stdout, os.Stderr).Execute()
}

func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	s := &session{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Query, validate and publish the assistance program catalog",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s.cfg = config.FromEnv()
			dir := strings.TrimSpace(s.extraStatesDir)
			if dir == "" {
				dir = s.cfg.ExtraStatesDir
			}
			extra, err := hclsource.LoadDir(cmd.Context(), dir)
			if err != nil {
				return err
			}
			s.providers = append(states.Builtin(), extra...)
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&s.extraStatesDir, "extra-states", "", "directory of .hcl state files to onboard (default $CATALOG_EXTRA_STATES_DIR)")
	root.PersistentFlags().BoolVar(&s.asJSON, "json", false, "print JSON instead of tables")

	root.AddCommand(
		listCmd(s),
		getCmd(s),
		statesCmd(s),
		categoriesCmd(s),
		validateCmd(s),
		publishCmd(s),
	)
	return root
}

func (s *session) loadCatalog() (*catalog.Catalog, error) {
	if s.catalog != nil {
		return s.catalog, nil
	}
	c, err := catalog.New(s.providers...)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	s.catalog = c
	return c, nil
}
