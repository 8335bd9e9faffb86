package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"govprograms/internal/catalog"
	"govprograms/internal/program"
)

func listCmd(s *session) *cobra.Command {
	var state, category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List programs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if state != "" && category != "" {
				return fmt.Errorf("--state and --category cannot be combined")
			}
			c, err := s.loadCatalog()
			if err != nil {
				return err
			}
			var programs []program.Program
			switch {
			case state != "":
				programs = c.ProgramsByState(state)
			case cmd.Flags().Changed("category"):
				programs = c.ProgramsByCategory(program.Category(category))
			default:
				programs = c.All()
			}
			if s.asJSON {
				return writeJSON(s.out, programs)
			}
			if len(programs) == 0 {
				fmt.Fprintln(s.out, "no programs found")
				return nil
			}
			fmt.Fprintln(s.out, renderProgramTable(c, programs))
			return nil
		},
	}
	cmd.Flags().StringVar(&state, "state", "", "two-letter state code")
	cmd.Flags().StringVar(&category, "category", "", "exact category name, e.g. \"Family Support\"")
	return cmd
}

func getCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.loadCatalog()
			if err != nil {
				return err
			}
			p, err := c.ProgramByID(args[0])
			if err != nil {
				var nf *catalog.NotFoundError
				if errors.As(err, &nf) && len(nf.Suggestions) > 0 {
					fmt.Fprintln(s.errOut, hintStyle.Render("did you mean: "+joinIDs(nf.Suggestions)))
				}
				return err
			}
			if s.asJSON {
				return writeJSON(s.out, p)
			}
			state, _ := c.StateOf(p.ID)
			fmt.Fprintln(s.out, renderProgramDetail(p, state))
			return nil
		},
	}
}

func statesCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "states",
		Short: "List onboarded states",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.loadCatalog()
			if err != nil {
				return err
			}
			if s.asJSON {
				return writeJSON(s.out, c.States())
			}
			fmt.Fprintln(s.out, renderStateTable(c.States()))
			return nil
		},
	}
}

func categoriesCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List program categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.loadCatalog()
			if err != nil {
				return err
			}
			if s.asJSON {
				return writeJSON(s.out, c.Categories())
			}
			for _, cat := range c.Categories() {
				fmt.Fprintf(s.out, "%s (%d)\n", cat, len(c.ProgramsByCategory(cat)))
			}
			return nil
		},
	}
}

func validateCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the catalog for duplicate ids and incomplete records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := catalog.Validate(s.providers...); err != nil {
				fmt.Fprintln(s.errOut, errorStyle.Render("catalog is invalid:"))
				fmt.Fprintln(s.errOut, err)
				return errors.New("validation failed")
			}
			c, err := s.loadCatalog()
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out, "ok: %d programs across %d states\n", c.Len(), len(c.States()))
			return nil
		},
	}
}
