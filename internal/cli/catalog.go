package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/victornm/themequiz/internal/catalog"
	"github.com/victornm/themequiz/internal/domain"
	"github.com/victornm/themequiz/internal/server"
)

type quizSummary struct {
	ID           string                    `yaml:"id"`
	Name         string                    `yaml:"name"`
	Questions    int                       `yaml:"questions"`
	Difficulties map[domain.Difficulty]int `yaml:"difficulties,omitempty"`
}

func newCatalogCmd(configPath *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Validate a quiz catalog and print a summary",
		Long: "Validate a quiz catalog and print a summary. Without --file, the catalog configured " +
			"for the server is used when it is a file, otherwise the built-in catalog.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if file == "" {
				c, err := loadConfig(*configPath)
				if err != nil {
					return err
				}
				if c.Catalog.Source == server.CatalogFile {
					file = c.Catalog.File
				}
			}

			var (
				cat *catalog.Catalog
				err error
			)
			if file != "" {
				cat, err = catalog.LoadFile(file)
			} else {
				cat, err = catalog.Builtin()
			}
			if err != nil {
				return err
			}

			return printCatalog(cmd.OutOrStdout(), cat)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to a YAML catalog")
	return cmd
}

func printCatalog(w io.Writer, cat *catalog.Catalog) error {
	var l []quizSummary
	for _, q := range cat.List() {
		s := quizSummary{ID: q.ID, Name: q.Name, Questions: len(q.Questions)}
		for _, qs := range q.Questions {
			if qs.Difficulty == "" {
				continue
			}
			if s.Difficulties == nil {
				s.Difficulties = make(map[domain.Difficulty]int)
			}
			s.Difficulties[qs.Difficulty]++
		}
		l = append(l, s)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]any{"quizzes": l}); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	return enc.Close()
}
