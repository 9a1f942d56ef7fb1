package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vasalvit/svgpath"
	"github.com/vasalvit/svgpath/internal/logger"
)

type svgReport struct {
	Name  string       `yaml:"name"`
	Title string       `yaml:"title,omitempty"`
	Paths []pathReport `yaml:"paths"`
	Saved int          `yaml:"saved"`
}

type pathReport struct {
	Label  string `yaml:"label,omitempty"`
	Before string `yaml:"before"`
	After  string `yaml:"after"`
	Saved  int    `yaml:"saved"`
}

func svgCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "svg FILE",
		Short: "Minify the path data of every path in an SVG document",
		Long:  "Minify the path data of every path in an SVG document and print a YAML report.\nUse - to read the document from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadSvg(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			report, empty := buildReport(doc, opts.cfg.KeepUnchanged)
			if empty > 0 && opts.cfg.Strict {
				return fmt.Errorf("%s: %d paths: %w", doc.Name, empty, errEmpty)
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(report); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func loadSvg(stdin io.Reader, name string) (*svgpath.Svg, error) {
	if name == "-" {
		return svgpath.ParseSvgFromReader(stdin, "stdin")
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return svgpath.ParseSvgFromReader(f, name)
}

// buildReport minifies every path of doc. It also returns the number of
// paths with data that yielded no commands at all.
func buildReport(doc *svgpath.Svg, keepUnchanged bool) (svgReport, int) {
	report := svgReport{Name: doc.Name, Title: doc.Title, Paths: []pathReport{}}
	empty := 0
	for _, p := range doc.Paths() {
		r := p.Minify()
		log := logger.L().With("label", p.Label())
		if r.Empty() && strings.TrimSpace(r.Input) != "" {
			empty++
			log.Warn("svg.path.empty", "d", r.Input)
		}
		log.Debug("svg.path", "commands", r.Commands, "saved", r.Saved())

		if !r.Changed() && !keepUnchanged {
			continue
		}
		report.Paths = append(report.Paths, pathReport{
			Label:  p.Label(),
			Before: r.Input,
			After:  r.Output,
			Saved:  r.Saved(),
		})
		report.Saved += r.Saved()
	}
	return report, empty
}
