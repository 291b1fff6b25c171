package commands

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.trai.ch/hop/internal/core/domain"
	"go.trai.ch/hop/internal/ui/style"
	"go.trai.ch/zerr"
)

const prompt = "ready> "

func (c *CLI) newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive prompt",
		Long: `Start an interactive prompt accepting:

  list_routes
  route_info
  directions from <stop> to <stop>
  exit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runShell(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runShell reads commands line by line until exit or end of input.
// Command failures are logged and the loop continues.
func (c *CLI) runShell(ctx context.Context, in io.Reader, out io.Writer) error {
	p := newPrinter(out)
	ps := prompt
	if isTerminal(in) {
		ps = p.out.String(prompt).Foreground(termenv.RGBColor(string(style.Iris))).String()
	}

	scanner := bufio.NewScanner(in)
	for {
		_, _ = p.out.WriteString(ps)
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "exit" {
			break
		}

		if err := c.dispatch(ctx, p, line); err != nil {
			c.logger.Error(err)
		}
	}

	if err := scanner.Err(); err != nil {
		return zerr.Wrap(err, "failed to read input")
	}
	p.println("bye")
	return nil
}

func (c *CLI) dispatch(ctx context.Context, p *printer, line string) error {
	switch {
	case line == "list_routes":
		return c.listRoutes(ctx, p)
	case line == "route_info":
		return c.routeInfo(ctx, p)
	case strings.HasPrefix(line, "directions"):
		from, to, err := parseDirections(line)
		if err != nil {
			return err
		}
		return c.directions(ctx, p, from, to)
	default:
		p.println("unknown command")
		return nil
	}
}

// parseDirections splits "directions from <stop> to <stop>".
func parseDirections(line string) (from, to string, err error) {
	_, rest, ok := strings.Cut(line, " from ")
	if !ok {
		return "", "", zerr.With(domain.ErrInvalidDirections, "input", line)
	}
	from, to, ok = strings.Cut(rest, " to ")
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if !ok || from == "" || to == "" {
		return "", "", zerr.With(domain.ErrInvalidDirections, "input", line)
	}
	return from, to, nil
}
