package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/hop/internal/core/domain"
	"go.trai.ch/hop/internal/ui/output"
	"go.trai.ch/hop/internal/ui/style"
	"golang.org/x/term"
)

// printer writes command results. Route names are colored by line on terminals only.
type printer struct {
	out *termenv.Output
}

func newPrinter(w io.Writer) *printer {
	if isTerminal(w) {
		return &printer{out: output.New(w)}
	}
	return &printer{out: output.NewPlain(w)}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *printer) route(name string) string {
	return p.out.String(name).Foreground(termenv.RGBColor(string(style.LineColor(name)))).String()
}

func (p *printer) routeList(names []string) string {
	painted := make([]string, 0, len(names))
	for _, n := range names {
		painted = append(painted, p.route(n))
	}
	return strings.Join(painted, ", ")
}

func (p *printer) println(s string) {
	_, _ = p.out.WriteString(s + "\n")
}

func (c *CLI) listRoutes(ctx context.Context, p *printer) error {
	routes, err := c.app.ListRoutes(ctx)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(routes))
	for _, r := range routes {
		names = append(names, r.Name)
	}
	p.println(p.routeList(names))
	return nil
}

func (c *CLI) routeInfo(ctx context.Context, p *printer) error {
	summary, err := c.app.RouteInfo(ctx)
	if err != nil {
		return err
	}
	if summary == nil {
		return domain.ErrEmptyNetwork
	}

	p.println(fmt.Sprintf("%s has the most stops: %d", p.route(summary.MostStops.Route), summary.MostStops.Count))
	p.println(fmt.Sprintf("%s has the least stops: %d", p.route(summary.FewestStops.Route), summary.FewestStops.Count))
	for _, t := range summary.Transfers {
		p.println(fmt.Sprintf("%s stop connects to routes: %s", t.Stop, p.routeList(t.Routes)))
	}
	return nil
}

func (c *CLI) directions(ctx context.Context, p *printer, from, to string) error {
	path, err := c.app.Directions(ctx, from, to)
	if err != nil {
		return err
	}
	p.println(p.routeList(path))
	return nil
}
