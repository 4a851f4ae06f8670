package app

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/circuitstorm/internal/dispatcher"
	"github.com/dshills/circuitstorm/internal/engine"
	"github.com/dshills/circuitstorm/internal/engine/circuit"
)

const replHelp = `Commands:
  add <resistor|capacitor|inductor> <value> <series|parallel>
  remove <id>
  find <id>
  list
  analyze [frequency_hz]
  undo
  log
  help
  quit`

// repl reads commands line by line and dispatches them. Input parsing
// and numeric validation live here, on the presentation side; the core
// re-checks values defensively.
func (a *App) repl(ctx context.Context) error {
	fmt.Fprintln(a.out, "circuitstorm - type 'help' for commands")

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(a.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		scanErr <- scanner.Err()
		close(lines)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			if quit := a.handleLine(strings.TrimSpace(line)); quit {
				return nil
			}
		}
	}
}

// handleLine executes one command. It returns true when the session
// should end.
func (a *App) handleLine(line string) bool {
	if line == "" {
		return false
	}

	fields := strings.Fields(line)
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(a.out, replHelp)
	case "add":
		a.cmdAdd(args)
	case "remove":
		a.cmdRemove(args)
	case "find":
		a.cmdFind(args)
	case "list":
		a.cmdList()
	case "analyze":
		a.cmdAnalyze(args)
	case "undo":
		res := a.disp.Undo(dispatcher.UndoRequest{})
		fmt.Fprintln(a.out, res.Message)
	case "log":
		a.cmdLog()
	default:
		fmt.Fprintf(a.out, "Unknown command %q. Type 'help' for commands.\n", cmd)
	}
	return false
}

func (a *App) cmdAdd(args []string) {
	if len(args) != 3 {
		fmt.Fprintln(a.out, "Usage: add <type> <value> <series|parallel>")
		return
	}

	t, ok := circuit.ParseType(args[0])
	if !ok {
		fmt.Fprintf(a.out, "Unknown component type %q.\n", args[0])
		return
	}
	g, ok := circuit.ParseGroup(args[2])
	if !ok {
		fmt.Fprintf(a.out, "Unknown group %q.\n", args[2])
		return
	}
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil || value <= 0 {
		fmt.Fprintln(a.out, "Invalid value. Enter a positive number.")
		return
	}

	res := a.disp.Add(dispatcher.AddComponentRequest{Type: t, Value: value, Group: g})
	if res.IsOK() {
		fmt.Fprintf(a.out, "%s (ID=%d)\n", res.Message, res.ID)
	} else {
		fmt.Fprintln(a.out, res.Message)
	}
}

func (a *App) cmdRemove(args []string) {
	id, ok := a.parseID(args)
	if !ok {
		return
	}
	res := a.disp.Remove(dispatcher.RemoveComponentRequest{ID: id})
	fmt.Fprintln(a.out, res.Message)
}

func (a *App) cmdFind(args []string) {
	id, ok := a.parseID(args)
	if !ok {
		return
	}
	res := a.disp.Find(dispatcher.FindComponentRequest{ID: id})
	fmt.Fprintln(a.out, res.Message)
	if res.Component != nil {
		c := res.Component
		fmt.Fprintf(a.out, "  ID: %d  %s  %g %s  %s\n", c.ID, c.Type, c.Value, c.Type.Unit(), c.Group)
	}
}

func (a *App) cmdList() {
	res := a.disp.List(dispatcher.ListGroupsRequest{})
	a.printGroup("SERIES", res.Series)
	a.printGroup("PARALLEL", res.Parallel)
}

func (a *App) printGroup(name string, ids []engine.ID) {
	if len(ids) == 0 {
		fmt.Fprintf(a.out, "%s circuit: EMPTY\n", name)
		return
	}
	fmt.Fprintf(a.out, "%s circuit:\n", name)
	for _, id := range ids {
		if c, ok := a.eng.Find(id); ok {
			fmt.Fprintf(a.out, "  ID:%d  %s  %g %s\n", c.ID, c.Type, c.Value, c.Type.Unit())
		}
	}
}

func (a *App) cmdAnalyze(args []string) {
	req := dispatcher.AnalyzeRequest{}
	if len(args) > 0 {
		freq, err := strconv.ParseFloat(args[0], 64)
		if err != nil || freq <= 0 {
			fmt.Fprintln(a.out, "Invalid frequency. Enter a positive number.")
			return
		}
		req.FrequencyHz = freq
	}

	res := a.disp.Analyze(req)
	r := res.Report
	fmt.Fprintln(a.out, "Circuit Analysis Report")
	fmt.Fprintf(a.out, "Frequency: %.1f Hz\n", r.FrequencyHz)
	fmt.Fprintf(a.out, "Series: %d components | R = %.3f Ohm | Z = %.3f Ohm\n",
		r.SeriesCount, r.SeriesResistance, r.SeriesMagnitude)
	fmt.Fprintf(a.out, "Parallel: %d components | R = %.3f Ohm | Z = %.3f Ohm\n",
		r.ParallelCount, r.ParallelResistance, r.ParallelMagnitude)
	if r.Combined {
		fmt.Fprintf(a.out, "Total R = %.3f Ohm | Total Z = %.3f Ohm\n",
			r.CombinedResistance, r.CombinedMagnitude)
	} else if r.ComponentCount == 0 {
		fmt.Fprintln(a.out, "No components added yet!")
	}
}

func (a *App) cmdLog() {
	entries := a.disp.OperationLog()
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "Operation log is empty.")
		return
	}
	for _, e := range entries {
		fmt.Fprintln(a.out, e)
	}
}

func (a *App) parseID(args []string) (engine.ID, bool) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: <command> <id>")
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Invalid ID.")
		return 0, false
	}
	return engine.ID(n), true
}
