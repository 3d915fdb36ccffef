// Command roversim is the offline mission runner. It reads mission text from a
// file or stdin, executes it, and prints the final report to stdout. No server
// is involved.
//
// Usage:
//
//	roversim run -f missions/demo.txt
//	cat missions/demo.txt | roversim run
//	roversim run --trace -f missions/demo.txt
//	roversim check -f missions/demo.txt
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/roversim/plateau/rover/engine"
	"github.com/roversim/plateau/rover/formatter"
	"github.com/roversim/plateau/rover/parser"
)

func main() {
	cmd := &cli.Command{
		Name:    "roversim",
		Usage:   "run plateau rover missions from the command line",
		Version: "1.0.0",
		Commands: []*cli.Command{
			runCommand(),
			checkCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "execute a mission and print the final report",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "mission text file (defaults to stdin)",
			},
			&cli.BoolFlag{
				Name:    "trace",
				Aliases: []string{"t"},
				Usage:   "print each rover's step-by-step trace before the report",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			mission, err := readMission(cmd.String("file"))
			if err != nil {
				return err
			}

			finals := make([]engine.RoverState, len(mission.Rovers))
			for i, rover := range mission.Rovers {
				if cmd.Bool("trace") {
					steps, final := engine.ExecuteTrace(rover.Start, rover.Commands, mission.Plateau)
					finals[i] = final
					printTrace(cmd.Root().Writer, i+1, rover, steps)
				} else {
					finals[i] = engine.Execute(rover.Start, rover.Commands, mission.Plateau)
				}
			}

			fmt.Fprintln(cmd.Root().Writer, formatter.Report(finals))
			return nil
		},
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "validate mission text without executing it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "mission text file (defaults to stdin)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			mission, err := readMission(cmd.String("file"))
			if err != nil {
				return err
			}

			totalCommands := 0
			for _, rover := range mission.Rovers {
				totalCommands += len(rover.Commands)
			}

			fmt.Fprintf(cmd.Root().Writer, "Valid mission\n")
			fmt.Fprintf(cmd.Root().Writer, "Plateau: %dx%d\n", mission.Plateau.MaxX, mission.Plateau.MaxY)
			fmt.Fprintf(cmd.Root().Writer, "Rovers: %d\n", len(mission.Rovers))
			fmt.Fprintf(cmd.Root().Writer, "Commands: %d\n", totalCommands)
			return nil
		},
	}
}

// readMission loads mission text from the given file, or stdin when the path
// is empty, and parses it.
func readMission(path string) (*engine.Mission, error) {
	var data []byte
	var err error

	if path == "" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read mission file: %w", err)
		}
	}

	return parser.Parse(string(data))
}

func printTrace(w io.Writer, roverNum int, rover engine.RoverInput, steps []engine.Step) {
	fmt.Fprintf(w, "Rover %d: %d %d %s %s\n", roverNum,
		rover.Start.Position.X, rover.Start.Position.Y, rover.Start.Direction,
		rover.CommandLetters())
	for _, s := range steps {
		note := ""
		if s.Rejected {
			note = " [rejected]"
		}
		fmt.Fprintf(w, "  %d. %c (%d,%d %s) -> (%d,%d %s)%s\n",
			s.Idx, s.Command.Letter(),
			s.From.Position.X, s.From.Position.Y, s.From.Direction,
			s.To.Position.X, s.To.Position.Y, s.To.Direction, note)
	}
	fmt.Fprintln(w)
}
