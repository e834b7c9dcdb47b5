package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"liftcar/src/car"
	"liftcar/src/clock"
	"liftcar/src/config"
	"liftcar/src/types"
)

func main() {
	minFloor := flag.Int("min", config.DefaultMinFloor, "lowest served floor")
	maxFloor := flag.Int("max", config.DefaultMaxFloor, "highest served floor")
	startFloor := flag.Int("start", config.DefaultStartFloor, "floor the car starts at")
	flag.Parse()

	initLogger()

	c, err := car.New(*minFloor, *maxFloor, *startFloor, clock.SystemClock{})
	if err != nil {
		slog.Error("Invalid car configuration", "err", err)
		os.Exit(1)
	}
	slog.Info("Car ready", "min", *minFloor, "max", *maxFloor, "floor", *startFloor)

	fmt.Println("commands: press <floor> | call <floor> up|down | step | open | close | status | quit")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "press":
			floor, ok := parseFloor(fields)
			if !ok {
				continue
			}
			if err := c.PressButton(floor); err != nil {
				slog.Error("Press rejected", "err", err)
			}
		case "call":
			floor, ok := parseFloor(fields)
			if !ok {
				continue
			}
			dir, ok := parseHallDir(fields)
			if !ok {
				continue
			}
			if err := c.CallFrom(floor, dir); err != nil {
				slog.Error("Call rejected", "err", err)
			}
		case "step":
			if err := c.StepUntilStop(config.DefaultMaxSteps); err != nil {
				slog.Error("Step failed", "err", err)
			}
			printStatus(c)
		case "open":
			if err := c.OpenDoors(); err != nil {
				slog.Error("Open failed", "err", err)
			}
		case "close":
			if err := c.CloseDoors(); err != nil {
				slog.Error("Close failed", "err", err)
			}
		case "status":
			printStatus(c)
		case "quit":
			return
		default:
			fmt.Println("unknown command:", fields[0])
		}
	}
}

func parseFloor(fields []string) (int, bool) {
	if len(fields) < 2 {
		fmt.Println("missing floor argument")
		return 0, false
	}
	floor, err := strconv.Atoi(fields[1])
	if err != nil {
		fmt.Println("bad floor:", fields[1])
		return 0, false
	}
	return floor, true
}

func parseHallDir(fields []string) (types.HallDir, bool) {
	if len(fields) < 3 {
		fmt.Println("missing direction argument")
		return 0, false
	}
	switch fields[2] {
	case "up":
		return types.HallUp, true
	case "down":
		return types.HallDown, true
	default:
		fmt.Println("bad direction:", fields[2])
		return 0, false
	}
}

func printStatus(c *car.Car) {
	st := c.Status()
	fmt.Printf("floor %d | dir %s | doors %s | panel %v | calls %v\n",
		st.Floor, st.Dir, st.Doors, st.Panel, st.Calls)
}

// initLogger sets up global logging configuration with compact time format.
func initLogger() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("15:04:05"))
				}
			}
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					file := source.File
					if lastSlash := strings.LastIndexByte(file, '/'); lastSlash >= 0 {
						file = file[lastSlash+1:]
					}
					a.Value = slog.StringValue(fmt.Sprintf("%s:%d", file, source.Line))
				}
			}
			return a
		},
	})
	slog.SetDefault(slog.New(handler))
}
