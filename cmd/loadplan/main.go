// Command loadplan computes a truck load plan from a request file and
// prints it as JSON.
//
//	loadplan -in request.xlsx -truck-width 2.4 -truck-length 13.2 -pretty
//
// Engine settings (TRUCK_WIDTH, TRUCK_LENGTH, MAX_BOX_SIDE,
// ENGINE_SEQUENTIAL) are read from the environment like the server does;
// the truck flags and a truck given in the file take precedence.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/guttosm/truckload-service/config"
	"github.com/guttosm/truckload-service/internal/domain/dto"
	"github.com/guttosm/truckload-service/internal/domain/model"
	"github.com/guttosm/truckload-service/internal/engine"
	"github.com/guttosm/truckload-service/internal/loadfile"
	"github.com/guttosm/truckload-service/internal/logger"
	"github.com/guttosm/truckload-service/internal/service"
	"github.com/rs/zerolog/log"
)

type cliOpts struct {
	in          string
	truckWidth  float64
	truckLength float64
	pretty      bool
	timeout     time.Duration
	logLevel    string
}

func parseCLIOpts(args []string, stderr io.Writer) (cliOpts, error) {
	var opt cliOpts
	fs := flag.NewFlagSet("loadplan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opt.in, "in", "", "Request file (.json, .toml or .xlsx)")
	fs.Float64Var(&opt.truckWidth, "truck-width", 0, "Truck floor width in meters (overrides the file and TRUCK_WIDTH)")
	fs.Float64Var(&opt.truckLength, "truck-length", 0, "Truck floor length in meters (overrides the file and TRUCK_LENGTH)")
	fs.BoolVar(&opt.pretty, "pretty", false, "Indent the JSON output")
	fs.DurationVar(&opt.timeout, "timeout", 30*time.Second, "Give up after this long")
	fs.StringVar(&opt.logLevel, "log-level", "warn", "Log level written to stderr")
	if err := fs.Parse(args); err != nil {
		return opt, err
	}
	if opt.in == "" {
		fs.Usage()
		return opt, errors.New("-in is required")
	}
	if (opt.truckWidth == 0) != (opt.truckLength == 0) {
		return opt, errors.New("-truck-width and -truck-length must be given together")
	}
	return opt, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit. It returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	opt, err := parseCLIOpts(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "loadplan: %v\n", err)
		return 2
	}
	logger.InitWithWriter(stderr, opt.logLevel, true)

	req, err := loadfile.Read(opt.in)
	if err != nil {
		fmt.Fprintf(stderr, "loadplan: read %s: %v\n", opt.in, err)
		return 1
	}
	if opt.truckWidth > 0 {
		req.Truck = &dto.TruckRequest{Width: opt.truckWidth, Length: opt.truckLength}
	}

	plan, err := optimize(req, config.Load().Engine, opt.timeout)
	if err != nil {
		fmt.Fprintf(stderr, "loadplan: %v\n", err)
		return 1
	}

	enc := json.NewEncoder(stdout)
	if opt.pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(plan); err != nil {
		fmt.Fprintf(stderr, "loadplan: write plan: %v\n", err)
		return 1
	}
	return 0
}

func optimize(req *dto.OptimizeRequest, cfg config.EngineConfig, timeout time.Duration) (model.LoadPlan, error) {
	opts := []service.Option{
		service.WithEngine(engine.New(
			engine.WithMaxBoxSide(cfg.MaxBoxSide),
			engine.WithSequential(cfg.Sequential),
		)),
	}
	if cfg.TruckWidth > 0 && cfg.TruckLength > 0 {
		opts = append(opts, service.WithDefaultTruck(model.Truck{Width: cfg.TruckWidth, Length: cfg.TruckLength}))
	}
	optimizer := service.NewLoadOptimizerService(opts...)
	defer optimizer.Stop()

	loadReq, err := req.ToLoadRequest(optimizer.DefaultTruck())
	if err != nil {
		return model.LoadPlan{}, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	plan, err := optimizer.Optimize(ctx, loadReq)
	if err != nil {
		return model.LoadPlan{}, err
	}
	log.Info().
		Str("strategy", plan.Strategy).
		Int("placed", plan.Stats.TotalPlaced).
		Int("requested", plan.Stats.TotalRequested).
		Float64("utilization", plan.Stats.UtilizationPercent).
		Msg("load plan computed")
	return plan, nil
}
