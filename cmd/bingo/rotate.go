package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nightreign-bingo/internal/repository"
	"nightreign-bingo/internal/service"
)

type rotateOptions struct {
	preset string
	every  time.Duration
	at     string
}

func newRotateCmd(a *app) *cobra.Command {
	opts := &rotateOptions{}
	cmd := &cobra.Command{
		Use:   "rotate",
		Short: "Regenerate the board from a preset on a schedule",
		Long: `Writes a fresh board from the preset right away and then again on every
tick until interrupted. Each board gets a new seed.

Examples:
  bingo rotate --preset weekly.yaml --every 24h
  bingo rotate --preset weekly.yaml --at 18:00`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRotate(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.preset, "preset", "", "YAML preset with boss, nightfarer, map and quota (required)")
	cmd.Flags().DurationVar(&opts.every, "every", 0, "regenerate at this interval (env BINGO_ROTATE_INTERVAL)")
	cmd.Flags().StringVar(&opts.at, "at", "", "regenerate daily at HH:MM local time (env BINGO_ROTATE_AT)")
	_ = cmd.MarkFlagRequired("preset")
	return cmd
}

func (a *app) runRotate(cmd *cobra.Command, opts *rotateOptions) error {
	every, at := opts.every, opts.at
	if every == 0 && at == "" {
		every, at = a.cfg.RotateInterval, a.cfg.RotateAt
	}
	if every == 0 && at == "" {
		return errors.New("one of --every or --at is required")
	}
	if every != 0 && at != "" {
		return errors.New("--every and --at are mutually exclusive")
	}

	catalog, err := a.loadCatalog(cmd.Context(), a.cfg.CatalogDB)
	if err != nil {
		return err
	}
	sel, err := a.selectionFromPreset(catalog, opts.preset)
	if err != nil {
		return err
	}
	pool := service.BuildPool(sel, catalog.Generic)
	boards := service.NewBoardService(repository.NewBoardFile(a.cfg.Output()), a.log)
	out := cmd.OutOrStdout()

	rotateOnce := func(ctx context.Context) {
		res, err := boards.Generate(ctx, pool, sel.Quota, 0)
		if err != nil {
			a.log.Error("rotate board", zap.Error(err))
			return
		}
		fmt.Fprintf(out, "%s board rotated, saved to %s (seed %d)\n",
			time.Now().Format(time.DateTime), res.Path, res.Seed)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rotateOnce(ctx)

	scheduler := service.NewSchedulerService(time.Local, a.log)
	job := func() {
		jobCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		rotateOnce(jobCtx)
	}
	var id cron.EntryID
	if every > 0 {
		id, err = scheduler.ScheduleInterval(every, job)
	} else {
		id, err = scheduler.ScheduleDaily(at, job)
	}
	if err != nil {
		return fmt.Errorf("schedule rotation: %w", err)
	}

	scheduler.Start()
	defer scheduler.Stop()
	a.log.Info("rotation started", zap.Time("next", scheduler.Next(id)))

	<-ctx.Done()
	a.log.Info("rotation stopped")
	return nil
}
