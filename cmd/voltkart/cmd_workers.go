package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/voltkart/app/jobs"
	"github.com/shashiranjanraj/voltkart/pkg/cache"
	"github.com/shashiranjanraj/voltkart/pkg/database"
	"github.com/shashiranjanraj/voltkart/pkg/queue"
	"github.com/shashiranjanraj/voltkart/pkg/schedule"
)

var queueWorkersFlag int

// bootWorkers opens the database and cache, wires the queue driver, and
// registers job factories. Standalone workers share the Redis queue with
// the server when Redis is up.
func bootWorkers() error {
	if err := bootDB(); err != nil {
		return err
	}
	if err := cache.Connect(); err != nil {
		fmt.Println("Redis unavailable, using the in-memory queue:", err)
	}

	queue.UseDB(database.DB)
	if cache.Available() {
		queue.SetDriver(queue.NewRedisDriver(cache.RDB))
	}
	jobs.Register()
	return nil
}

// voltkart queue:work
var queueWorkCmd = &cobra.Command{
	Use:   "queue:work",
	Short: "Start the queue worker",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootWorkers(); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		workers := queueWorkersFlag
		if workers < 1 {
			workers = 5
		}

		fmt.Printf("Queue worker started (%d workers). Press Ctrl+C to stop.\n", workers)
		queue.StartWorkers(ctx, workers)

		<-ctx.Done()
		fmt.Println("\nQueue worker stopped.")
		return nil
	},
}

// voltkart schedule:run
var scheduleRunCmd = &cobra.Command{
	Use:   "schedule:run",
	Short: "Start the task scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := bootWorkers(); err != nil {
			return err
		}

		schedule.Daily().Name("low-stock-digest").Run(func() {
			if err := queue.Dispatch(&jobs.LowStockDigestJob{Threshold: jobs.DefaultLowStockThreshold}); err != nil {
				fmt.Println("dispatch low stock digest:", err)
			}
		})

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		tasks := schedule.List()
		fmt.Println("Registered scheduled tasks:")
		for _, t := range tasks {
			fmt.Println("  •", t)
		}

		fmt.Println("Scheduler started. Press Ctrl+C to stop.")
		schedule.Start(ctx)

		<-ctx.Done()
		fmt.Println("\nScheduler stopped.")
		return nil
	},
}

func init() {
	queueWorkCmd.Flags().IntVarP(&queueWorkersFlag, "workers", "w", 5, "Number of concurrent workers")
}
