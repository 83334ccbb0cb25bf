package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/runera/runera-backend/internal/adapter"
	"github.com/runera/runera-backend/internal/api/shared/dto"
	"github.com/runera/runera-backend/internal/events"
	"github.com/runera/runera-backend/internal/logger"
	"github.com/runera/runera-backend/internal/store"
)

// seedEventCmd upserts an event keyed by its 32-byte event ID
func seedEventCmd() *cobra.Command {
	var (
		input    events.SeedEventInput
		start    string
		end      string
		inactive bool
	)

	cmd := &cobra.Command{
		Use:   "seed-event",
		Short: "Create or update an event",
		Example: `  runera-admin seed-event --event-id 0x$(openssl rand -hex 32)
  runera-admin seed-event --event-id 0xabc... --name "Spring 5K" --target-distance 5000 --start 2025-03-01T00:00:00Z`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if input.StartTime, err = parseTimeFlag("start", start); err != nil {
				return err
			}
			if input.EndTime, err = parseTimeFlag("end", end); err != nil {
				return err
			}
			input.Inactive = inactive

			engine := events.NewEngine(store.NewPGStore(db), adapter.NewClock())
			event, err := engine.SeedEvent(cmd.Context(), input)
			if err != nil {
				return fmt.Errorf("failed to seed event: %w", err)
			}

			logger.InfoCtx(cmd.Context(), "Event seeded",
				zap.String("event_id", event.EventID),
				zap.String("slug", event.Slug),
				zap.Bool("active", event.Active),
			)

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(dto.MapEventToDTO(event))
		},
	}

	cmd.Flags().StringVar(&input.EventID, "event-id", "", "0x-prefixed 32-byte event id (required)")
	cmd.Flags().StringVar(&input.Name, "name", events.DEFAULT_EVENT_NAME, "Display name")
	cmd.Flags().IntVar(&input.MinTier, "min-tier", events.DEFAULT_MIN_TIER, "Minimum tier required to join")
	cmd.Flags().Float64Var(&input.MinTotalDistanceMeters, "min-total-distance", events.DEFAULT_MIN_TOTAL_DISTANCE, "Minimum lifetime verified distance in meters")
	cmd.Flags().Float64Var(&input.TargetDistanceMeters, "target-distance", events.DEFAULT_TARGET_DISTANCE, "Single-run distance in meters that completes the event")
	cmd.Flags().Int64Var(&input.ExpReward, "exp-reward", events.DEFAULT_EXP_REWARD, "Experience granted on completion")
	cmd.Flags().StringVar(&start, "start", "", "Window start (RFC3339), defaults to now")
	cmd.Flags().StringVar(&end, "end", "", "Window end (RFC3339), defaults to 30 days after start")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "Create the event without opening it")
	_ = cmd.MarkFlagRequired("event-id")

	return cmd
}

func parseTimeFlag(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s must be an RFC3339 timestamp: %w", name, err)
	}
	return t.UTC(), nil
}
