package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"patterns/internal/adapter"
	"patterns/internal/config"
	"patterns/internal/decorator"
	"patterns/internal/observer"
	"patterns/internal/singleton"
)

func newObserverCmd() *cobra.Command {
	var group, location, date string

	cmd := &cobra.Command{
		Use:   "observer",
		Short: "Plan a concert and notify the fans and the police",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := time.Parse(time.DateOnly, date)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", date, err)
			}

			out := cmd.OutOrStdout()
			planner := observer.NewPlanner()
			fans := []*observer.Fan{
				observer.NewFan("alice", "Marseille", []string{"SPG", "NTM"}, out),
				observer.NewFan("bob", "Marseille", []string{"SPG", "NTM"}, out),
				observer.NewFan("carol", "Marseille", []string{"SPG", "NTM"}, out),
			}
			police := observer.NewPolice([]string{"SPG"}, out)
			for _, f := range fans {
				planner.Attach(f)
			}
			planner.Attach(police)

			planner.Plan(group, day, location)

			notified := police.Notified()
			for _, f := range fans {
				notified += f.Notified()
			}
			if notified == 0 {
				fmt.Fprintln(out, "nobody notified")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&group, "group", "SPG", "Group playing the concert")
	cmd.Flags().StringVar(&location, "location", "Bordeaux", "Town of the concert")
	cmd.Flags().StringVar(&date, "date", "2022-06-12", "Day of the concert (YYYY-MM-DD)")

	return cmd
}

func newSingletonCmd(cfg *config.Config) *cobra.Command {
	var ping bool

	cmd := &cobra.Command{
		Use:   "singleton",
		Short: "Fetch the shared database instance twice",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			defer singleton.Close()

			first, err := singleton.Instance(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			second, err := singleton.Instance(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "same instance: %t\n", first == second)

			if ping {
				if err := first.Ping(ctx, cfg.DBPingAttempts, cfg.DBPingDelay); err != nil {
					return err
				}
				fmt.Fprintln(out, "database reachable")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&ping, "ping", false, "Also check that the database answers")

	return cmd
}

func newAdapterCmd() *cobra.Command {
	var carMiles, bikeKm float64

	cmd := &cobra.Command{
		Use:   "adapter",
		Short: "Compare a car mileage with an adapted bicycle mileage",
		RunE: func(cmd *cobra.Command, args []string) error {
			car := &adapter.Car{Miles: carMiles}
			bike := adapter.NewBicycleAdapter(&adapter.Bicycle{Kilometers: bikeKm})

			out := cmd.OutOrStdout()
			reporters := []struct {
				label    string
				reporter adapter.MileageReporter
			}{
				{"car", car},
				{"bicycle", bike},
			}
			miles := make([]float64, len(reporters))
			for i, r := range reporters {
				body, err := r.reporter.MileageJSON()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %s\n", r.label, body)

				miles[i], err = adapter.Miles(r.reporter)
				if err != nil {
					return err
				}
			}

			switch {
			case miles[0] > miles[1]:
				fmt.Fprintln(out, "the car has travelled further than the bicycle")
			case miles[0] < miles[1]:
				fmt.Fprintln(out, "the bicycle has travelled further than the car")
			default:
				fmt.Fprintln(out, "the car and the bicycle have travelled the same distance")
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&carMiles, "car-miles", 30000, "Car mileage in miles")
	cmd.Flags().Float64Var(&bikeKm, "bike-km", 12000, "Bicycle mileage in kilometers")

	return cmd
}

func newDecoratorCmd() *cobra.Command {
	var sms, email bool

	cmd := &cobra.Command{
		Use:   "decorator",
		Short: "Send a notification through the selected channels",
		RunE: func(cmd *cobra.Command, args []string) error {
			var notifier decorator.Notifier = decorator.Base{}
			if sms {
				notifier = decorator.NewSMS(notifier)
			}
			if email {
				notifier = decorator.NewEmail(notifier)
			}

			fmt.Fprintln(cmd.OutOrStdout(), decorator.NewClient(notifier).Notify())
			return nil
		},
	}

	cmd.Flags().BoolVar(&sms, "sms", true, "Add an SMS")
	cmd.Flags().BoolVar(&email, "email", true, "Add an email")

	return cmd
}
