package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vietddude/touradmin/internal/core/domain"
	"github.com/vietddude/touradmin/internal/service"
)

var (
	tourFilter   service.TourFilter
	tourFeatured string
	tourInput    domain.TourInput
	tourImages   []string
)

var toursCmd = &cobra.Command{
	Use:   "tours",
	Short: "Manage tour packages",
}

var toursListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tours",
	Args:  cobra.NoArgs,
	RunE:  run(runToursList),
}

var toursGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one tour",
	Args:  cobra.ExactArgs(1),
	RunE:  run(runToursGet),
}

var toursCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a tour",
	Args:  cobra.NoArgs,
	RunE:  run(runToursCreate),
}

var toursStatusCmd = &cobra.Command{
	Use:   "status [id] [draft|published|archived]",
	Short: "Change a tour's status",
	Args:  cobra.ExactArgs(2),
	RunE:  run(runToursStatus),
}

var toursDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a tour",
	Args:  cobra.ExactArgs(1),
	RunE:  run(runToursDelete),
}

func init() {
	f := toursListCmd.Flags()
	addListFlags(f, &tourFilter.ListParams)
	f.StringVar((*string)(&tourFilter.Status), "status", "", "draft, published or archived")
	f.StringVar(&tourFilter.Category, "category", "", "category filter")
	f.StringVar(&tourFeatured, "featured", "", "true or false")

	c := toursCreateCmd.Flags()
	c.StringVar(&tourInput.Title, "title", "", "tour title")
	c.StringVar(&tourInput.Destination, "destination", "", "destination")
	c.StringVar(&tourInput.Description, "description", "", "description")
	c.StringVar(&tourInput.Category, "category", "", "category")
	c.IntVar(&tourInput.DurationDays, "days", 0, "duration in days")
	c.Float64Var(&tourInput.Price, "price", 0, "price")
	c.StringVar(&tourInput.Currency, "currency", "", "currency code")
	c.StringVar((*string)(&tourInput.Status), "status", "", "initial status")
	c.BoolVar(&tourInput.Featured, "featured", false, "feature on the home page")
	c.StringSliceVar(&tourImages, "image", nil, "image file to upload (repeatable)")

	toursCmd.AddCommand(toursListCmd, toursGetCmd, toursCreateCmd, toursStatusCmd, toursDeleteCmd)
	rootCmd.AddCommand(toursCmd)
}

func runToursList(s *session, cmd *cobra.Command, args []string) error {
	filter := tourFilter
	if tourFeatured != "" {
		featured, err := strconv.ParseBool(tourFeatured)
		if err != nil {
			return fmt.Errorf("invalid --featured value %q", tourFeatured)
		}
		filter.Featured = &featured
	}

	list, err := s.svc.Tours.List(s.ctx, filter)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := newTable(out, "ID", "TITLE", "DESTINATION", "DAYS", "PRICE", "STATUS", "FEATURED")
	for _, t := range list.Tours {
		row(w, t.ID, t.Title, t.Destination, t.DurationDays, formatPrice(t.Price, t.Currency), t.Status, t.Featured)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	printPagination(out, list.Pagination)
	return nil
}

func runToursGet(s *session, cmd *cobra.Command, args []string) error {
	t, err := s.svc.Tours.Get(s.ctx, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", t.Title, t.Status)
	fmt.Fprintf(out, "Destination: %s\nDuration:    %d days\nPrice:       %s\n",
		t.Destination, t.DurationDays, formatPrice(t.Price, t.Currency))
	if t.Description != "" {
		fmt.Fprintf(out, "\n%s\n", t.Description)
	}
	if len(t.Itinerary) > 0 {
		fmt.Fprintln(out)
		w := newTable(out, "DAY", "TITLE")
		for _, d := range t.Itinerary {
			row(w, d.Day, d.Title)
		}
		return w.Flush()
	}
	return nil
}

func runToursCreate(s *session, cmd *cobra.Command, args []string) error {
	in := tourInput
	images, err := readUploads(tourImages)
	if err != nil {
		return err
	}
	in.Images = images

	t, err := s.svc.Tours.Create(s.ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created tour %s (%s)\n", t.ID, t.Title)
	return nil
}

func runToursStatus(s *session, cmd *cobra.Command, args []string) error {
	t, err := s.svc.Tours.SetStatus(s.ctx, args[0], domain.TourStatus(args[1]))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Tour %s is now %s\n", t.ID, t.Status)
	return nil
}

func runToursDelete(s *session, cmd *cobra.Command, args []string) error {
	if err := s.svc.Tours.Delete(s.ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted tour %s\n", args[0])
	return nil
}

func formatPrice(price float64, currency string) string {
	if currency == "" {
		return strconv.FormatFloat(price, 'f', 2, 64)
	}
	return strconv.FormatFloat(price, 'f', 2, 64) + " " + currency
}
