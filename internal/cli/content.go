package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vietddude/touradmin/internal/service"
)

var (
	blogFilter  service.BlogFilter
	contentList service.ListParams
	cityFilter  service.CityFilter
	dataFilter  service.DataFilter
)

var blogsCmd = &cobra.Command{
	Use:   "blogs",
	Short: "List blog posts",
	Args:  cobra.NoArgs,
	RunE:  run(runBlogsList),
}

var slidesCmd = &cobra.Command{
	Use:   "slides",
	Short: "Manage the home page carousel",
}

var slidesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List hero slides in display order",
	Args:  cobra.NoArgs,
	RunE:  run(runSlidesList),
}

var slidesReorderCmd = &cobra.Command{
	Use:   "reorder [slide-id...]",
	Short: "Set the display order",
	Args:  cobra.MinimumNArgs(1),
	RunE:  run(runSlidesReorder),
}

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Browse the travel guide",
}

var guideStatesCmd = &cobra.Command{
	Use:   "states",
	Short: "List states",
	Args:  cobra.NoArgs,
	RunE:  run(runGuideStates),
}

var guideCitiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List cities",
	Args:  cobra.NoArgs,
	RunE:  run(runGuideCities),
}

var guideDataCmd = &cobra.Command{
	Use:   "entries",
	Short: "List guide entries",
	Args:  cobra.NoArgs,
	RunE:  run(runGuideData),
}

func init() {
	addListFlags(blogsCmd.Flags(), &blogFilter.ListParams)
	blogsCmd.Flags().StringVar((*string)(&blogFilter.Status), "status", "", "draft or published")
	blogsCmd.Flags().StringVar(&blogFilter.Tag, "tag", "", "tag filter")

	addListFlags(slidesListCmd.Flags(), &contentList)
	addListFlags(guideStatesCmd.Flags(), &contentList)
	addListFlags(guideCitiesCmd.Flags(), &cityFilter.ListParams)
	guideCitiesCmd.Flags().StringVar(&cityFilter.StateID, "state", "", "state id")
	addListFlags(guideDataCmd.Flags(), &dataFilter.ListParams)
	guideDataCmd.Flags().StringVar(&dataFilter.CityID, "city", "", "city id")
	guideDataCmd.Flags().StringVar(&dataFilter.Category, "category", "", "category filter")

	slidesCmd.AddCommand(slidesListCmd, slidesReorderCmd)
	guideCmd.AddCommand(guideStatesCmd, guideCitiesCmd, guideDataCmd)
	rootCmd.AddCommand(blogsCmd, slidesCmd, guideCmd)
}

func runBlogsList(s *session, cmd *cobra.Command, args []string) error {
	list, err := s.svc.Blogs.List(s.ctx, blogFilter)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := newTable(out, "ID", "TITLE", "STATUS", "AUTHOR", "CREATED")
	for _, b := range list.Blogs {
		row(w, b.ID, b.Title, b.Status, orDash(b.Author), formatDate(b.CreatedAt))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	printPagination(out, list.Pagination)
	return nil
}

func runSlidesList(s *session, cmd *cobra.Command, args []string) error {
	list, err := s.svc.HeroSlides.List(s.ctx, contentList)
	if err != nil {
		return err
	}

	w := newTable(cmd.OutOrStdout(), "ORDER", "ID", "TITLE", "ACTIVE", "LINK")
	for _, sl := range list.Slides {
		row(w, sl.Order, sl.ID, sl.Title, sl.IsActive, orDash(sl.LinkURL))
	}
	return w.Flush()
}

func runSlidesReorder(s *session, cmd *cobra.Command, args []string) error {
	if err := s.svc.HeroSlides.Reorder(s.ctx, args); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Reordered %d slides\n", len(args))
	return nil
}

func runGuideStates(s *session, cmd *cobra.Command, args []string) error {
	list, err := s.svc.TravelGuide.ListStates(s.ctx, contentList)
	if err != nil {
		return err
	}

	w := newTable(cmd.OutOrStdout(), "ID", "NAME", "SLUG")
	for _, st := range list.States {
		row(w, st.ID, st.Name, st.Slug)
	}
	return w.Flush()
}

func runGuideCities(s *session, cmd *cobra.Command, args []string) error {
	list, err := s.svc.TravelGuide.ListCities(s.ctx, cityFilter)
	if err != nil {
		return err
	}

	w := newTable(cmd.OutOrStdout(), "ID", "NAME", "STATE", "SLUG")
	for _, c := range list.Cities {
		row(w, c.ID, c.Name, c.StateID, c.Slug)
	}
	return w.Flush()
}

func runGuideData(s *session, cmd *cobra.Command, args []string) error {
	list, err := s.svc.TravelGuide.ListData(s.ctx, dataFilter)
	if err != nil {
		return err
	}

	w := newTable(cmd.OutOrStdout(), "ID", "TITLE", "CATEGORY", "CITY", "IMAGES")
	for _, d := range list.Data {
		row(w, d.ID, d.Title, d.Category, d.CityID, len(d.Images))
	}
	return w.Flush()
}
