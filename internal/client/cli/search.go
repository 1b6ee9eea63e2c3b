package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/apetrenko/eventhub/internal/client/models"
)

var errNoFilters = errors.New("Please enter at least one search parameter")

// Search prompts for the filter fields and runs one search. Empty fields
// are absent; an all-empty filter set is rejected before any request.
// Results and the error banner are mutually exclusive.
func (a *App) Search(ctx context.Context) error {
	filters, err := a.promptFilters()
	if err != nil {
		return err
	}

	if filters.IsZero() {
		fmt.Fprintln(a.out, errNoFilters.Error())
		return errNoFilters
	}

	fmt.Fprintln(a.out, "Searching...")
	results, err := a.events.Search(ctx, filters)
	if err != nil {
		a.setError(err.Error())
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	a.setResults(results)
	a.renderResults()
	return nil
}

func (a *App) promptFilters() (models.SearchFilters, error) {
	var f models.SearchFilters
	prompts := []struct {
		label string
		dst   *string
	}{
		{"Keyword (optional)", &f.Keyword},
		{"City (optional)", &f.City},
		{"State code (optional)", &f.StateCode},
		{"Start date YYYY-MM-DD (optional)", &f.StartDate},
		{"End date YYYY-MM-DD (optional)", &f.EndDate},
		{"Category: Music, Sports, Arts & Theatre, Film (optional)", &f.Segment},
	}
	for _, p := range prompts {
		value, err := getSimpleText(a.reader, p.label, a.out)
		if err != nil {
			return models.SearchFilters{}, err
		}
		*p.dst = value
	}
	return f, nil
}

// ClearSearch resets the search view: filters are per-prompt so only
// results and the error banner need clearing.
func (a *App) ClearSearch() {
	a.results = nil
	a.lastErr = ""
	fmt.Fprintln(a.out, "Search cleared.")
}

func (a *App) renderResults() {
	if len(a.results) == 0 {
		fmt.Fprintln(a.out, "No events found. Try different filters.")
		return
	}
	fmt.Fprintf(a.out, "%d events:\n", len(a.results))
	for i, ev := range a.results {
		line := fmt.Sprintf("%3d. %s — %s", i+1, ev.Name, ev.When())
		if where := ev.Where(); where != "" {
			line += " @ " + where
		}
		if price := ev.PriceLabel(); price != "" {
			line += " (" + price + ")"
		}
		fmt.Fprintln(a.out, line)
	}
}

// Show fetches and prints the full record of result number arg.
func (a *App) Show(ctx context.Context, arg string) error {
	ev, err := a.resultAt(arg)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	full, err := a.events.GetByID(ctx, ev.ID)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "%s\n", full.Name)
	fmt.Fprintf(a.out, "  When:  %s\n", full.When())
	if where := full.Where(); where != "" {
		fmt.Fprintf(a.out, "  Where: %s\n", where)
	}
	if full.Segment != "" {
		fmt.Fprintf(a.out, "  Category: %s\n", full.Segment)
	}
	if price := full.PriceLabel(); price != "" {
		fmt.Fprintf(a.out, "  Price: %s\n", price)
	}
	if full.URL != "" {
		fmt.Fprintf(a.out, "  Tickets: %s\n", full.URL)
	}
	return nil
}

// Favorite adds result number arg to the signed-in user's favorites.
func (a *App) Favorite(ctx context.Context, arg string) error {
	cur := a.session.Current()
	if cur.Anonymous() {
		fmt.Fprintln(a.out, "Please log in to save favorites.")
		return nil
	}

	ev, err := a.resultAt(arg)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if err := a.users.AddFavorite(ctx, cur.User.ID, ev.Snapshot()); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintf(a.out, "Event added to favorites: %s\n", ev.Name)
	return nil
}

func (a *App) resultAt(arg string) (models.EventResult, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(a.results) {
		return models.EventResult{}, fmt.Errorf("No such result: %s", arg)
	}
	return a.results[n-1], nil
}
