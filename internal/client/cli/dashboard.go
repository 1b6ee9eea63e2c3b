package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/apetrenko/eventhub/internal/client/models"
)

// Dashboard loads the signed-in user's favorites fresh from the server
// (read-through, no cache) and switches to the dashboard view.
func (a *App) Dashboard(ctx context.Context) error {
	cur := a.session.Current()
	if cur.Anonymous() {
		fmt.Fprintln(a.out, "Please log in to open the dashboard.")
		return nil
	}

	favorites, err := a.users.Favorites(ctx, cur.User.ID)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	// The unauthorized hook may have cleared the session while the call
	// was outstanding; never trust the pre-call copy.
	if a.session.Current().Anonymous() {
		return nil
	}

	a.favorites = favorites
	a.stats = computeStats(favorites, time.Now())
	a.dashboard = true
	a.renderDashboard()
	return nil
}

// Unfavorite removes favorite number arg after explicit confirmation.
// On a confirmed success exactly that favorite leaves the in-memory list
// and the total drops by one; nothing else changes.
func (a *App) Unfavorite(ctx context.Context, arg string) error {
	fav, idx, err := a.favoriteAt(arg)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	ok, err := getConfirmation(a.reader, "Remove this event from favorites?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	cur := a.session.Current()
	if cur.Anonymous() {
		return nil
	}

	if err := a.users.RemoveFavorite(ctx, cur.User.ID, fav.EventID); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	a.favorites = append(a.favorites[:idx], a.favorites[idx+1:]...)
	a.stats.Total--
	fmt.Fprintf(a.out, "Event removed from favorites: %s\n", fav.Name)
	return nil
}

// Back leaves the dashboard. Session and search results are untouched;
// this is a view switch only.
func (a *App) Back() {
	a.dashboard = false
}

func (a *App) favoriteAt(arg string) (models.Favorite, int, error) {
	if !a.dashboard {
		return models.Favorite{}, 0, fmt.Errorf("Open the dashboard first")
	}
	var n int
	if _, err := fmt.Sscanf(arg, "%d", &n); err != nil || n < 1 || n > len(a.favorites) {
		return models.Favorite{}, 0, fmt.Errorf("No such favorite: %s", arg)
	}
	return a.favorites[n-1], n - 1, nil
}

func (a *App) renderDashboard() {
	cur := a.session.Current()
	if cur.Anonymous() {
		return
	}
	fmt.Fprintf(a.out, "Dashboard — %s <%s>\n", cur.User.Username, cur.User.Email)
	fmt.Fprintf(a.out, "Favorites: %d total, %d upcoming, %d past\n",
		a.stats.Total, a.stats.Upcoming, a.stats.Past)

	if len(a.favorites) == 0 {
		fmt.Fprintln(a.out, "No favorites yet. Search for events and 'fav' the ones you like!")
		return
	}
	for i, fav := range a.favorites {
		line := fmt.Sprintf("%3d. %s", i+1, fav.Name)
		if fav.Date != "" {
			line += " — " + fav.Date
		}
		if fav.Venue != "" {
			line += " @ " + fav.Venue
		}
		fmt.Fprintln(a.out, line)
	}
}

// computeStats splits favorites into upcoming and past by event date.
// Dates come in RFC 3339 or plain YYYY-MM-DD; undated favorites count
// toward the total only.
func computeStats(favorites []models.Favorite, now time.Time) favoriteStats {
	stats := favoriteStats{Total: len(favorites)}
	for _, fav := range favorites {
		if fav.Date == "" {
			continue
		}
		when, err := parseEventDate(fav.Date)
		if err != nil {
			continue
		}
		if when.After(now) {
			stats.Upcoming++
		} else {
			stats.Past++
		}
	}
	return stats
}

func parseEventDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
