package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/anime-verse/internal/app"
	"github.com/MKhiriev/anime-verse/internal/tui"
	"github.com/MKhiriev/anime-verse/models"
)

const defaultRandomCount = 1

func (a *App) registerCommands() map[string]command {
	return map[string]command{
		"help":     {usage: "help", help: "show this help", run: a.help},
		"version":  {usage: "version", help: "show build information", run: a.version},
		"login":    {usage: "login <email>", help: "log in, the password is prompted", run: a.login},
		"register": {usage: "register <username> <email>", help: "create an account", run: a.register},
		"activate": {usage: "activate <token>", help: "activate an account with the emailed token", run: a.activate},
		"logout":   {usage: "logout", help: "log out and forget the saved session", run: a.logout},
		"whoami":   {usage: "whoami", help: "show the current session", run: a.whoami},
		"list":     {usage: "list", help: "show your anime list", run: a.list},
		"save": {
			usage: "save <anime-id> [-status S] [-episode N] [-score N] [-started D] [-finished D]",
			help:  "add a catalog anime to your list",
			run:   a.save,
		},
		"top":     {usage: "top", help: "show currently airing top anime", run: a.top},
		"random":  {usage: "random [n]", help: "show n random anime", run: a.random},
		"search":  {usage: "search <query>", help: "search the catalog", run: a.search},
		"show":    {usage: "show <anime-id>", help: "show catalog details", run: a.show},
		"trailer": {usage: "trailer <anime-id> [-copy]", help: "print the trailer link", run: a.trailer},
		"quotes":  {usage: "quotes", help: "show anime quotes", run: a.quotes},
	}
}

func (a *App) version(context.Context, []string) error {
	a.print(tui.RenderBuildInfo(a.buildInfo))
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("login <email>")
	}

	password, err := a.passwords.ReadPassword("Password: ")
	if err != nil {
		return err
	}

	if err = a.services.Session.Login(ctx, args[0], password); err != nil {
		return err
	}

	user, _ := a.services.Session.User()
	a.print(fmt.Sprintf("Logged in as %s.", user.Username))
	return nil
}

func (a *App) register(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("register <username> <email>")
	}

	password, err := a.passwords.ReadPassword("Password: ")
	if err != nil {
		return err
	}
	confirm, err := a.passwords.ReadPassword("Repeat password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return app.NewValidationError(app.MsgInvalidInput, map[string]string{"password": "passwords do not match"})
	}

	user, err := a.services.Session.Register(ctx, args[0], args[1], password)
	if err != nil {
		return err
	}

	a.print(tui.RenderUser("REGISTERED", user))
	a.print("Check your email for the activation token, then run: activate <token>")
	return nil
}

func (a *App) activate(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("activate <token>")
	}

	user, err := a.services.Session.Activate(ctx, args[0])
	if err != nil {
		return err
	}

	a.print(tui.RenderUser("ACTIVATED", user))
	return nil
}

func (a *App) logout(ctx context.Context, _ []string) error {
	a.services.Session.Logout(ctx)
	a.print("Logged out.")
	return nil
}

func (a *App) whoami(context.Context, []string) error {
	session, ok := a.services.Session.Session()
	a.print(tui.RenderSession(a.services.Session.State(), session, ok))
	return nil
}

func (a *App) list(ctx context.Context, _ []string) error {
	entries, err := a.services.AnimeList.List(ctx)
	if err != nil {
		return err
	}

	a.print(tui.RenderAnimeList(entries))
	return nil
}

func (a *App) save(ctx context.Context, args []string) error {
	const usage = "save <anime-id> [-status S] [-episode N] [-score N] [-started YYYY-MM-DD] [-finished YYYY-MM-DD]"
	if len(args) < 1 {
		return usageError(usage)
	}

	animeID, err := parseAnimeID(args[0])
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("save", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		status   = fs.String("status", string(models.StatusWatching), "watching status")
		episode  = fs.Int("episode", 0, "current episode")
		score    = fs.Int("score", 0, "score from 1 to 10, 0 for none")
		started  = fs.String("started", "", "date you started watching")
		finished = fs.String("finished", "", "date you finished watching")
	)
	if err = fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("%w: %w, usage: %s", ErrUsage, err, usage)
	}

	anime, err := a.services.Catalog.Details(ctx, animeID)
	if err != nil {
		return err
	}

	req := models.SaveAnimeRequest{
		AnimeID:              animeID,
		Status:               parseStatus(*status),
		CurrentEpisode:       *episode,
		StartedWatchingDate:  *started,
		FinishedWatchingDate: *finished,
		Anime:                a.services.Catalog.Snapshot(anime),
	}
	if *score != 0 {
		req.Score = score
	}

	entry, err := a.services.AnimeList.Save(ctx, req)
	if err != nil {
		return err
	}

	a.print(fmt.Sprintf("Saved %q as %s.", entry.Anime.Title, entry.Status))
	return nil
}

func (a *App) top(ctx context.Context, _ []string) error {
	list, err := a.services.Catalog.TopAiring(ctx)
	if err != nil {
		return err
	}

	a.print(tui.RenderCatalog("TOP AIRING", list))
	return nil
}

func (a *App) random(ctx context.Context, args []string) error {
	n := defaultRandomCount
	if len(args) > 1 {
		return usageError("random [n]")
	}
	if len(args) == 1 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return usageError("random [n]")
		}
		n = v
	}

	if n == 1 {
		anime, err := a.services.Catalog.Random(ctx)
		if err != nil {
			return err
		}
		a.print(tui.RenderAnimeDetails(anime))
		return nil
	}

	list, err := a.services.Catalog.RandomBatch(ctx, n)
	if err != nil {
		return err
	}

	a.print(tui.RenderCatalog("RANDOM", list))
	return nil
}

func (a *App) search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("search <query>")
	}

	list, err := a.services.Catalog.Search(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}

	a.print(tui.RenderCatalog("SEARCH", list))
	return nil
}

func (a *App) show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("show <anime-id>")
	}

	id, err := parseAnimeID(args[0])
	if err != nil {
		return err
	}

	anime, err := a.services.Catalog.Details(ctx, id)
	if err != nil {
		return err
	}

	a.print(tui.RenderAnimeDetails(anime))
	return nil
}

func (a *App) trailer(ctx context.Context, args []string) error {
	const usage = "trailer <anime-id> [-copy]"
	if len(args) < 1 || len(args) > 2 || (len(args) == 2 && args[1] != "-copy") {
		return usageError(usage)
	}

	id, err := parseAnimeID(args[0])
	if err != nil {
		return err
	}

	anime, err := a.services.Catalog.Details(ctx, id)
	if err != nil {
		return err
	}

	url := tui.TrailerURL(anime.Trailer)
	if url == "" {
		a.print("No trailer available.")
		return nil
	}
	a.print(url)

	if len(args) == 2 {
		if err = a.copyText(url); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		a.print("Copied.")
	}
	return nil
}

func (a *App) quotes(ctx context.Context, _ []string) error {
	quotes, err := a.services.Quotes.List(ctx)
	if err != nil {
		return err
	}

	a.print(tui.RenderQuotes(quotes))
	return nil
}

func usageError(usage string) error {
	return fmt.Errorf("%w, usage: %s", ErrUsage, usage)
}

func parseAnimeID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, app.NewValidationError(app.MsgInvalidInput, map[string]string{"anime_id": "must be a positive number"})
	}
	return id, nil
}

// parseStatus matches s case-insensitively against the known statuses and
// accepts "watch-later"/"later" for StatusWatchLater. Unknown values are
// passed through for the validator to reject.
func parseStatus(s string) models.ListStatus {
	norm := strings.ToLower(strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(s)))
	if norm == "later" {
		return models.StatusWatchLater
	}
	for _, status := range models.ListStatuses {
		if strings.ToLower(string(status)) == norm {
			return status
		}
	}
	return models.ListStatus(s)
}
