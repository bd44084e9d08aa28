package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/sbilibin2017/linkvault/internal/client"
	"github.com/sbilibin2017/linkvault/internal/facades"
	"github.com/sbilibin2017/linkvault/internal/health"
	"github.com/sbilibin2017/linkvault/internal/logger"
	"github.com/sbilibin2017/linkvault/internal/models"
	"github.com/sbilibin2017/linkvault/internal/ui"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

type config struct {
	apiURL      string
	grpcAddr    string
	sessionPath string
	logLevel    string
	staleTime   time.Duration
}

func main() {
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	if err := logger.Initialize(cfg.logLevel); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	args := flag.Args()
	if len(args) == 0 {
		usage(os.Stderr)
		os.Exit(2)
	}

	if err := run(context.Background(), cfg, args, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorMessage(err))
		os.Exit(1)
	}
}

// parseFlags parses global flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "client.env", "Path to configuration file")
	flag.Usage = func() { usage(flag.CommandLine.Output()) }
	flag.Parse()
	return *c
}

// parseConfig loads the client settings from a file and the environment.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	defaultSession := "linkvault-session.json"
	if dir, err := os.UserConfigDir(); err == nil {
		defaultSession = filepath.Join(dir, "linkvault", "session.json")
	}

	cfg.apiURL = getEnv("LINKVAULT_API_URL", "http://localhost:8080")
	cfg.grpcAddr = getEnv("LINKVAULT_GRPC_ADDR", "localhost:50051")
	cfg.sessionPath = getEnv("LINKVAULT_SESSION", defaultSession)
	cfg.logLevel = getEnv("LINKVAULT_LOG_LEVEL", "error")
	cfg.staleTime, err = time.ParseDuration(getEnv("LINKVAULT_STALE_TIME", "30s"))
	if err != nil {
		err = fmt.Errorf("LINKVAULT_STALE_TIME: %w", err)
	}
	return
}

// env is what every command gets.
type env struct {
	cfg     config
	session *client.Session
	store   *client.Store
	in      io.Reader
	out     io.Writer
	watch   func(*ui.App)
}

func (e *env) app(yes bool) *ui.App {
	var confirm ui.Confirmer = ui.NewPromptConfirmer(e.in, e.out)
	if yes {
		confirm = ui.AutoConfirm(true)
	}
	a := ui.NewApp(e.store, e.session, confirm)
	e.watch(a)
	return a
}

type command struct {
	summary string
	run     func(ctx context.Context, e *env, args []string) error
}

var commands = map[string]command{
	"register":        {"Create an account and sign in", cmdRegister},
	"login":           {"Sign in", cmdLogin},
	"logout":          {"Sign out and forget cached data", cmdLogout},
	"whoami":          {"Show the signed-in user", cmdWhoami},
	"dashboard":       {"Show categories and links", cmdDashboard},
	"add-link":        {"Create a link", cmdAddLink},
	"edit-link":       {"Edit a link", cmdEditLink},
	"delete-link":     {"Delete a link", cmdDeleteLink},
	"add-category":    {"Create a category", cmdAddCategory},
	"edit-category":   {"Edit a category", cmdEditCategory},
	"delete-category": {"Delete a category, keeping its links", cmdDeleteCategory},
	"status":          {"Ask the server's gRPC health service", cmdStatus},
	"version":         {"Print build information", cmdVersion},
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: linkvault [-c client.env] <command> [flags]")
	fmt.Fprintln(w)
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-16s %s\n", name, commands[name].summary)
	}
}

// run executes one command against the API at cfg.apiURL.
func run(ctx context.Context, cfg config, args []string, in io.Reader, out io.Writer) error {
	cmd, ok := commands[args[0]]
	if !ok {
		usage(out)
		return fmt.Errorf("unknown command %q", args[0])
	}

	session, err := client.NewSession(client.NewFileStorage(cfg.sessionPath))
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	api := client.NewAPIClient(cfg.apiURL, session)
	e := &env{
		cfg:     cfg,
		session: session,
		store:   client.NewStore(api, client.NewQueryCache(cfg.staleTime), session),
		in:      in,
		out:     out,
		watch:   func(a *ui.App) { go a.Watch(ctx) },
	}
	return cmd.run(ctx, e, args[1:])
}

func requireSession(e *env) error {
	if !e.session.Authenticated() {
		return errors.New("not signed in, run: linkvault login -email <email> -password <password>")
	}
	return nil
}

func cmdRegister(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	form := ui.RegisterForm{}
	fs.StringVar(&form.Username, "username", "", "Username")
	fs.StringVar(&form.Email, "email", "", "Email")
	fs.StringVar(&form.Password, "password", "", "Password, at least 6 characters")
	fs.StringVar(&form.ConfirmPassword, "confirm", "", "Password again")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := form.Validate(); err != nil {
		return err
	}
	resp, err := e.store.Register(ctx, form.Request())
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Registered and signed in as %s\n", resp.User.Username)
	return nil
}

func cmdLogin(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	form := ui.LoginForm{}
	fs.StringVar(&form.Email, "email", "", "Email")
	fs.StringVar(&form.Password, "password", "", "Password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := form.Validate(); err != nil {
		return err
	}
	resp, err := e.store.Login(ctx, form.Request())
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Hello, %s!\n", resp.User.Username)
	return nil
}

func cmdLogout(_ context.Context, e *env, _ []string) error {
	if err := e.app(false).Logout(); err != nil {
		return err
	}
	fmt.Fprintln(e.out, "Signed out")
	return nil
}

func cmdWhoami(_ context.Context, e *env, _ []string) error {
	user, ok := e.session.User()
	if !ok {
		return requireSession(e)
	}
	fmt.Fprintf(e.out, "%s <%s> %s\n", user.Username, user.Email, user.ID)
	return nil
}

func cmdDashboard(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	category := fs.String("category", "", `Category name or id, "uncategorized", or empty for all links`)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireSession(e); err != nil {
		return err
	}

	app := e.app(false)
	categories, err := e.store.Categories(ctx)
	if err != nil {
		return err
	}
	sel, err := ui.ParseSelection(*category, categories)
	if err != nil {
		return err
	}
	app.Select(sel)

	d, err := app.Dashboard(ctx)
	if err != nil {
		return err
	}
	return ui.Render(e.out, d)
}

// resolveCategory turns a category name or id into the form value; "",
// "none" and "uncategorized" mean no category.
func resolveCategory(ctx context.Context, e *env, value string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "none", "uncategorized":
		return "", nil
	}

	categories, err := e.store.Categories(ctx)
	if err != nil {
		return "", err
	}
	sel, err := ui.ParseSelection(value, categories)
	if err != nil {
		return "", err
	}
	id, ok := sel.CategoryID()
	if !ok {
		return "", nil
	}
	return id.String(), nil
}

func cmdAddLink(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("add-link", flag.ContinueOnError)
	form := ui.LinkForm{}
	fs.StringVar(&form.Title, "title", "", "Title")
	fs.StringVar(&form.URL, "url", "", "Absolute URL")
	fs.StringVar(&form.Description, "description", "", "Optional description")
	category := fs.String("category", "", "Optional category name or id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireSession(e); err != nil {
		return err
	}

	var err error
	if form.CategoryID, err = resolveCategory(ctx, e, *category); err != nil {
		return err
	}

	app := e.app(false)
	app.OpenCreateLink()
	link, err := app.SubmitLink(ctx, form)
	if err != nil {
		return err
	}
	return ui.RenderLink(e.out, *link)
}

func cmdEditLink(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("edit-link", flag.ContinueOnError)
	id := fs.String("id", "", "Link id")
	title := fs.String("title", "", "New title")
	rawURL := fs.String("url", "", "New URL")
	description := fs.String("description", "", "New description, empty to clear")
	category := fs.String("category", "", `New category name or id, "none" to uncategorize`)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireSession(e); err != nil {
		return err
	}

	linkID, err := uuid.Parse(*id)
	if err != nil {
		return fmt.Errorf("invalid link id %q", *id)
	}
	link, err := e.store.Link(ctx, linkID)
	if err != nil {
		return err
	}

	form := ui.LinkFormFrom(*link)
	var visitErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			form.Title = *title
		case "url":
			form.URL = *rawURL
		case "description":
			form.Description = *description
		case "category":
			form.CategoryID, visitErr = resolveCategory(ctx, e, *category)
		}
	})
	if visitErr != nil {
		return visitErr
	}

	app := e.app(false)
	app.OpenEditLink(linkID)
	updated, err := app.SubmitLink(ctx, form)
	if err != nil {
		return err
	}
	return ui.RenderLink(e.out, *updated)
}

func cmdDeleteLink(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("delete-link", flag.ContinueOnError)
	id := fs.String("id", "", "Link id")
	yes := fs.Bool("y", false, "Do not ask for confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireSession(e); err != nil {
		return err
	}

	linkID, err := uuid.Parse(*id)
	if err != nil {
		return fmt.Errorf("invalid link id %q", *id)
	}

	deleted, err := e.app(*yes).DeleteLink(ctx, linkID)
	if err != nil {
		return err
	}
	if deleted {
		fmt.Fprintln(e.out, "Link deleted successfully")
	}
	return nil
}

func cmdAddCategory(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("add-category", flag.ContinueOnError)
	form := ui.CategoryForm{}
	fs.StringVar(&form.Name, "name", "", "Category name")
	fs.StringVar(&form.Color, "color", models.DefaultCategoryColor, "Hex color, one of "+strings.Join(ui.Palette, " ")+" or any other")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireSession(e); err != nil {
		return err
	}

	app := e.app(false)
	app.OpenCreateCategory()
	category, err := app.SubmitCategory(ctx, form)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Created category %s (%s) %s\n", category.Name, category.Color, category.ID)
	return nil
}

// findCategory resolves a category name or id among the caller's categories.
func findCategory(ctx context.Context, e *env, value string) (models.CategoryDB, error) {
	categories, err := e.store.Categories(ctx)
	if err != nil {
		return models.CategoryDB{}, err
	}
	sel, err := ui.ParseSelection(value, categories)
	if err != nil {
		return models.CategoryDB{}, err
	}
	if id, ok := sel.CategoryID(); ok {
		for _, c := range categories {
			if c.ID == id {
				return c, nil
			}
		}
	}
	return models.CategoryDB{}, fmt.Errorf("unknown category %q", value)
}

func cmdEditCategory(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("edit-category", flag.ContinueOnError)
	id := fs.String("id", "", "Category name or id")
	name := fs.String("name", "", "New name")
	color := fs.String("color", "", "New hex color")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireSession(e); err != nil {
		return err
	}

	category, err := findCategory(ctx, e, *id)
	if err != nil {
		return err
	}

	form := ui.CategoryForm{Name: category.Name, Color: category.Color}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			form.Name = *name
		case "color":
			form.Color = *color
		}
	})

	app := e.app(false)
	app.OpenEditCategory(category.ID)
	updated, err := app.SubmitCategory(ctx, form)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "Updated category %s (%s) %s\n", updated.Name, updated.Color, updated.ID)
	return nil
}

func cmdDeleteCategory(ctx context.Context, e *env, args []string) error {
	fs := flag.NewFlagSet("delete-category", flag.ContinueOnError)
	id := fs.String("id", "", "Category name or id")
	yes := fs.Bool("y", false, "Do not ask for confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireSession(e); err != nil {
		return err
	}

	category, err := findCategory(ctx, e, *id)
	if err != nil {
		return err
	}

	deleted, err := e.app(*yes).DeleteCategory(ctx, category.ID)
	if err != nil {
		return err
	}
	if deleted {
		fmt.Fprintln(e.out, "Category deleted successfully")
	}
	return nil
}

func cmdStatus(ctx context.Context, e *env, _ []string) error {
	conn, err := grpc.NewClient(e.cfg.grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("connect %s: %w", e.cfg.grpcAddr, err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status, err := facades.NewHealthGRPCFacadeFromConn(conn).Status(ctx, health.ServiceName)
	if err != nil {
		return fmt.Errorf("health check %s: %w", e.cfg.grpcAddr, err)
	}
	fmt.Fprintf(e.out, "%s: %s\n", health.ServiceName, status)
	return nil
}

func cmdVersion(_ context.Context, e *env, _ []string) error {
	fmt.Fprintf(e.out, "Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
	return nil
}
