package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ACHGAR2024/univerdog-client/internal/advisor"
	"github.com/ACHGAR2024/univerdog-client/internal/availability"
	"github.com/ACHGAR2024/univerdog-client/internal/config"
	"github.com/ACHGAR2024/univerdog-client/internal/models"
	"github.com/ACHGAR2024/univerdog-client/internal/session"
	"github.com/ACHGAR2024/univerdog-client/internal/univerdog"
)

const usage = `usage: univerdog <command> [flags]

commands:
  login            -email -password
  register         -name -email -password
  forgot-password  -email
  logout
  status
  dogs
  pros             [-speciality]
  slots            -pro -date
  book             -pro -date -time -dog [-reason]
  appointments
  cancel           -id
  shop
  places
  advisor          -q
`

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := cfg.Logger
	defer func() { _ = logger.Sync() }()

	store, err := session.NewFileStore(cfg.TokenPath)
	if err != nil {
		logger.Fatal("token store init failed", zap.Error(err))
	}

	sessions := session.NewManager(store, logger)
	sessions.Restore()

	// Local expiry estimate; the server's 401 still overrides it.
	if token := sessions.Token(); token != "" && sessions.IsExpired(token) {
		if err := sessions.Logout(); err == nil {
			fmt.Fprintln(os.Stderr, "Your session has expired. Please log in again.")
		}
	}

	client := univerdog.NewClient(
		cfg.APIBaseURL,
		time.Duration(cfg.HTTPTimeoutSeconds)*time.Second,
		sessions,
		logger,
	)

	// The redirect-to-login the app does on 401; here it is a notice.
	client.OnUnauthorized(func() {
		fmt.Fprintln(os.Stderr, "Your session has expired. You have been logged out; please log in again.")
	})

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()
	app := &cli{cfg: cfg, logger: logger, sessions: sessions, client: client}

	var runErr error
	switch os.Args[1] {
	case "login":
		runErr = app.login(ctx, os.Args[2:])
	case "register":
		runErr = app.register(ctx, os.Args[2:])
	case "forgot-password":
		runErr = app.forgotPassword(ctx, os.Args[2:])
	case "logout":
		runErr = app.logout()
	case "status":
		runErr = app.status()
	case "dogs":
		runErr = app.dogs(ctx)
	case "pros":
		runErr = app.pros(ctx, os.Args[2:])
	case "slots":
		runErr = app.slots(ctx, os.Args[2:])
	case "book":
		runErr = app.book(ctx, os.Args[2:])
	case "appointments":
		runErr = app.appointments(ctx)
	case "cancel":
		runErr = app.cancel(ctx, os.Args[2:])
	case "shop":
		runErr = app.shop(ctx)
	case "places":
		runErr = app.places(ctx)
	case "advisor":
		runErr = app.advise(ctx, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if runErr != nil {
		fmt.Fprintln(os.Stderr, "error:", runErr)
		os.Exit(1)
	}
}

type cli struct {
	cfg      *config.Config
	logger   *zap.Logger
	sessions *session.Manager
	client   *univerdog.Client
}

func (a *cli) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account e-mail")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)

	if *email == "" || *password == "" {
		return fmt.Errorf("both -email and -password are required")
	}

	pair, err := a.client.Login(ctx, *email, *password)
	if err != nil {
		if univerdog.IsValidation(err) {
			return fmt.Errorf("the server rejected those credentials: %w", err)
		}
		return err
	}

	if err := a.sessions.Login(pair.AccessToken, pair.RefreshToken); err != nil {
		return err
	}
	fmt.Println("Logged in.")
	return nil
}

func (a *cli) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "account e-mail")
	password := fs.String("password", "", "account password (min 8 chars)")
	_ = fs.Parse(args)

	if *name == "" || *email == "" || *password == "" {
		return fmt.Errorf("-name, -email and -password are required")
	}
	if len(*password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	pair, err := a.client.Register(ctx, *name, *email, *password)
	if err != nil {
		return err
	}

	// Registration may log the account straight in.
	if pair.AccessToken != "" {
		if err := a.sessions.Login(pair.AccessToken, pair.RefreshToken); err != nil {
			return err
		}
		fmt.Println("Registered and logged in.")
		return nil
	}
	fmt.Println("Registered. Use `univerdog login` to sign in.")
	return nil
}

func (a *cli) forgotPassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("forgot-password", flag.ExitOnError)
	email := fs.String("email", "", "account e-mail")
	_ = fs.Parse(args)

	if *email == "" {
		return fmt.Errorf("-email is required")
	}

	msg, err := a.client.ForgotPassword(ctx, *email)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

func (a *cli) logout() error {
	if err := a.sessions.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

func (a *cli) status() error {
	token := a.sessions.Token()
	if token == "" || !a.sessions.IsAuthenticated() {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("Logged in, session valid for about %d more minutes.\n",
		a.sessions.RemainingMinutes(token))
	return nil
}

func (a *cli) dogs(ctx context.Context) error {
	user, err := a.client.CurrentUser(ctx)
	if err != nil {
		return err
	}

	dogs, err := a.client.Dogs(ctx, user.ID)
	if err != nil {
		return err
	}
	if len(dogs) == 0 {
		fmt.Println("No dogs on this account yet.")
		return nil
	}
	for _, d := range dogs {
		fmt.Printf("#%d  %s (%s, born %s)\n", d.ID, d.Name, d.Breed, d.BirthDate)
	}
	return nil
}

func (a *cli) pros(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("pros", flag.ExitOnError)
	speciality := fs.String("speciality", "", `filter by trade, e.g. "Toiletteur canin"`)
	_ = fs.Parse(args)

	var (
		pros []models.Professional
		err  error
	)
	if *speciality != "" {
		pros, err = a.client.ProfessionalsWithSpeciality(ctx, *speciality)
	} else {
		pros, err = a.client.Professionals(ctx)
	}
	if err != nil {
		return err
	}

	for _, p := range pros {
		fmt.Printf("#%d  %s  %s\n", p.ID, p.CompanyName, p.Address)
	}
	return nil
}

func (a *cli) slots(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("slots", flag.ExitOnError)
	pro := fs.Int64("pro", 0, "professional id")
	date := fs.String("date", "", "date (YYYY-MM-DD)")
	_ = fs.Parse(args)

	if *pro == 0 || *date == "" {
		return fmt.Errorf("-pro and -date are required")
	}

	appointments, err := a.client.ProfessionalAppointments(ctx, *pro)
	if err != nil {
		return err
	}

	resolver := availability.New()
	if resolver.IsDayFullyBooked(appointments, *date) {
		fmt.Printf("%s is fully booked.\n", *date)
		return nil
	}

	for _, slot := range resolver.SelectableSlots(appointments, *date) {
		fmt.Printf("%s  %s\n", slot.Time, slot.State)
	}
	return nil
}

func (a *cli) book(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	pro := fs.Int64("pro", 0, "professional id")
	date := fs.String("date", "", "date (YYYY-MM-DD)")
	timeOfDay := fs.String("time", "", "slot time (HH:MM)")
	dog := fs.Int64("dog", 0, "dog id")
	reason := fs.String("reason", "Toilettage", "visit reason")
	_ = fs.Parse(args)

	if *pro == 0 || *date == "" || *timeOfDay == "" || *dog == 0 {
		return fmt.Errorf("-pro, -date, -time and -dog are required")
	}

	appointments, err := a.client.ProfessionalAppointments(ctx, *pro)
	if err != nil {
		return err
	}

	resolver := availability.New()
	if resolver.IsSlotTaken(appointments, *date, *timeOfDay) {
		return fmt.Errorf("slot %s on %s is already taken", *timeOfDay, *date)
	}

	created, err := a.client.CreateAppointment(ctx, models.Appointment{
		Date:           *date,
		Time:           *timeOfDay,
		Reason:         *reason,
		DogID:          *dog,
		ProfessionalID: *pro,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Appointment booked: %s %s (#%d, %s).\n",
		created.Date, created.Time, created.ID, created.Status)
	return nil
}

func (a *cli) appointments(ctx context.Context) error {
	user, err := a.client.CurrentUser(ctx)
	if err != nil {
		return err
	}
	dogs, err := a.client.Dogs(ctx, user.ID)
	if err != nil {
		return err
	}
	all, err := a.client.Appointments(ctx)
	if err != nil {
		return err
	}

	mine := make(map[int64]string, len(dogs))
	for _, d := range dogs {
		mine[d.ID] = d.Name
	}

	pending := 0
	for _, appt := range all {
		name, ok := mine[appt.DogID]
		if !ok {
			continue
		}
		if appt.Status == models.StatusPending {
			pending++
		}
		fmt.Printf("#%d  %s %s  %s  (%s)\n",
			appt.ID, appt.Date, appt.Time, name, appt.Status)
	}
	fmt.Printf("%d pending appointment(s).\n", pending)
	return nil
}

func (a *cli) cancel(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	id := fs.Int64("id", 0, "appointment id")
	_ = fs.Parse(args)

	if *id == 0 {
		return fmt.Errorf("-id is required")
	}
	if err := a.client.DeleteAppointment(ctx, *id); err != nil {
		return err
	}
	fmt.Println("Appointment cancelled.")
	return nil
}

func (a *cli) shop(ctx context.Context) error {
	products, err := a.client.Products(ctx)
	if err != nil {
		return err
	}
	categories, err := a.client.ProductCategories(ctx)
	if err != nil {
		return err
	}

	byID := make(map[int64]string, len(categories))
	for _, c := range categories {
		byID[c.ID] = c.Name
	}

	for _, p := range products {
		cat := byID[p.CategoryID]
		if cat == "" {
			cat = "uncategorized"
		}
		fmt.Printf("#%d  %s  %s €  [%s]\n", p.ID, p.Name, p.Price, cat)
	}
	return nil
}

func (a *cli) places(ctx context.Context) error {
	places, err := a.client.Places(ctx)
	if err != nil {
		return err
	}
	for _, p := range places {
		fmt.Printf("%s (%s)  %s,%s\n", p.Title, p.Type, p.Latitude, p.Longitude)
	}
	return nil
}

func (a *cli) advise(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("advisor", flag.ExitOnError)
	question := fs.String("q", "", "your dog question")
	_ = fs.Parse(args)

	if strings.TrimSpace(*question) == "" {
		return fmt.Errorf("-q is required")
	}
	if a.cfg.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is not set; the advisor is unavailable")
	}

	adv, err := advisor.New(ctx, a.cfg.GeminiAPIKey, a.cfg.GeminiModel)
	if err != nil {
		return err
	}

	answer, err := adv.Ask(ctx, *question)
	if err != nil {
		return err
	}
	fmt.Println(answer)
	return nil
}
