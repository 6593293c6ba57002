package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/SmoothBrain-Tech-X/badbuddy-go/auth"
	"github.com/SmoothBrain-Tech-X/badbuddy-go/booking"
	"github.com/SmoothBrain-Tech-X/badbuddy-go/chat"
	"github.com/SmoothBrain-Tech-X/badbuddy-go/client"
	"github.com/SmoothBrain-Tech-X/badbuddy-go/config"
	"github.com/SmoothBrain-Tech-X/badbuddy-go/sessions"
	"github.com/SmoothBrain-Tech-X/badbuddy-go/structs"
	"github.com/SmoothBrain-Tech-X/badbuddy-go/utils"
	"github.com/SmoothBrain-Tech-X/badbuddy-go/venues"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: badbuddy <command> [flags]

commands:
  venues     list venues (-q search term)
  courts     list a venue's courts (-venue id)
  parties    list open sessions (-venue id, -date YYYY-MM-DD)
  book       guided court booking (-venue id)
  chat       tail a session's chat (-session id)
  bookings   list my bookings`)
	os.Exit(2)
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if len(os.Args) < 2 {
		usage()
	}
	cmd := os.Args[1]
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	query := fs.String("q", "", "search term")
	venueID := fs.String("venue", "", "venue id")
	sessionID := fs.String("session", "", "session id")
	date := fs.String("date", "", "date YYYY-MM-DD")
	fs.Parse(os.Args[2:])

	tokens := auth.NewTokenStore()
	if cfg.Token != "" {
		tokens.Set(cfg.Token)
	}

	c := client.New(cfg.BaseURL, tokens)
	c.Limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.RequestBurst)

	ctx := context.Background()
	accounts := auth.NewService(c)

	// sign in if we only have credentials
	if cfg.Token == "" && cfg.Email != "" {
		res, err := accounts.Login(ctx, cfg.Email, cfg.Password)
		if err != nil {
			log.Fatalf("login: %v", err)
		}
		tokens.Set(res.AccessToken)
	}

	switch cmd {
	case "venues":
		listVenues(ctx, venues.NewService(c), *query)
	case "courts":
		listCourts(ctx, venues.NewService(c), *venueID)
	case "parties":
		listParties(ctx, sessions.NewService(c), *venueID, *date)
	case "book":
		runBooking(ctx, venues.NewService(c), booking.NewService(c), *venueID)
	case "chat":
		tailChat(c, accounts, cfg.WSURL, *sessionID)
	case "bookings":
		listBookings(ctx, booking.NewService(c))
	default:
		usage()
	}
}

func listVenues(ctx context.Context, svc *venues.Service, query string) {
	res, err := svc.List(ctx, query, 1, 20)
	if err != nil {
		log.Fatalf("venues: %v", err)
	}
	for _, v := range res.Venues {
		fmt.Printf("%-26s  %-30s  ★%.1f (%d)\n", v.ID, v.Name, v.Rating, v.ReviewCount)
	}
}

func listCourts(ctx context.Context, svc *venues.Service, venueID string) {
	if venueID == "" {
		log.Fatal("courts: -venue is required")
	}
	courts, err := svc.Courts(ctx, venueID)
	if err != nil {
		log.Fatalf("courts: %v", err)
	}
	for _, ct := range courts {
		fmt.Printf("%-26s  %-20s  ฿%.0f/hr  %s\n", ct.ID, ct.Name, ct.PricePerHour, ct.Status)
	}
}

func listParties(ctx context.Context, svc *sessions.Service, venueID, date string) {
	list, err := svc.List(ctx, sessions.Filter{VenueID: venueID, Date: date, Status: structs.SessionOpen})
	if err != nil {
		log.Fatalf("parties: %v", err)
	}
	for _, s := range list {
		fmt.Printf("%-26s  %-30s  %s %s  %d/%d players\n",
			s.ID, s.Title, s.Date, utils.FormatClockRange(s.StartTime, s.EndTime),
			s.ConfirmedCount, s.MaxParticipants)
	}
}

func listBookings(ctx context.Context, svc *booking.Service) {
	list, err := svc.ListMine(ctx, 1, 20)
	if err != nil {
		log.Fatalf("bookings: %v", err)
	}
	for _, b := range list {
		fmt.Printf("%-26s  %-24s  %s %s  ฿%.0f  %s\n",
			b.ID, b.VenueName, b.Date, utils.FormatClockRange(b.StartTime, b.EndTime),
			b.TotalAmount, b.Status)
	}
}

// runBooking walks the booking drawer flow on the terminal: pick a court and
// time, wait for the availability verdict, confirm, submit.
func runBooking(ctx context.Context, vsvc *venues.Service, bsvc *booking.Service, venueID string) {
	if venueID == "" {
		log.Fatal("book: -venue is required")
	}
	venue, err := vsvc.Get(ctx, venueID)
	if err != nil {
		log.Fatalf("book: %v", err)
	}
	if len(venue.Courts) == 0 {
		log.Fatalf("book: venue %s has no courts", venue.Name)
	}

	fmt.Printf("Booking at %s\n", venue.Name)
	for i, ct := range venue.Courts {
		fmt.Printf("  [%d] %s — ฿%.0f/hr\n", i+1, ct.Name, ct.PricePerHour)
	}

	in := bufio.NewScanner(os.Stdin)
	courtIdx := promptInt(in, "Court #", 1, len(venue.Courts))
	dateStr := prompt(in, "Date (YYYY-MM-DD)")
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		log.Fatalf("book: invalid date %q", dateStr)
	}
	start := prompt(in, "Start (HH:mm)")
	end := prompt(in, "End (HH:mm)")

	flow := booking.NewFlow(bsvc, venue)
	defer flow.Close()
	flow.Notify = func(kind booking.NoticeKind, text string) {
		fmt.Printf("  [%s] %s\n", kind, text)
	}

	flow.SelectCourt(venue.Courts[courtIdx-1].ID)
	flow.SelectDate(day)
	flow.SetStartTime(start)
	flow.SetEndTime(end)

	// wait out the debounce and the availability round-trip
	deadline := time.Now().Add(10 * time.Second)
	for flow.State() == booking.StateChecking || flow.State() == booking.StateFieldsIncomplete {
		if time.Now().After(deadline) {
			log.Fatal("book: availability check timed out")
		}
		time.Sleep(100 * time.Millisecond)
	}

	if !flow.CanSubmit() {
		log.Fatalf("book: cannot submit (state %s)", flow.State())
	}
	fmt.Printf("Price: ฿%.2f for %.1f hours. Confirm? [y/N] ", flow.Price(), flow.Duration())
	if !in.Scan() || !strings.EqualFold(strings.TrimSpace(in.Text()), "y") {
		fmt.Println("Cancelled.")
		return
	}

	b, err := flow.Submit(ctx)
	if err != nil {
		log.Fatalf("book: %v", err)
	}
	fmt.Printf("✅ Booked %s on %s (%s), booking id %s\n",
		b.CourtName, b.Date, utils.FormatClockRange(b.StartTime, b.EndTime), b.ID)
}

// tailChat streams a session's chat to the terminal until interrupted.
func tailChat(c *client.Client, accounts *auth.Service, wsURL, sessionID string) {
	if sessionID == "" {
		log.Fatal("chat: -session is required")
	}

	selfID := ""
	if me, err := accounts.Me(context.Background()); err == nil {
		selfID = me.ID
	}

	cc := chat.NewClient(c, wsURL, sessionID, selfID)
	defer cc.Close()
	cc.OnMessage = func(m structs.ChatMessage) {
		printMessage(m)
	}
	cc.OnConnection = func(connected bool) {
		if connected {
			log.Println("connected")
		} else {
			log.Println("disconnected; reconnecting…")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	history, err := cc.LoadHistory(ctx)
	cancel()
	if err != nil {
		log.Fatalf("chat: %v", err)
	}
	for _, m := range history {
		printMessage(m)
	}
	cc.Connect()

	// read stdin lines as outgoing messages
	go func() {
		in := bufio.NewScanner(os.Stdin)
		for in.Scan() {
			text := in.Text()
			if strings.TrimSpace(text) == "" {
				continue
			}
			sctx, scancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := cc.Send(sctx, text); err != nil {
				log.Printf("send failed (type again to retry): %v", err)
			}
			scancel()
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	log.Println("🛑 closing chat")
}

func printMessage(m structs.ChatMessage) {
	who := m.AuthorDisplayName
	if m.IsOwnMessage {
		who = "you"
	}
	fmt.Printf("[%s] %s: %s\n", m.SentAt.Format("15:04"), who, m.Content)
}

func prompt(in *bufio.Scanner, label string) string {
	fmt.Printf("%s: ", label)
	if !in.Scan() {
		os.Exit(1)
	}
	return strings.TrimSpace(in.Text())
}

func promptInt(in *bufio.Scanner, label string, min, max int) int {
	for {
		s := prompt(in, label)
		var n int
		if _, err := fmt.Sscanf(s, "%d", &n); err == nil && n >= min && n <= max {
			return n
		}
		fmt.Printf("enter a number between %d and %d\n", min, max)
	}
}
