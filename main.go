// File: glowbook/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glowbook/client"
	"glowbook/config"
	"glowbook/sandbox"
	svcbooking "glowbook/services/booking"
	"glowbook/services/interaction"
	"glowbook/session"
	"glowbook/utils"

	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	baseURL := config.AppConfig.APIBaseURL
	if config.AppConfig.SandboxMode {
		srv := sandbox.New(config.AppConfig.SandboxJWTSecret, logger)
		go func() {
			if err := srv.Run(config.AppConfig.SandboxAddr); err != nil {
				logger.Sugar().Fatalf("main: sandbox server failed: %v", err)
			}
		}()
		baseURL = "http://" + config.AppConfig.SandboxAddr
		// Give the listener a beat before the first request.
		time.Sleep(200 * time.Millisecond)
	}

	ctx := context.Background()
	sessions := session.NewManager(session.NewMemoryStore(), logger)
	api := client.New(
		baseURL,
		time.Duration(config.AppConfig.HTTPTimeoutSecs)*time.Second,
		client.WithTokenSource(sessions),
		client.WithLogger(logger),
		client.WithUnauthorizedHook(func() { sessions.Invalidate(ctx) }),
	)

	if err := runDemo(ctx, api, sessions, logger); err != nil {
		logger.Sugar().Fatalf("main: demo flow failed: %v", err)
	}

	if !config.AppConfig.SandboxMode {
		return
	}

	// Keep the sandbox up for manual poking until interrupted.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: shutting down")
}

// runDemo walks the SDK through one end-to-end pass: sign in, browse the
// feed, like a post optimistically, follow a provider, build a booking draft
// and submit it.
func runDemo(ctx context.Context, api *client.Client, sessions *session.Manager, logger *zap.Logger) error {
	auth, err := api.SignIn(ctx, "mia@example.com", "glow1234")
	if err != nil {
		return err
	}
	if err := sessions.Begin(ctx, session.Session{
		UserID: auth.User.ID,
		Email:  auth.User.Email,
		Token:  auth.Token,
		User:   auth.User,
	}); err != nil {
		return err
	}
	logger.Sugar().Infof("signed in as %s", auth.User.Name)

	feed, err := api.ListFeed(ctx, "")
	if err != nil {
		return err
	}
	logger.Sugar().Infof("feed: %d posts", len(feed.Posts))

	engine := interaction.NewEngine(interaction.Options{
		OnChange: func(id string, s interaction.State) {
			logger.Sugar().Infof("interaction %s -> active=%v count=%d", id, s.Active, s.Count)
		},
		OnError: func(id string, err error) {
			logger.Sugar().Warnf("interaction %s failed: %v", id, err)
		},
		Logger: logger,
	})

	if len(feed.Posts) > 0 {
		post := feed.Posts[0]
		engine.Seed(post.ID, interaction.State{Active: post.LikedByCurrentUser, Count: post.LikeCount})
		engine.Toggle(ctx, post.ID, interaction.PostLikeRemote(api, post.ID))
	}

	provider, err := api.GetProvider(ctx, "prov-luna")
	if err != nil {
		return err
	}
	engine.Seed(provider.ID, interaction.State{Active: provider.IsFollowing, Count: provider.FollowersCount})
	engine.Toggle(ctx, provider.ID, interaction.ProviderFollowRemote(api, provider.ID))

	services, err := api.ListServices(ctx, provider.ID)
	if err != nil {
		return err
	}
	if len(services) == 0 {
		logger.Sugar().Warn("provider has no services, skipping booking demo")
		return nil
	}

	draft := svcbooking.NewDraft(provider.ID, svcbooking.WithDraftLogger(logger))
	if err := draft.SelectService(services[0]); err != nil {
		return err
	}
	dates := svcbooking.DateCatalog(time.Now())
	if err := draft.SelectDate(dates[1].Date); err != nil { // "Tomorrow"
		return err
	}
	if err := draft.SelectTime("14:00"); err != nil {
		return err
	}
	if err := draft.SetNotes("First visit, excited!"); err != nil {
		return err
	}

	booking, confirmation, err := draft.Submit(ctx, api)
	if err != nil {
		return err
	}
	logger.Sugar().Infof("booked %s (%s): %s", booking.ServiceName, booking.ID, confirmation)

	// Let the async like/follow toggles settle before we exit.
	time.Sleep(500 * time.Millisecond)
	return nil
}
