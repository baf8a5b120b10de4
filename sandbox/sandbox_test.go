package sandbox_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"glowbook/client"
	"glowbook/sandbox"
	svcbooking "glowbook/services/booking"
	"glowbook/services/interaction"
	"glowbook/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSandboxClient spins up a seeded sandbox and an SDK client wired the way
// the demo runner wires it: session manager as token source, forced logout on
// 401.
func newSandboxClient(t *testing.T) (*client.Client, *session.Manager) {
	t.Helper()
	srv := httptest.NewServer(sandbox.New("sandbox-test-secret", nil).Handler())
	t.Cleanup(srv.Close)

	sessions := session.NewManager(session.NewMemoryStore(), nil)
	api := client.New(srv.URL, 5*time.Second,
		client.WithTokenSource(sessions),
		client.WithUnauthorizedHook(func() { sessions.Invalidate(context.Background()) }),
	)
	return api, sessions
}

func signIn(t *testing.T, ctx context.Context, api *client.Client, sessions *session.Manager) {
	t.Helper()
	auth, err := api.SignIn(ctx, "mia@example.com", "glow1234")
	require.NoError(t, err)
	require.NoError(t, sessions.Begin(ctx, session.Session{
		UserID: auth.User.ID,
		Email:  auth.User.Email,
		Token:  auth.Token,
		User:   auth.User,
	}))
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	api, sessions := newSandboxClient(t)
	_, err := api.ListFeed(context.Background(), "")
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.False(t, sessions.SignedIn())
}

func TestSignInWithBadPassword(t *testing.T) {
	api, _ := newSandboxClient(t)
	_, err := api.SignIn(context.Background(), "mia@example.com", "wrong")
	assert.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestLikePostEndToEnd(t *testing.T) {
	ctx := context.Background()
	api, sessions := newSandboxClient(t)
	signIn(t, ctx, api, sessions)

	feed, err := api.ListFeed(ctx, "")
	require.NoError(t, err)
	require.NotEmpty(t, feed.Posts)
	post := feed.Posts[0]
	require.False(t, post.LikedByCurrentUser)

	engine := interaction.NewEngine(interaction.Options{})
	engine.Seed(post.ID, interaction.State{Active: post.LikedByCurrentUser, Count: post.LikeCount})
	engine.Toggle(ctx, post.ID, interaction.PostLikeRemote(api, post.ID))

	require.Eventually(t, func() bool { return !engine.InFlight(post.ID) }, 2*time.Second, 10*time.Millisecond)
	local, _ := engine.Get(post.ID)
	assert.Equal(t, interaction.State{Active: true, Count: post.LikeCount + 1}, local)

	// The server agrees with the optimistic count.
	refreshed, err := api.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.True(t, refreshed.LikedByCurrentUser)
	assert.Equal(t, post.LikeCount+1, refreshed.LikeCount)
}

func TestFollowProviderReconciles(t *testing.T) {
	ctx := context.Background()
	api, sessions := newSandboxClient(t)
	signIn(t, ctx, api, sessions)

	provider, err := api.GetProvider(ctx, "prov-luna")
	require.NoError(t, err)
	require.False(t, provider.IsFollowing)

	engine := interaction.NewEngine(interaction.Options{})
	engine.Seed(provider.ID, interaction.State{Active: provider.IsFollowing, Count: provider.FollowersCount})
	engine.Toggle(ctx, provider.ID, interaction.ProviderFollowRemote(api, provider.ID))

	require.Eventually(t, func() bool { return !engine.InFlight(provider.ID) }, 2*time.Second, 10*time.Millisecond)
	local, _ := engine.Get(provider.ID)
	assert.True(t, local.Active)
	assert.Equal(t, provider.FollowersCount+1, local.Count)

	refreshed, err := api.GetProvider(ctx, provider.ID)
	require.NoError(t, err)
	assert.True(t, refreshed.IsFollowing)
	assert.Equal(t, provider.FollowersCount+1, refreshed.FollowersCount)
}

func TestBookingFlowEndToEnd(t *testing.T) {
	ctx := context.Background()
	api, sessions := newSandboxClient(t)
	signIn(t, ctx, api, sessions)

	services, err := api.ListServices(ctx, "prov-luna")
	require.NoError(t, err)
	require.NotEmpty(t, services)
	haircut := -1
	for i := range services {
		if services[i].Name == "Haircut" {
			haircut = i
			break
		}
	}
	require.GreaterOrEqual(t, haircut, 0, "seed data should offer a haircut")

	before, err := api.GetLoyaltyStatus(ctx)
	require.NoError(t, err)

	draft := svcbooking.NewDraft("prov-luna")
	require.NoError(t, draft.SelectService(services[haircut]))
	dates := svcbooking.DateCatalog(time.Now())
	require.NoError(t, draft.SelectDate(dates[1].Date))
	require.NoError(t, draft.SelectTime("14:00"))
	require.NoError(t, draft.SetNotes("integration run"))

	record, confirmation, err := draft.Submit(ctx, api)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", record.Status)
	assert.Equal(t, "Haircut", record.ServiceName)
	assert.Contains(t, confirmation, "Tomorrow at 14:00")
	assert.Equal(t, svcbooking.PhaseConfirmed, draft.Phase())

	bookings, err := api.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, record.ID, bookings[0].ID)

	// The booked slot drops out of availability for that day.
	avail, err := api.GetAvailability(ctx, "prov-luna", dates[1].Date)
	require.NoError(t, err)
	assert.NotContains(t, avail.Times, "14:00")
	assert.Contains(t, avail.Times, "14:30")

	// One loyalty point per dollar spent.
	after, err := api.GetLoyaltyStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.Points+int(services[haircut].Price), after.Points)
}

func TestBookingRejectedForMismatchedService(t *testing.T) {
	ctx := context.Background()
	api, sessions := newSandboxClient(t)
	signIn(t, ctx, api, sessions)

	velvet, err := api.ListServices(ctx, "prov-velvet")
	require.NoError(t, err)
	require.NotEmpty(t, velvet)

	draft := svcbooking.NewDraft("prov-luna")
	require.NoError(t, draft.SelectService(velvet[0]))
	require.NoError(t, draft.SelectTime("10:00"))

	_, _, err = draft.Submit(ctx, api)
	require.Error(t, err)
	// Failure leaves the draft retryable.
	assert.Equal(t, svcbooking.PhaseReadyToSubmit, draft.Phase())
}

func TestForcedLogoutOn401(t *testing.T) {
	ctx := context.Background()
	api, sessions := newSandboxClient(t)
	signIn(t, ctx, api, sessions)

	fired := 0
	sessions.OnInvalidate(func() { fired++ })

	// Corrupt the session token so the next request comes back 401.
	require.NoError(t, sessions.Begin(ctx, session.Session{
		UserID: "user-mia", Token: "tampered-token",
	}))

	_, err := api.Me(ctx)
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.False(t, sessions.SignedIn(), "401 must tear the session down")
	assert.Equal(t, 1, fired)
}

func TestPromotionsAndChat(t *testing.T) {
	ctx := context.Background()
	api, sessions := newSandboxClient(t)
	signIn(t, ctx, api, sessions)

	promos, err := api.ListPromotions(ctx)
	require.NoError(t, err)
	assert.Len(t, promos, 2)

	promo, err := api.RedeemPromotion(ctx, "WELCOME15")
	require.NoError(t, err)
	assert.True(t, promo.Redeemed)

	_, err = api.RedeemPromotion(ctx, "WELCOME15")
	assert.Error(t, err, "double redemption must be rejected")

	rooms, err := api.ListChatRooms(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, rooms)

	msg, err := api.SendMessage(ctx, rooms[0].ID, "Running five minutes late!")
	require.NoError(t, err)
	assert.Equal(t, "Running five minutes late!", msg.Body)

	messages, err := api.ListMessages(ctx, rooms[0].ID)
	require.NoError(t, err)
	assert.Equal(t, msg.ID, messages[len(messages)-1].ID)
}

func TestSignOutClearsAccess(t *testing.T) {
	ctx := context.Background()
	api, sessions := newSandboxClient(t)
	signIn(t, ctx, api, sessions)

	require.NoError(t, api.SignOut(ctx))
	require.NoError(t, sessions.End(ctx))

	_, err := api.Me(ctx)
	assert.ErrorIs(t, err, client.ErrUnauthorized)
}
