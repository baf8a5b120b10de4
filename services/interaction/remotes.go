package interaction

import (
	"context"

	"glowbook/client"
)

// PostLikeRemote adapts the post like/unlike endpoints. Post likes return no
// authoritative count, so the optimistic value is kept on success.
func PostLikeRemote(api *client.Client, postID string) RemoteToggle {
	return func(ctx context.Context, desired bool) (*State, error) {
		if desired {
			return nil, api.LikePost(ctx, postID)
		}
		return nil, api.UnlikePost(ctx, postID)
	}
}

// CommentLikeRemote adapts the comment like/unlike endpoints.
func CommentLikeRemote(api *client.Client, commentID string) RemoteToggle {
	return func(ctx context.Context, desired bool) (*State, error) {
		if desired {
			return nil, api.LikeComment(ctx, commentID)
		}
		return nil, api.UnlikeComment(ctx, commentID)
	}
}

// ProviderFollowRemote adapts the follow/unfollow endpoints, which return
// the authoritative follower state for reconciliation.
func ProviderFollowRemote(api *client.Client, providerID string) RemoteToggle {
	return func(ctx context.Context, desired bool) (*State, error) {
		if desired {
			st, err := api.FollowProvider(ctx, providerID)
			if err != nil {
				return nil, err
			}
			return &State{Active: st.IsFollowing, Count: st.FollowersCount}, nil
		}
		st, err := api.UnfollowProvider(ctx, providerID)
		if err != nil {
			return nil, err
		}
		return &State{Active: st.IsFollowing, Count: st.FollowersCount}, nil
	}
}
