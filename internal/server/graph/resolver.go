package graph

import (
	"context"
	"fmt"
	"strconv"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/dmitrijs2005/linkboard/internal/common"
	"github.com/dmitrijs2005/linkboard/internal/logging"
	"github.com/dmitrijs2005/linkboard/internal/server/auth"
	"github.com/dmitrijs2005/linkboard/internal/server/models"
	"github.com/dmitrijs2005/linkboard/internal/server/pubsub"
	"github.com/dmitrijs2005/linkboard/internal/server/services"
)

// Resolver is the root resolver for queries, mutations, and subscriptions.
// Per-request identity comes from the context populated by auth.Middleware;
// the store, services, and publisher are shared collaborators.
type Resolver struct {
	logger    logging.Logger
	users     *services.UserService
	links     *services.LinkService
	votes     *services.VoteService
	publisher pubsub.Publisher
}

func NewResolver(l logging.Logger, us *services.UserService, ls *services.LinkService, vs *services.VoteService, p pubsub.Publisher) *Resolver {
	return &Resolver{
		logger:    l.With("module", "graphql"),
		users:     us,
		links:     ls,
		votes:     vs,
		publisher: p,
	}
}

func parseID(id graphql.ID) (int64, error) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id: %q", string(id))
	}
	return n, nil
}

// --- Query ---

func (r *Resolver) Info() string {
	return "linkboard: share links, vote on the best ones"
}

func (r *Resolver) Feed(ctx context.Context) ([]*linkResolver, error) {
	links, err := r.links.Feed(ctx)
	if err != nil {
		return nil, err
	}
	return r.wrapLinks(links), nil
}

func (r *Resolver) Link(ctx context.Context, args struct{ ID graphql.ID }) (*linkResolver, error) {
	id, err := parseID(args.ID)
	if err != nil {
		return nil, err
	}
	link, err := r.links.GetByID(ctx, id)
	if err != nil {
		// absent link resolves to null, not an error
		return nil, nil
	}
	return &linkResolver{r: r, link: link}, nil
}

// --- Mutation ---

func (r *Resolver) Signup(ctx context.Context, args struct{ Email, Password, Name string }) (*authPayloadResolver, error) {
	payload, err := r.users.Signup(ctx, args.Email, args.Password, args.Name)
	if err != nil {
		return nil, err
	}
	r.logger.Info(ctx, "user signed up", "user_id", payload.User.ID)
	return &authPayloadResolver{r: r, payload: payload}, nil
}

func (r *Resolver) Login(ctx context.Context, args struct{ Email, Password string }) (*authPayloadResolver, error) {
	payload, err := r.users.Login(ctx, args.Email, args.Password)
	if err != nil {
		return nil, err
	}
	return &authPayloadResolver{r: r, payload: payload}, nil
}

func (r *Resolver) Post(ctx context.Context, args struct{ URL, Description string }) (*linkResolver, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return nil, common.ErrUnauthenticated
	}

	link, err := r.links.Post(ctx, userID, args.URL, args.Description)
	if err != nil {
		return nil, err
	}
	r.logger.Info(ctx, "link posted", "link_id", link.ID, "user_id", userID)
	return &linkResolver{r: r, link: link}, nil
}

func (r *Resolver) Vote(ctx context.Context, args struct{ LinkID graphql.ID }) (*voteResolver, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return nil, common.ErrUnauthenticated
	}

	linkID, err := parseID(args.LinkID)
	if err != nil {
		return nil, err
	}

	vote, err := r.votes.Vote(ctx, userID, linkID)
	if err != nil {
		return nil, err
	}
	return &voteResolver{r: r, vote: vote}, nil
}

// --- Subscription ---

func (r *Resolver) NewLink(ctx context.Context) <-chan *linkResolver {
	events, cancel := r.publisher.Subscribe(pubsub.TopicNewLink)
	out := make(chan *linkResolver)

	go func() {
		defer cancel()
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				link, ok := ev.(*models.Link)
				if !ok {
					continue
				}
				select {
				case out <- &linkResolver{r: r, link: link}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

func (r *Resolver) NewVote(ctx context.Context) <-chan *voteResolver {
	events, cancel := r.publisher.Subscribe(pubsub.TopicNewVote)
	out := make(chan *voteResolver)

	go func() {
		defer cancel()
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				vote, ok := ev.(*models.Vote)
				if !ok {
					continue
				}
				select {
				case out <- &voteResolver{r: r, vote: vote}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

func (r *Resolver) wrapLinks(links []*models.Link) []*linkResolver {
	out := make([]*linkResolver, 0, len(links))
	for _, l := range links {
		out = append(out, &linkResolver{r: r, link: l})
	}
	return out
}
