package graph

import (
	"context"
	"strconv"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/dmitrijs2005/linkboard/internal/server/models"
)

func formatID(id int64) graphql.ID {
	return graphql.ID(strconv.FormatInt(id, 10))
}

// userResolver wraps a User record. The password hash is deliberately not
// reachable through the schema.
type userResolver struct {
	r    *Resolver
	user *models.User
}

func (u *userResolver) ID() graphql.ID { return formatID(u.user.ID) }
func (u *userResolver) Name() string   { return u.user.Name }
func (u *userResolver) Email() string  { return u.user.Email }

func (u *userResolver) Links(ctx context.Context) ([]*linkResolver, error) {
	links, err := u.r.links.ListByAuthor(ctx, u.user.ID)
	if err != nil {
		return nil, err
	}
	return u.r.wrapLinks(links), nil
}

// linkResolver wraps a Link record.
type linkResolver struct {
	r    *Resolver
	link *models.Link
}

func (l *linkResolver) ID() graphql.ID      { return formatID(l.link.ID) }
func (l *linkResolver) URL() string         { return l.link.URL }
func (l *linkResolver) Description() string { return l.link.Description }

func (l *linkResolver) CreatedAt() graphql.Time {
	return graphql.Time{Time: l.link.CreatedAt}
}

func (l *linkResolver) PostedBy(ctx context.Context) (*userResolver, error) {
	user, err := l.r.users.GetByID(ctx, l.link.PostedBy)
	if err != nil {
		return nil, err
	}
	return &userResolver{r: l.r, user: user}, nil
}

func (l *linkResolver) Votes(ctx context.Context) ([]*voteResolver, error) {
	votes, err := l.r.votes.ListByLink(ctx, l.link.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*voteResolver, 0, len(votes))
	for _, v := range votes {
		out = append(out, &voteResolver{r: l.r, vote: v})
	}
	return out, nil
}

// voteResolver wraps a Vote record.
type voteResolver struct {
	r    *Resolver
	vote *models.Vote
}

func (v *voteResolver) ID() graphql.ID { return formatID(v.vote.ID) }

func (v *voteResolver) Link(ctx context.Context) (*linkResolver, error) {
	link, err := v.r.links.GetByID(ctx, v.vote.LinkID)
	if err != nil {
		return nil, err
	}
	return &linkResolver{r: v.r, link: link}, nil
}

func (v *voteResolver) User(ctx context.Context) (*userResolver, error) {
	user, err := v.r.users.GetByID(ctx, v.vote.UserID)
	if err != nil {
		return nil, err
	}
	return &userResolver{r: v.r, user: user}, nil
}

// authPayloadResolver wraps the transient {token, user} pair returned by
// signup and login.
type authPayloadResolver struct {
	r       *Resolver
	payload *models.AuthPayload
}

func (a *authPayloadResolver) Token() string { return a.payload.Token }

func (a *authPayloadResolver) User() *userResolver {
	return &userResolver{r: a.r, user: a.payload.User}
}
