// Package graph exposes the link-sharing domain over GraphQL: the schema,
// the resolver types, and the HTTP server serving them.
package graph

// Schema is the GraphQL schema served by this server. Mutations mirror the
// four domain operations; subscriptions are fed from the in-process
// notification publisher.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
		subscription: Subscription
	}

	scalar Time

	type Query {
		info: String!
		feed: [Link!]!
		link(id: ID!): Link
	}

	type Mutation {
		signup(email: String!, password: String!, name: String!): AuthPayload!
		login(email: String!, password: String!): AuthPayload!
		post(url: String!, description: String!): Link!
		vote(linkId: ID!): Vote!
	}

	type Subscription {
		newLink: Link!
		newVote: Vote!
	}

	type User {
		id: ID!
		name: String!
		email: String!
		links: [Link!]!
	}

	type Link {
		id: ID!
		url: String!
		description: String!
		postedBy: User!
		votes: [Vote!]!
		createdAt: Time!
	}

	type Vote {
		id: ID!
		link: Link!
		user: User!
	}

	type AuthPayload {
		token: String!
		user: User!
	}
`
