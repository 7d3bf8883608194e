// Copyright (c) 2025 Hearsay
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package graph

// Schema is the GraphQL schema definition served at /graphql.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		me: User
		post(id: ID!): Post
		posts(limit: Int!, cursor: String): PaginatedPosts!
	}

	type Mutation {
		register(credentials: RegisterInput!): UserResponse!
		login(usernameOrEmail: String!, password: String!): UserResponse!
		logout: Boolean!
		forgotPassword(email: String!): Boolean!
		changePassword(token: String!, newPassword: String!): UserResponse!
		createPost(details: PostInput!): Post!
		updatePost(id: ID!, title: String!, text: String!): Post
		deletePost(id: ID!): Boolean!
		vote(postId: ID!, value: Int!): Boolean!
	}

	type User {
		id: ID!
		username: String!
		email: String!
		createdAt: String!
	}

	type Post {
		id: ID!
		title: String!
		text: String!
		textSnippet: String!
		points: Int!
		voteStatus: Int
		creator: User!
		createdAt: String!
	}

	type PaginatedPosts {
		posts: [Post!]!
		hasMore: Boolean!
	}

	type FieldError {
		field: String!
		message: String!
	}

	type UserResponse {
		errors: [FieldError!]
		user: User
	}

	input RegisterInput {
		email: String!
		username: String!
		password: String!
	}

	input PostInput {
		title: String!
		text: String!
	}
`
