package graph

// Schema is the GraphQL contract served at /graphql. Author.bookCount is a
// derived field computed at read time; Book.author always resolves to the
// full author record.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Author {
		name: String!
		born: Int
		bookCount: Int!
		id: ID!
	}

	type Book {
		title: String!
		published: Int!
		author: Author!
		genres: [String!]!
		id: ID!
	}

	type User {
		username: String!
		favoriteGenre: String!
		id: ID!
	}

	type Token {
		value: String!
	}

	type Query {
		bookCount: Int!
		authorCount: Int!
		allBooks(author: String, genre: String): [Book!]!
		allAuthors: [Author!]!
		allUsers: [User!]!
		me: User
	}

	type Mutation {
		addBook(
			title: String!
			author: String!
			published: Int!
			genres: [String!]!
		): Book

		editAuthor(name: String!, setBornTo: Int!): Author

		createUser(username: String!, favoriteGenre: String!): User

		login(username: String!, password: String!): Token

		deleteBooks: [String]

		deleteAuthors: [String]
	}
`
