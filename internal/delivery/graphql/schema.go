package graphql

// Schema is the statically declared API surface. Resolver methods on the
// Resolver tree are checked against it at startup by MustParseSchema.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		me: User!

		products: [Product!]!
		product(id: ID!): Product!
		searchProducts(text: String!): [Product!]!

		clients: [Client!]!
		myClients: [Client!]!
		client(id: ID!): Client!

		orders: [Order!]!
		myOrders: [Order!]!
		order(id: ID!): Order!
		ordersByStatus(status: OrderStatus!): [Order!]!

		topClients: [TopClient!]!
		topSellers: [TopSeller!]!
	}

	type Mutation {
		registerUser(input: RegisterInput!): User!
		authenticate(input: AuthInput!): Token!

		createProduct(input: ProductInput!): Product!
		updateProduct(id: ID!, input: ProductInput!): Product!
		deleteProduct(id: ID!): Boolean!

		createClient(input: ClientInput!): Client!
		updateClient(id: ID!, input: ClientInput!): Client!
		deleteClient(id: ID!): Boolean!

		createOrder(input: OrderInput!): Order!
		updateOrder(id: ID!, input: OrderUpdateInput!): Order!
		deleteOrder(id: ID!): Boolean!
	}

	type User {
		id: ID!
		name: String!
		surname: String!
		email: String!
		created: String!
	}

	type Token {
		token: String!
	}

	type Product {
		id: ID!
		name: String!
		stock: Int!
		price: Float!
		created: String!
	}

	type Client {
		id: ID!
		name: String!
		surname: String!
		company: String!
		email: String!
		phone: String
		seller: ID!
	}

	type OrderLine {
		product: ID!
		name: String!
		quantity: Int!
		price: Float!
	}

	type Order {
		id: ID!
		lines: [OrderLine!]!
		total: Float!
		client: Client!
		seller: ID!
		status: OrderStatus!
		created: String!
	}

	type TopClient {
		total: Float!
		client: Client!
	}

	type TopSeller {
		total: Float!
		seller: User!
	}

	enum OrderStatus {
		PENDING
		COMPLETED
		CANCELED
	}

	input RegisterInput {
		name: String!
		surname: String!
		email: String!
		password: String!
	}

	input AuthInput {
		email: String!
		password: String!
	}

	input ProductInput {
		name: String!
		stock: Int!
		price: Float!
	}

	input ClientInput {
		name: String!
		surname: String!
		company: String!
		email: String!
		phone: String
	}

	input OrderLineInput {
		product: ID!
		quantity: Int!
		name: String!
		price: Float!
	}

	input OrderInput {
		lines: [OrderLineInput!]!
		total: Float!
		client: ID!
		status: OrderStatus
	}

	input OrderUpdateInput {
		lines: [OrderLineInput!]
		total: Float
		client: ID
		status: OrderStatus
	}
`
