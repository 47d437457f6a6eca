// Package backend is the ledger service for a pre-order shop: catalogs of products are
// ordered by clients, paid for in two parts (FOB and freight) and reconciled against the
// stock that actually arrives.
/*
shopledger/
├── cmd/
│   └── server/
│       └── main.go          process wiring and graceful shutdown
├── internal/
│   ├── config/              environment configuration
│   ├── database/            gorm connection and migrations
│   ├── models/              catalog, product, client, order, payment, settings, user
│   ├── ledger/              pure payment, freight and stock calculations
│   ├── store/               collection repository over postgres, redis or memory
│   ├── services/            use cases on top of the repository
│   ├── handlers/            gin handlers
│   ├── middleware/          basic auth, rate limiting, logging, cors, i18n
│   ├── router/              route table
│   ├── i18n/                en and sw messages
│   └── utils/               responses, validation, pagination, hashing
└── go.mod
*/
package backend
