// Package pms provides the types and functions to manage personal investment
// portfolios. It is local-first: a portfolio lives in a small human-readable
// text file.
//
// The core functionalities include:
//   - Holdings: a record per investment (stock, bond, mutual fund or
//     cryptocurrency) that knows how to value itself.
//   - Portfolio: an ordered collection of holdings, with total valuation and a
//     diversification breakdown by asset class.
//   - Persistence: encoding and decoding a portfolio to and from its text
//     file format.
//   - Accounts: a registry of users, each owning a portfolio.
//
// This package serves as the foundational logic for the `pms` command-line
// tool.
package pms
