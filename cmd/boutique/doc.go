// Command boutique is the service CLI: it starts the HTTP server,
// inspects routes, maintains store indexes, runs seeders, and manages
// administrator accounts.
package main
