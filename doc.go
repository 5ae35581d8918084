// Package main provides the entry point of projecthub, a JSON web service managing companies,
// projects and their authorizations. Users are granted roles or permissions on a company or
// project; the service answers whether a user may perform an action on a resource and exposes
// the grant, role and permission catalog over HTTP. Data is stored with gorm in MySQL,
// PostgreSQL or SQLite.
package main
