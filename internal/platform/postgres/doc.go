// Package postgres provides PostgreSQL implementations of the store
// interfaces over the usuario, endereco and telefone tables.
//
// Uniqueness is enforced by the database constraints; unique-violation
// errors (code 23505) are translated to the store package's duplicate
// sentinels so services and handlers can match them with errors.Is.
package postgres
